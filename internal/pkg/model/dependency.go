package model

import (
	"slices"
	"strings"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	KindComponent = DependencyKind("component")
	KindJS        = DependencyKind("js")
	KindSass      = DependencyKind("sass")

	JSExt   = ".js"
	SassExt = ".scss"
)

// DependencyKind is a list in the "dependencies" section of the ace.json file.
type DependencyKind string

// ParseDependencyKind accepts also the "components" alias, in any case.
func ParseDependencyKind(v string) (DependencyKind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "component", "components":
		return KindComponent, nil
	case "js":
		return KindJS, nil
	case "sass", "scss":
		return KindSass, nil
	default:
		return "", errors.Errorf(`unknown dependency kind "%s", expected one of: component, js, sass`, v)
	}
}

func (k DependencyKind) String() string {
	return string(k)
}

// DependencyConfig is content of the ace.json file.
type DependencyConfig struct {
	Name         string       `json:"name"`
	Author       string       `json:"author"`
	Dependencies Dependencies `json:"dependencies"`
}

type Dependencies struct {
	Components []string `json:"components"`
	JS         []string `json:"js"`
	Sass       []string `json:"sass"`
}

// NewDependencyConfig returns config with empty dependency lists.
func NewDependencyConfig(name, author string) *DependencyConfig {
	cfg := &DependencyConfig{Name: name, Author: author}
	cfg.Normalize()
	return cfg
}

// Normalize replaces missing lists by empty lists, so they are encoded as [].
func (c *DependencyConfig) Normalize() {
	if c.Dependencies.Components == nil {
		c.Dependencies.Components = []string{}
	}
	if c.Dependencies.JS == nil {
		c.Dependencies.JS = []string{}
	}
	if c.Dependencies.Sass == nil {
		c.Dependencies.Sass = []string{}
	}
}

// List returns pointer to the list of the kind.
func (c *DependencyConfig) List(kind DependencyKind) *[]string {
	switch kind {
	case KindComponent:
		return &c.Dependencies.Components
	case KindJS:
		return &c.Dependencies.JS
	case KindSass:
		return &c.Dependencies.Sass
	default:
		panic(errors.Errorf(`unexpected dependency kind "%s"`, kind))
	}
}

// Closure is a set of components, scripts and styles required by a component.
// Items are in the discovery order.
type Closure struct {
	Components []string `json:"components"`
	JS         []string `json:"js"`
	Sass       []string `json:"sass"`
}

func NewClosure() Closure {
	return Closure{Components: []string{}, JS: []string{}, Sass: []string{}}
}

// ClosureFromConfig copies the dependency lists.
func ClosureFromConfig(cfg *DependencyConfig) Closure {
	out := NewClosure()
	out.Components = append(out.Components, cfg.Dependencies.Components...)
	out.JS = append(out.JS, cfg.Dependencies.JS...)
	out.Sass = append(out.Sass, cfg.Dependencies.Sass...)
	return out
}

// Append adds all items from the other closure to the end.
func (c *Closure) Append(other Closure) {
	c.Components = append(c.Components, other.Components...)
	c.JS = append(c.JS, other.JS...)
	c.Sass = append(c.Sass, other.Sass...)
}

// Dedup removes duplicates, the first occurrence wins.
func (c *Closure) Dedup() {
	c.Components = dedup(c.Components)
	c.JS = dedup(c.JS)
	c.Sass = dedup(c.Sass)
}

func (c Closure) IsEmpty() bool {
	return len(c.Components) == 0 && len(c.JS) == 0 && len(c.Sass) == 0
}

func (c Closure) Contains(kind DependencyKind, ref string) bool {
	switch kind {
	case KindComponent:
		return slices.Contains(c.Components, ref)
	case KindJS:
		return slices.Contains(c.JS, ref)
	case KindSass:
		return slices.Contains(c.Sass, ref)
	default:
		return false
	}
}

// Items returns all items as kind/ref pairs, in the component, js, sass order.
func (c Closure) Items() []DependencyItem {
	var out []DependencyItem
	for _, v := range c.Components {
		out = append(out, DependencyItem{Kind: KindComponent, Ref: v})
	}
	for _, v := range c.JS {
		out = append(out, DependencyItem{Kind: KindJS, Ref: v})
	}
	for _, v := range c.Sass {
		out = append(out, DependencyItem{Kind: KindSass, Ref: v})
	}
	return out
}

type DependencyItem struct {
	Kind DependencyKind
	Ref  string
}

func (i DependencyItem) String() string {
	return i.Kind.String() + ": " + i.Ref
}

// NormalizeExt appends the extension if it is not present.
func NormalizeExt(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

func dedup(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
