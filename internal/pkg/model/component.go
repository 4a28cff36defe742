// Package model contains the domain types shared by the dependency resolution and the export.
package model

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/umisama/go-regexpcache"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	TypeAtom     = ComponentType("atom")
	TypeMolecule = ComponentType("molecule")
	TypeOrganism = ComponentType("organism")
	TypeTemplate = ComponentType("template")
	TypePage     = ComponentType("page")
)

// ComponentType is the Atomic-Design level of a component.
type ComponentType string

// ComponentKey identifies a component in the project.
type ComponentKey struct {
	Type ComponentType `validate:"required"`
	Name string        `validate:"required"`
}

// AllComponentTypes returns types ordered from the smallest unit.
func AllComponentTypes() []ComponentType {
	return []ComponentType{TypeAtom, TypeMolecule, TypeOrganism, TypeTemplate, TypePage}
}

// ParseComponentType accepts singular or plural form in any case, for example "Atom" or "atoms".
func ParseComponentType(v string) (ComponentType, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, t := range AllComponentTypes() {
		if v == string(t) || v == t.Dir() {
			return t, nil
		}
	}
	return "", errors.Errorf(`unknown component type "%s", expected one of: %s`, v, strings.Join(componentTypeNames(), ", "))
}

// Dir returns name of the directory with components of the type, for example "atoms".
func (t ComponentType) Dir() string {
	return string(t) + "s"
}

func (t ComponentType) String() string {
	return string(t)
}

// ParseComponentRef parses reference in the "<type>s/<name>" form, for example "molecules/button".
func ParseComponentRef(ref string) (ComponentKey, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(ref), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ComponentKey{}, errors.Errorf(`invalid component reference "%s", expected "<type>s/<name>"`, ref)
	}

	componentType, err := ParseComponentType(parts[0])
	if err != nil {
		return ComponentKey{}, errors.PrefixErrorf(err, `invalid component reference "%s"`, ref)
	}

	return ComponentKey{Type: componentType, Name: parts[1]}, nil
}

// String returns the component reference, for example "molecules/button".
func (k ComponentKey) String() string {
	return k.Type.Dir() + "/" + k.Name
}

// Desc returns human-readable description, for example: molecule "button".
func (k ComponentKey) Desc() string {
	return k.Type.String() + ` "` + k.Name + `"`
}

// NormalizeComponentName converts the name to an identifier usable in file names and script modules.
// Runes other than [a-z0-9] are replaced by "_".
func NormalizeComponentName(name string) string {
	name = strcase.ToSnake(strings.TrimSpace(name))
	return regexpcache.MustCompile(`[^a-z0-9]+`).ReplaceAllString(strings.ToLower(name), "_")
}

func componentTypeNames() []string {
	var out []string
	for _, t := range AllComponentTypes() {
		out = append(out, t.String())
	}
	return out
}
