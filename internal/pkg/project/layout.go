// Package project contains the project directory layout, the init config and the index of components.
package project

import (
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
)

const (
	ConfigFile    = "ace_config.json"
	SrcDir        = "src"
	GlobalJSDir   = "global-js"
	GlobalSassDir = "global-scss"
	ExportDir     = "export"
)

// Layout contains paths of the project directories, relative to the project filesystem.
// It is derived once per invocation and passed to all operations.
type Layout struct {
	src        string
	globalJS   string
	globalSass string
	mixins     string
	export     string
}

// NewLayout creates layout, the mixinsDir is relative to the global-scss dir, empty means the global-scss dir itself.
func NewLayout(mixinsDir string) Layout {
	globalSass := filesystem.Join(SrcDir, GlobalSassDir)
	return Layout{
		src:        SrcDir,
		globalJS:   filesystem.Join(SrcDir, GlobalJSDir),
		globalSass: globalSass,
		mixins:     filesystem.Join(globalSass, mixinsDir),
		export:     ExportDir,
	}
}

// NewLayoutFromConfig creates layout with the mixins dir from the init config.
func NewLayoutFromConfig(cfg *InitConfig) Layout {
	if cfg == nil {
		return NewLayout("")
	}
	return NewLayout(cfg.MixinsDir)
}

// SrcDir is the root of all exported paths.
func (l Layout) SrcDir() string {
	return l.src
}

func (l Layout) TypeDir(t model.ComponentType) string {
	return filesystem.Join(l.src, t.Dir())
}

func (l Layout) ComponentDir(key model.ComponentKey) string {
	return filesystem.Join(l.TypeDir(key.Type), key.Name)
}

func (l Layout) GlobalJSDir() string {
	return l.globalJS
}

func (l Layout) GlobalSassDir() string {
	return l.globalSass
}

// MixinsDir is scanned for "@mixin" declarations.
func (l Layout) MixinsDir() string {
	return l.mixins
}

func (l Layout) ExportDir() string {
	return l.export
}

// TopLevelDirs returns dirs directly in the src dir, which may be pruned after export, if empty.
func (l Layout) TopLevelDirs() []string {
	out := []string{GlobalSassDir, GlobalJSDir}
	for _, t := range model.AllComponentTypes() {
		out = append(out, t.Dir())
	}
	return out
}
