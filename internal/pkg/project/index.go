package project

import (
	"context"
	"strings"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
)

// Index enumerates components in the project.
type Index struct {
	fs     filesystem.Fs
	layout Layout
}

func NewIndex(fs filesystem.Fs, layout Layout) *Index {
	return &Index{fs: fs, layout: layout}
}

// ListByType returns components of the type, sorted by name.
// Hidden directories are ignored, a missing type dir means no components.
// Directories starting with "_" are components too, for example "atoms/_headings".
func (i *Index) ListByType(ctx context.Context, t model.ComponentType) ([]model.ComponentKey, error) {
	dir := i.layout.TypeDir(t)
	if !i.fs.IsDir(ctx, dir) {
		return nil, nil
	}

	items, err := i.fs.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	var out []model.ComponentKey
	for _, item := range items {
		if !item.IsDir() || strings.HasPrefix(item.Name(), ".") {
			continue
		}
		out = append(out, model.ComponentKey{Type: t, Name: item.Name()})
	}
	return out, nil
}

// ListAll returns components of all types, ordered by type and name.
func (i *Index) ListAll(ctx context.Context) ([]model.ComponentKey, error) {
	var out []model.ComponentKey
	for _, t := range model.AllComponentTypes() {
		keys, err := i.ListByType(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, keys...)
	}
	return out, nil
}

// Exists returns true if the component directory exists.
func (i *Index) Exists(ctx context.Context, key model.ComponentKey) bool {
	return i.fs.IsDir(ctx, i.layout.ComponentDir(key))
}
