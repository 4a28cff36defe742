package resolver

import (
	"context"
	"slices"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
)

// Undeclared returns implied dependencies which are not covered by the explicit dependencies of the component.
// A script or a style is covered by an entry with or without the extension,
// or by an entry naming a directory containing it.
func (r *Resolver) Undeclared(ctx context.Context, key model.ComponentKey) (model.Closure, error) {
	implied, err := r.Implied(ctx, key)
	if err != nil {
		return model.Closure{}, err
	}
	explicit, err := r.Explicit(ctx, key)
	if err != nil {
		return model.Closure{}, err
	}

	out := model.NewClosure()
	for _, ref := range implied.Components {
		if !slices.Contains(explicit.Components, ref) {
			out.Components = append(out.Components, ref)
		}
	}
	for _, ref := range implied.JS {
		if !r.covered(ctx, r.layout.GlobalJSDir(), explicit.JS, ref, model.JSExt) {
			out.JS = append(out.JS, ref)
		}
	}
	for _, ref := range implied.Sass {
		if !r.covered(ctx, r.layout.GlobalSassDir(), explicit.Sass, ref, model.SassExt) {
			out.Sass = append(out.Sass, ref)
		}
	}
	return out, nil
}

func (r *Resolver) covered(ctx context.Context, globalDir string, entries []string, ref, ext string) bool {
	for _, entry := range entries {
		if r.fs.IsDir(ctx, filesystem.Join(globalDir, entry)) {
			if filesystem.IsFrom(ref, entry) {
				return true
			}
			continue
		}
		if model.NormalizeExt(entry, ext) == ref {
			return true
		}
	}
	return false
}
