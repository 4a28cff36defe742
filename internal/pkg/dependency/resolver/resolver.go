// Package resolver computes dependencies of a component: implied (scanned), explicit and the explicit closure.
// Each call reads the current state of the filesystem, nothing is cached.
package resolver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/dependency/scanner"
	"github.com/atomic-component-engine/ace/internal/pkg/dependency/store"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
)

type Resolver struct {
	fs      filesystem.Fs
	logger  log.Logger
	layout  project.Layout
	scanner *scanner.Scanner
	store   *store.Store
}

func New(fs filesystem.Fs, logger log.Logger, layout project.Layout) *Resolver {
	return &Resolver{
		fs:      fs,
		logger:  logger.WithComponent("resolver"),
		layout:  layout,
		scanner: scanner.New(fs, logger),
		store:   store.New(fs, logger),
	}
}

func (r *Resolver) Store() *store.Store {
	return r.store
}

func (r *Resolver) Record(key model.ComponentKey) *component.Record {
	return component.New(r.layout, key)
}

// Implied returns dependencies found by scanning source files of the component, one level only.
//   - components: "include" lines of the markup,
//   - js: global scripts required by the script,
//   - sass: files declaring used mixins, relative to the global-scss dir.
//
// Missing source files are skipped, references to missing components are dropped with a warning.
func (r *Resolver) Implied(ctx context.Context, key model.ComponentKey) (model.Closure, error) {
	record := r.Record(key)
	logger := r.logger.With(attribute.String("component", key.String()))
	out := model.NewClosure()

	// Markup
	if content, found, err := r.readOptional(ctx, record.MarkupFile(), "markup"); err != nil {
		return model.Closure{}, err
	} else if found {
		for _, ref := range r.scanner.ScanComponentIncludes(content) {
			depKey, err := model.ParseComponentRef(ref)
			if err != nil {
				logger.Warn(ctx, model.MissingDependencyError{Ref: ref}.Error())
				continue
			}
			if depKey == key {
				continue
			}
			if dir := r.layout.ComponentDir(depKey); !r.fs.IsDir(ctx, dir) {
				logger.Warn(ctx, model.MissingDependencyError{Ref: ref, Path: dir}.Error())
				continue
			}
			out.Components = append(out.Components, depKey.String())
		}
	}

	// Script
	if content, found, err := r.readOptional(ctx, record.ScriptFile(), "script"); err != nil {
		return model.Closure{}, err
	} else if found {
		out.JS = append(out.JS, r.scanner.ScanScriptModuleDeps(ctx, content, r.layout.GlobalJSDir())...)
	}

	// Style
	if content, found, err := r.readOptional(ctx, record.StyleFile(), "stylesheet"); err != nil {
		return model.Closure{}, err
	} else if found {
		for _, mixin := range r.scanner.ScanStyleMixinRefs(content) {
			file, found := r.scanner.ResolveMixinToFile(ctx, mixin, r.layout.MixinsDir())
			if !found {
				continue
			}
			rel, err := filesystem.Rel(r.layout.GlobalSassDir(), filesystem.Join(r.layout.MixinsDir(), file))
			if err != nil {
				return model.Closure{}, err
			}
			out.Sass = append(out.Sass, rel)
		}
	}

	out.Dedup()
	return out, nil
}

// Explicit returns dependencies declared in the ace.json of the component, one level only.
func (r *Resolver) Explicit(ctx context.Context, key model.ComponentKey) (model.Closure, error) {
	return r.store.GetExplicit(ctx, r.Record(key))
}

// ExplicitRecursive returns the transitive closure of explicit dependencies, without duplicates.
// Components are walked depth-first, each component is expanded at most once.
// A reference back to a component on the current path is a cycle, it is logged and not expanded.
// The root component is not part of the result.
// Script and style entries end with ".js" / ".scss", except entries naming a global directory.
func (r *Resolver) ExplicitRecursive(ctx context.Context, key model.ComponentKey) (model.Closure, error) {
	w := &walker{
		resolver: r,
		visited:  map[string]bool{key.String(): true},
		onPath:   map[string]bool{},
		out:      model.NewClosure(),
	}
	if err := w.walk(ctx, key, []string{key.String()}); err != nil {
		return model.Closure{}, err
	}

	out := w.out
	out.Dedup()
	for i, v := range out.JS {
		out.JS[i] = r.normalizeGlobalRef(ctx, r.layout.GlobalJSDir(), v, model.JSExt)
	}
	for i, v := range out.Sass {
		out.Sass[i] = r.normalizeGlobalRef(ctx, r.layout.GlobalSassDir(), v, model.SassExt)
	}
	out.Dedup()
	return out, nil
}

type walker struct {
	resolver *Resolver
	visited  map[string]bool
	onPath   map[string]bool
	out      model.Closure
}

func (w *walker) walk(ctx context.Context, key model.ComponentKey, path []string) error {
	r := w.resolver
	w.onPath[key.String()] = true
	defer delete(w.onPath, key.String())

	explicit, err := r.Explicit(ctx, key)
	if err != nil {
		return err
	}

	w.out.JS = append(w.out.JS, explicit.JS...)
	w.out.Sass = append(w.out.Sass, explicit.Sass...)

	for _, ref := range explicit.Components {
		depKey, err := model.ParseComponentRef(ref)
		if err != nil {
			r.logger.Warnf(ctx, `Invalid dependency in "%s": %s`, r.Record(key).ConfigFile(), err)
			continue
		}
		depRef := depKey.String()

		if w.onPath[depRef] {
			r.logger.Warn(ctx, model.CyclicDependencyError{Path: append(append([]string{}, path...), depRef)}.Error())
			continue
		}
		if w.visited[depRef] {
			continue
		}
		w.visited[depRef] = true
		w.out.Components = append(w.out.Components, depRef)

		// Missing component is reported by the export
		if !r.fs.IsDir(ctx, r.layout.ComponentDir(depKey)) {
			r.logger.Debugf(ctx, `Dependency "%s" not found, not expanded.`, depRef)
			continue
		}

		if err := w.walk(ctx, depKey, append(path, depRef)); err != nil {
			return err
		}
	}

	return nil
}

// normalizeGlobalRef appends the extension, if the entry is not a directory in the global dir.
func (r *Resolver) normalizeGlobalRef(ctx context.Context, globalDir, ref, ext string) string {
	if r.fs.IsDir(ctx, filesystem.Join(globalDir, ref)) {
		return ref
	}
	return model.NormalizeExt(ref, ext)
}

func (r *Resolver) readOptional(ctx context.Context, path, desc string) (string, bool, error) {
	if !r.fs.IsFile(ctx, path) {
		return "", false, nil
	}
	file, err := r.fs.ReadFile(ctx, filesystem.NewFileDef(path).SetDescription(desc))
	if err != nil {
		return "", false, err
	}
	return file.Content, true, nil
}
