package export

import (
	"context"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// Stage copies the component and its dependencies to the staging root, paths are relative to the src dir.
//  1. the component directory,
//  2. directories of all components from the closure,
//  3. whole global-js and global-scss dirs, if includeGlobalFolders is set, the js and sass lists are ignored,
//  4. otherwise only sass and js entries from the closure, a sass entry may be a directory.
//
// Any missing source is an error.
func (e *Exporter) Stage(ctx context.Context, record *component.Record, closure model.Closure, stagingRoot string, includeGlobalFolders bool) (*Manifest, error) {
	m := NewManifest()

	// Component
	if err := e.stagePath(ctx, m, record.Dir(), stagingRoot, record.Key().String()); err != nil {
		return nil, err
	}

	// Component dependencies
	for _, ref := range closure.Components {
		key, err := model.ParseComponentRef(ref)
		if err != nil {
			return nil, err
		}
		if err := e.stagePath(ctx, m, e.layout.ComponentDir(key), stagingRoot, ref); err != nil {
			return nil, err
		}
	}

	// Global folders
	if includeGlobalFolders {
		for _, dir := range []string{e.layout.GlobalSassDir(), e.layout.GlobalJSDir()} {
			if !e.fs.IsDir(ctx, dir) {
				e.logger.Warnf(ctx, `Global directory "%s" not found, skipped.`, dir)
				continue
			}
			if err := e.stagePath(ctx, m, dir, stagingRoot, dir); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	// Global files
	for _, ref := range closure.Sass {
		if err := e.stageGlobalPath(ctx, m, e.layout.GlobalSassDir(), ref, stagingRoot); err != nil {
			return nil, err
		}
	}
	for _, ref := range closure.JS {
		if err := e.stageGlobalPath(ctx, m, e.layout.GlobalJSDir(), ref, stagingRoot); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// stageGlobalPath stages a js or sass entry, the entry must be inside the global dir.
func (e *Exporter) stageGlobalPath(ctx context.Context, m *Manifest, globalDir, ref, stagingRoot string) error {
	src := filesystem.Join(globalDir, ref)
	if src == globalDir || !filesystem.IsFrom(src, globalDir) {
		return errors.Errorf(`dependency "%s" is outside of "%s"`, ref, globalDir)
	}
	return e.stagePath(ctx, m, src, stagingRoot, ref)
}

// stagePath copies a file or a directory from the project to the same relative path in the staging root.
func (e *Exporter) stagePath(ctx context.Context, m *Manifest, src, stagingRoot, ref string) error {
	rel, err := filesystem.Rel(e.layout.SrcDir(), src)
	if err != nil {
		return err
	}

	// Already staged, for example a file from a staged directory
	if m.Match(rel) {
		return nil
	}

	isDir := e.fs.IsDir(ctx, src)
	if !isDir && !e.fs.IsFile(ctx, src) {
		return model.MissingDependencyError{Ref: ref, Path: src}
	}

	dst := filesystem.Join(stagingRoot, rel)
	if e.fs.Exists(ctx, dst) {
		// A directory overlapping a previously staged file
		if err := e.fs.Remove(ctx, dst); err != nil {
			return err
		}
	}
	if err := e.fs.Copy(ctx, src, dst); err != nil {
		return errors.PrefixErrorf(err, `cannot stage "%s"`, rel)
	}

	if isDir {
		m.AddDir(rel)
	} else {
		m.AddFile(rel)
	}
	e.logger.Debugf(ctx, `Staged "%s".`, rel)
	return nil
}

// StagingRoot returns a directory for the export of the component, in the export dir.
func StagingRoot(layout project.Layout, key model.ComponentKey) string {
	return filesystem.Join(layout.ExportDir(), ".staging-"+key.Type.Dir()+"-"+key.Name)
}
