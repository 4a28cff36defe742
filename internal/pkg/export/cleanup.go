package export

import (
	"context"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
)

// Cleanup removes staged paths, then top-level folders without files, then the staging root, if it is empty.
// It must be called after the Archive returned.
func (e *Exporter) Cleanup(ctx context.Context, m *Manifest, stagingRoot string) error {
	for _, path := range m.Paths() {
		if err := e.fs.Remove(ctx, filesystem.Join(stagingRoot, path)); err != nil {
			return err
		}
	}

	for _, dir := range e.layout.TopLevelDirs() {
		path := filesystem.Join(stagingRoot, dir)
		if !e.fs.IsDir(ctx, path) {
			continue
		}
		empty, err := e.hasNoFiles(ctx, path)
		if err != nil {
			return err
		}
		if empty {
			if err := e.fs.Remove(ctx, path); err != nil {
				return err
			}
		}
	}

	if e.fs.IsDir(ctx, stagingRoot) {
		items, err := e.fs.ReadDir(ctx, stagingRoot)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return e.fs.Remove(ctx, stagingRoot)
		}
		e.logger.Warnf(ctx, `Staging directory "%s" is not empty, it was kept.`, stagingRoot)
	}

	return nil
}

func (e *Exporter) hasNoFiles(ctx context.Context, dir string) (bool, error) {
	empty := true
	err := e.fs.Walk(ctx, dir, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			empty = false
		}
		return nil
	})
	return empty, err
}
