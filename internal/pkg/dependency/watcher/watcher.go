// Package watcher notifies about changed components in the src dir of a project on the local filesystem.
package watcher

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const DefaultDebounceWindow = 300 * time.Millisecond

// OnChange is called with changed components, sorted, one call per debounce window.
type OnChange func(ctx context.Context, keys []model.ComponentKey)

type Watcher struct {
	fs       filesystem.Fs
	logger   log.Logger
	clock    clockwork.Clock
	layout   project.Layout
	window   time.Duration
	onChange OnChange
}

func New(fs filesystem.Fs, logger log.Logger, layout project.Layout, window time.Duration, onChange OnChange) *Watcher {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Watcher{
		fs:       fs,
		logger:   logger.WithComponent("watcher"),
		clock:    clockwork.NewRealClock(),
		layout:   layout,
		window:   window,
		onChange: onChange,
	}
}

// Run watches the src dir until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.fs.ApiName() != "local" {
		return errors.Errorf(`watch is supported only on the local filesystem, found "%s"`, w.fs.ApiName())
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.PrefixError(err, "cannot create file watcher")
	}
	defer fsWatcher.Close()

	if err := w.addDirs(ctx, fsWatcher, w.layout.SrcDir()); err != nil {
		return err
	}

	d := newDebouncer(w.clock, w.window, func(refs []string) {
		keys := make([]model.ComponentKey, 0, len(refs))
		for _, ref := range refs {
			if key, err := model.ParseComponentRef(ref); err == nil {
				keys = append(keys, key)
			}
		}
		w.onChange(ctx, keys)
	})
	defer d.Stop()

	w.logger.Infof(ctx, `Watching "%s" for changes.`, w.layout.SrcDir())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			rel, err := w.relPath(event.Name)
			if err != nil {
				continue
			}

			// Watch new directories
			if event.Has(fsnotify.Create) && w.fs.IsDir(ctx, rel) {
				if err := w.addDirs(ctx, fsWatcher, rel); err != nil {
					w.logger.Warn(ctx, err.Error())
				}
			}

			if key, ok := ComponentFromPath(w.layout, rel); ok {
				w.logger.Debugf(ctx, `Changed "%s" (%s).`, rel, event.Op.String())
				d.Add(key.String())
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf(ctx, "File watcher error: %s", err)
		}
	}
}

// ComponentFromPath returns the component, if the path is a markup, script, style or config file in a component dir.
func ComponentFromPath(layout project.Layout, path string) (model.ComponentKey, bool) {
	rel, err := filesystem.Rel(layout.SrcDir(), path)
	if err != nil || !filesystem.IsFrom(path, layout.SrcDir()) {
		return model.ComponentKey{}, false
	}

	parts := strings.Split(rel, filesystem.PathSeparator)
	if len(parts) != 3 {
		return model.ComponentKey{}, false
	}

	t, err := model.ParseComponentType(parts[0])
	if err != nil || t.Dir() != parts[0] {
		return model.ComponentKey{}, false
	}

	name, file := parts[1], parts[2]
	switch {
	case file == component.ConfigFile:
	case file == name+component.MarkupExt, file == name+model.JSExt, file == name+model.SassExt:
	default:
		return model.ComponentKey{}, false
	}
	return model.ComponentKey{Type: t, Name: name}, true
}

func (w *Watcher) addDirs(ctx context.Context, fsWatcher *fsnotify.Watcher, root string) error {
	return w.fs.Walk(ctx, root, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filesystem.SkipDir
		}
		if err := fsWatcher.Add(w.absPath(path)); err != nil {
			return errors.PrefixErrorf(err, `cannot watch "%s"`, path)
		}
		return nil
	})
}

func (w *Watcher) absPath(rel string) string {
	return filesystem.FromSlash(filesystem.Join(w.fs.BasePath(), rel))
}

func (w *Watcher) relPath(abs string) (string, error) {
	return filesystem.Rel(filesystem.ToSlash(w.fs.BasePath()), filesystem.ToSlash(abs))
}
