package watch

import (
	"context"
	"time"

	"github.com/fatih/color"

	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/dependency/watcher"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
)

type Options struct {
	Window time.Duration // debounce window, watcher.DefaultDebounceWindow if zero
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Fs() filesystem.Fs
	Layout() project.Layout
	Index() *project.Index
	Resolver() *resolver.Resolver
}

// Run watches components and reports implied dependencies missing in the ace.json, until the context is cancelled.
func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "ace.operation.dependency.watch")
	defer span.End(&err)

	w := watcher.New(d.Fs(), d.Logger(), d.Layout(), o.Window, func(ctx context.Context, keys []model.ComponentKey) {
		// Nested operations are not traced, the watch span lasts until the interrupt
		Report(telemetry.ContextWithDisabledTracing(ctx), d, keys)
	})
	return w.Run(ctx)
}

// Report logs undeclared dependencies of changed components, removed components are skipped.
func Report(ctx context.Context, d dependencies, keys []model.ComponentKey) {
	logger := d.Logger()
	for _, key := range keys {
		if !d.Index().Exists(ctx, key) {
			continue
		}

		undeclared, err := d.Resolver().Undeclared(ctx, key)
		if err != nil {
			logger.Warnf(ctx, `Cannot check %s: %s`, key.Desc(), err)
			continue
		}

		if undeclared.IsEmpty() {
			logger.Infof(ctx, `%s %s: all dependencies are declared.`, color.GreenString("ok"), key)
			continue
		}
		for _, item := range undeclared.Items() {
			logger.Warnf(ctx, `%s %s: undeclared dependency "%s".`, color.YellowString("warn"), key, item)
		}
	}
}
