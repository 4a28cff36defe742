// Package export packs a component with its explicit dependency closure to a zip archive.
package export

import (
	"context"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/gofrs/flock"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atomic-component-engine/ace/internal/pkg/component"
	"github.com/atomic-component-engine/ace/internal/pkg/dependency/resolver"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/project"
	"github.com/atomic-component-engine/ace/internal/pkg/telemetry"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	ZipExt   = ".zip"
	LockFile = ".ace.lock"
)

type Exporter struct {
	fs        filesystem.Fs
	logger    log.Logger
	telemetry telemetry.Telemetry
	layout    project.Layout
	resolver  *resolver.Resolver
}

type Options struct {
	IncludeGlobalFolders bool
}

type Result struct {
	ZipPath  string
	Manifest *Manifest
	Files    []string
	Closure  model.Closure
	Size     datasize.ByteSize
}

func New(fs filesystem.Fs, logger log.Logger, tel telemetry.Telemetry, layout project.Layout, r *resolver.Resolver) *Exporter {
	return &Exporter{fs: fs, logger: logger.WithComponent("export"), telemetry: tel, layout: layout, resolver: r}
}

// ZipPath returns path of the archive for the component, for example "export/button.zip".
func ZipPath(layout project.Layout, key model.ComponentKey) string {
	return filesystem.Join(layout.ExportDir(), key.Name+ZipExt)
}

// Export resolves the explicit dependency closure, stages the files, writes the zip and removes staged files.
// Implied dependencies are not exported. Any failure is returned as model.ExportError, staged files are removed.
func (e *Exporter) Export(ctx context.Context, key model.ComponentKey, o Options) (result *Result, err error) {
	ctx, span := e.telemetry.Tracer().Start(ctx, "ace.export")
	span.SetAttributes(attribute.String("component", key.String()), attribute.Bool("includeGlobalFolders", o.IncludeGlobalFolders))
	defer span.End(&err)

	defer func() {
		if err != nil {
			err = model.ExportError{Component: key, Err: err}
		}
	}()

	record := component.New(e.layout, key)
	if !record.Exists(ctx, e.fs) {
		return nil, model.MissingDependencyError{Ref: key.String(), Path: record.Dir()}
	}

	if err := e.fs.Mkdir(ctx, e.layout.ExportDir()); err != nil {
		return nil, err
	}
	unlock, err := e.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	closure, err := e.resolver.ExplicitRecursive(ctx, key)
	if err != nil {
		return nil, err
	}

	// Remove leftovers of an interrupted export
	stagingRoot := StagingRoot(e.layout, key)
	if err := e.fs.Remove(ctx, stagingRoot); err != nil {
		return nil, err
	}

	manifest, err := e.Stage(ctx, record, closure, stagingRoot, o.IncludeGlobalFolders)
	if err != nil {
		e.removeStaging(ctx, stagingRoot)
		return nil, err
	}

	files, err := manifest.Files(ctx, e.fs, stagingRoot)
	if err != nil {
		e.removeStaging(ctx, stagingRoot)
		return nil, err
	}

	zipPath := ZipPath(e.layout, key)
	if err := e.Archive(ctx, manifest, stagingRoot, zipPath); err != nil {
		e.removeStaging(ctx, stagingRoot)
		return nil, err
	}

	if err := e.Cleanup(ctx, manifest, stagingRoot); err != nil {
		return nil, err
	}

	result = &Result{ZipPath: zipPath, Manifest: manifest, Files: files, Closure: closure}
	if info, err := e.fs.Stat(ctx, zipPath); err == nil {
		result.Size = datasize.ByteSize(info.Size())
	}

	e.logger.Infof(ctx, `Exported %s to "%s" (%s).`, key.Desc(), zipPath, result.Size.HumanReadable())
	return result, nil
}

// lock prevents two exports in one project, it is used only with the local filesystem.
func (e *Exporter) lock(ctx context.Context) (unlock func(), err error) {
	if e.fs.ApiName() != "local" {
		return func() {}, nil
	}

	path := filesystem.FromSlash(filesystem.Join(e.fs.BasePath(), e.layout.ExportDir(), LockFile))
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.PrefixErrorf(err, `cannot lock "%s"`, path)
	}
	if !locked {
		return nil, errors.Errorf(`another export is running in the project, lock "%s" is held`, path)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			e.logger.Warnf(ctx, `Cannot unlock "%s": %s`, path, err)
		}
		_ = os.Remove(path) // nolint: forbidigo
	}, nil
}

func (e *Exporter) removeStaging(ctx context.Context, stagingRoot string) {
	if err := e.fs.Remove(ctx, stagingRoot); err != nil {
		e.logger.Warnf(ctx, `Cannot remove staging directory "%s": %s`, stagingRoot, err)
	}
}
