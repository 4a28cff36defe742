package export

import (
	"context"
	"io"
	"os"

	"github.com/klauspost/compress/zip"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const tmpSuffix = ".tmp"

// Archive writes files matched by the manifest to the zip, paths are relative to the staging root.
// The zip is written to a temporary file, flushed and renamed, so the returned nil means the archive is complete.
// On error, the temporary file is removed and model.ArchiveError is returned.
func (e *Exporter) Archive(ctx context.Context, m *Manifest, stagingRoot, destZip string) (err error) {
	ctx, span := e.telemetry.Tracer().Start(ctx, "ace.export.archive")
	defer span.End(&err)

	tmpPath := destZip + tmpSuffix
	defer func() {
		if err != nil {
			_ = e.fs.Remove(ctx, tmpPath)
			err = model.ArchiveError{Path: destZip, Err: err}
		}
	}()

	files, err := m.Files(ctx, e.fs, stagingRoot)
	if err != nil {
		return err
	}

	if err := e.fs.Mkdir(ctx, filesystem.Dir(destZip)); err != nil {
		return err
	}
	out, err := e.fs.OpenFile(ctx, tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := zip.NewWriter(out)
	for _, rel := range files {
		if err := e.addToZip(ctx, w, filesystem.Join(stagingRoot, rel), rel); err != nil {
			_ = w.Close()
			_ = out.Close()
			return errors.PrefixErrorf(err, `cannot add "%s"`, rel)
		}
	}

	// Flush the archive before rename
	if err := w.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := e.fs.Remove(ctx, destZip); err != nil {
		return err
	}
	if err := e.fs.Move(ctx, tmpPath, destZip); err != nil {
		return err
	}

	e.logger.Debugf(ctx, `Archive "%s" written, %d files.`, destZip, len(files))
	return nil
}

func (e *Exporter) addToZip(ctx context.Context, w *zip.Writer, path, name string) error {
	info, err := e.fs.Stat(ctx, path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := e.fs.Open(ctx, path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}
