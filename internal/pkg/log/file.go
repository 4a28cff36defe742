package log

import (
	"context"
	"os"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// File is the log file, defined by the --log-file flag, or a temporary file.
type File struct {
	file      *os.File
	temporary bool
}

// NewLogFile opens the log file, if the path is empty, a temporary file is created.
// The temporary file is removed on TearDown, if no error occurred.
func NewLogFile(path string) (*File, error) {
	if path == "" {
		file, err := os.CreateTemp("", "ace-*.log")
		if err != nil {
			return nil, errors.Errorf(`cannot create temp log file: %w`, err)
		}
		return &File{file: file, temporary: true}, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // nolint: gosec
	if err != nil {
		return nil, errors.Errorf(`cannot open log file "%s": %w`, path, err)
	}
	return &File{file: file}, nil
}

func (f *File) File() *os.File {
	return f.file
}

func (f *File) Path() string {
	return f.file.Name()
}

func (f *File) IsTemp() bool {
	return f.temporary
}

// TearDown closes the file, the temporary file is kept on error, so it can be attached to a bug report.
func (f *File) TearDown(ctx context.Context, logger Logger, errOccurred bool) {
	if f.temporary {
		if errOccurred {
			logger.Infof(ctx, "Details can be found in the log file \"%s\".", f.Path())
		}
	}

	if err := f.file.Close(); err != nil {
		logger.Warnf(ctx, "Cannot close log file \"%s\": %s", f.Path(), err)
	}

	if f.temporary && !errOccurred {
		if err := os.Remove(f.Path()); err != nil {
			logger.Warnf(ctx, "Cannot remove temp log file \"%s\": %s", f.Path(), err)
		}
	}
}
