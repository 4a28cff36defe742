// Package aferofs implements filesystem.Fs by the afero library, with the local and the memory backend.
// nolint: forbidigo
package aferofs

import (
	"context"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs/abstract"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs/localfs"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs/memoryfs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type Fs struct {
	backend    abstract.Backend
	utils      *afero.Afero
	logger     log.Logger
	workingDir string
}

type config struct {
	logger     log.Logger
	workingDir string
}

type Option func(c *config)

func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithWorkingDir sets working dir relative to the base path.
func WithWorkingDir(workingDir string) Option {
	return func(c *config) {
		c.workingDir = workingDir
	}
}

func NewLocalFs(basePath string, opts ...Option) (filesystem.Fs, error) {
	return New(localfs.New(basePath), opts...), nil
}

func NewMemoryFs(opts ...Option) filesystem.Fs {
	return New(memoryfs.New(), opts...)
}

func New(backend abstract.Backend, opts ...Option) *Fs {
	c := config{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(&c)
	}
	return &Fs{
		backend:    backend,
		utils:      &afero.Afero{Fs: backend},
		logger:     c.logger,
		workingDir: normalize(c.workingDir),
	}
}

func (f *Fs) Backend() abstract.Backend {
	return f.backend
}

// ApiName returns name of the backend implementation.
func (f *Fs) ApiName() string {
	return f.backend.Name()
}

func (f *Fs) BasePath() string {
	return f.backend.BasePath()
}

func (f *Fs) WorkingDir() string {
	return f.workingDir
}

func (f *Fs) Logger() log.Logger {
	return f.logger
}

func (f *Fs) Walk(_ context.Context, root string, walkFn filesystem.WalkFunc) error {
	return f.backend.Walk(normalize(root), walkFn)
}

// Glob returns sorted matches of the pattern, the pattern syntax is the same as in the filesystem.Match.
func (f *Fs) Glob(_ context.Context, pattern string) (matches []string, err error) {
	matches, err = afero.Glob(f.backend, filesystem.FromSlash(normalize(pattern)))
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filesystem.ToSlash(m)
	}
	sort.Strings(matches)
	return matches, nil
}

func (f *Fs) Stat(_ context.Context, p string) (filesystem.FileInfo, error) {
	return f.backend.Stat(normalize(p))
}

// ReadDir returns directory entries sorted by name.
func (f *Fs) ReadDir(_ context.Context, p string) ([]filesystem.FileInfo, error) {
	items, err := f.backend.ReadDir(normalize(p))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name() < items[j].Name()
	})
	return items, nil
}

// Mkdir creates the directory and all parents.
func (f *Fs) Mkdir(_ context.Context, p string) error {
	return f.backend.MkdirAll(normalize(p), dirPerm)
}

func (f *Fs) Exists(_ context.Context, p string) bool {
	_, err := f.backend.Stat(normalize(p))
	return err == nil
}

func (f *Fs) IsFile(_ context.Context, p string) bool {
	s, err := f.backend.Stat(normalize(p))
	return err == nil && !s.IsDir()
}

func (f *Fs) IsDir(_ context.Context, p string) bool {
	s, err := f.backend.Stat(normalize(p))
	return err == nil && s.IsDir()
}

func (f *Fs) Create(_ context.Context, name string) (afero.File, error) {
	return f.backend.Create(normalize(name))
}

func (f *Fs) Open(_ context.Context, name string) (afero.File, error) {
	return f.backend.Open(normalize(name))
}

func (f *Fs) OpenFile(_ context.Context, name string, flag int, perm os.FileMode) (afero.File, error) {
	return f.backend.OpenFile(normalize(name), flag, perm)
}

// Copy copies a file or a directory, the destination must not exist.
func (f *Fs) Copy(ctx context.Context, src, dst string) error {
	src, dst = normalize(src), normalize(dst)
	if !f.Exists(ctx, src) {
		return errors.Errorf(`cannot copy "%s" -> "%s": source path doesn't exist`, src, dst)
	}
	if f.Exists(ctx, dst) {
		return errors.Errorf(`cannot copy "%s" -> "%s": destination exists`, src, dst)
	}
	if err := f.Mkdir(ctx, filesystem.Dir(dst)); err != nil {
		return err
	}
	return CopyFs2Fs(f, src, f, dst)
}

// Move renames a file or a directory, the destination must not exist.
func (f *Fs) Move(ctx context.Context, src, dst string) error {
	src, dst = normalize(src), normalize(dst)
	if !f.Exists(ctx, src) {
		return errors.Errorf(`cannot move "%s" -> "%s": source path doesn't exist`, src, dst)
	}
	if f.Exists(ctx, dst) {
		return errors.Errorf(`cannot move "%s" -> "%s": destination exists`, src, dst)
	}
	if err := f.Mkdir(ctx, filesystem.Dir(dst)); err != nil {
		return err
	}
	return f.backend.Rename(src, dst)
}

// Remove removes a file or a directory with all its content, a missing path is not an error.
func (f *Fs) Remove(_ context.Context, p string) error {
	return f.backend.RemoveAll(normalize(p))
}

func (f *Fs) ReadFile(ctx context.Context, def *filesystem.FileDef) (*filesystem.RawFile, error) {
	p := normalize(def.Path())
	fd, err := f.backend.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Errorf(`missing %s`, def.String())
		}
		return nil, errors.PrefixErrorf(err, `cannot open %s`, def.String())
	}
	defer fd.Close()

	content, err := io.ReadAll(fd)
	if err != nil {
		return nil, errors.PrefixErrorf(err, `cannot read %s`, def.String())
	}

	f.logger.Debugf(ctx, `Loaded "%s"`, p)
	return filesystem.NewRawFile(def.Path(), string(content)).SetDescription(def.Description()), nil
}

func (f *Fs) ReadJSONFileTo(ctx context.Context, def *filesystem.FileDef, target any) (*filesystem.RawFile, error) {
	file, err := f.ReadFile(ctx, def)
	if err != nil {
		return nil, err
	}
	if err := file.DecodeJSONTo(target); err != nil {
		return nil, err
	}
	return file, nil
}

// WriteFile writes the file, missing parent directories are created.
func (f *Fs) WriteFile(ctx context.Context, file filesystem.File) error {
	raw, err := file.ToRawFile()
	if err != nil {
		return err
	}

	p := normalize(raw.Path())
	if err := f.Mkdir(ctx, filesystem.Dir(p)); err != nil {
		return err
	}
	if err := f.utils.WriteFile(p, []byte(raw.Content), filePerm); err != nil {
		return errors.PrefixErrorf(err, `cannot write %s`, raw.String())
	}

	f.logger.Debugf(ctx, `Saved "%s"`, p)
	return nil
}

// normalize converts the path to the form relative to the base path.
func normalize(p string) string {
	p = strings.TrimLeft(filesystem.ToSlash(p), filesystem.PathSeparator)
	if p == "" {
		return filesystem.Loc
	}
	return path.Clean(p)
}
