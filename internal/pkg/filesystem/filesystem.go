// Package filesystem abstracts the project directory.
// All paths are slash separated and relative to the base path of the filesystem.
// nolint: forbidigo
package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/atomic-component-engine/ace/internal/pkg/log"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	PathSeparator = "/"
	Loc           = "."
)

type (
	FileInfo = fs.FileInfo
	WalkFunc = filepath.WalkFunc
)

// SkipDir can be returned from the WalkFunc to skip a directory.
var SkipDir = filepath.SkipDir //nolint:errname

// Fs - filesystem interface.
type Fs interface {
	ApiName() string // name of the used implementation, for example local, memory, ...
	BasePath() string
	WorkingDir() string
	Logger() log.Logger
	Walk(ctx context.Context, root string, walkFn WalkFunc) error
	Glob(ctx context.Context, pattern string) (matches []string, err error)
	Stat(ctx context.Context, path string) (FileInfo, error)
	ReadDir(ctx context.Context, path string) ([]FileInfo, error)
	Mkdir(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) bool
	IsFile(ctx context.Context, path string) bool
	IsDir(ctx context.Context, path string) bool
	Create(ctx context.Context, name string) (afero.File, error)
	Open(ctx context.Context, name string) (afero.File, error)
	OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (afero.File, error)
	Copy(ctx context.Context, src, dst string) error
	Move(ctx context.Context, src, dst string) error
	Remove(ctx context.Context, path string) error
	ReadFile(ctx context.Context, def *FileDef) (*RawFile, error)
	ReadJSONFileTo(ctx context.Context, def *FileDef, target any) (*RawFile, error)
	WriteFile(ctx context.Context, file File) error
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return path.Join(elem...)
}

// Split splits path immediately following the final Separator.
func Split(p string) (dir, file string) {
	return path.Split(p)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(p string) string {
	return path.Dir(p)
}

// Base returns the last element of path.
func Base(p string) string {
	return path.Base(p)
}

// Ext returns the file name extension used by path.
func Ext(p string) string {
	return path.Ext(p)
}

// Match reports whether name matches the shell file name pattern.
func Match(pattern, name string) (matched bool, err error) {
	return path.Match(pattern, name)
}

// IsAbs reports whether the path is absolute.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, PathSeparator) || filepath.IsAbs(p)
}

// Rel returns relative path.
func Rel(base, p string) (string, error) {
	base = strings.TrimPrefix(base, PathSeparator)
	p = strings.TrimPrefix(p, PathSeparator)
	if base == "" || base == Loc {
		return path.Clean(p), nil
	}
	rel, err := filepath.Rel(FromSlash(base), FromSlash(p))
	if err != nil {
		return "", errors.Errorf(`cannot get relative path, base="%s", path="%s"`, base, p)
	}
	return ToSlash(rel), nil
}

// IsFrom returns true if path is from base dir or some sub-dir.
func IsFrom(p, base string) bool {
	if base == "" || base == Loc {
		return true
	}
	base = strings.TrimRight(base, PathSeparator) + PathSeparator
	return strings.HasPrefix(p+PathSeparator, base)
}

// FromSlash returns OS representation of the path.
func FromSlash(p string) string {
	return filepath.FromSlash(p)
}

// ToSlash returns internal representation of the path.
func ToSlash(p string) string {
	return filepath.ToSlash(p)
}
