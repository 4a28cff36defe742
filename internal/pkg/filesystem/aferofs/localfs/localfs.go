// nolint: forbidigo
package localfs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
)

type fs = afero.Fs

// LocalFs is abstraction of the local filesystem implemented by "os" package
// All paths are relative to the basePath.
type LocalFs struct {
	fs
	utils    *afero.Afero
	basePath string
}

func New(basePath string) *LocalFs {
	if !filepath.IsAbs(basePath) {
		panic(fmt.Errorf(`base path "%s" must be absolute`, basePath))
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), basePath)
	return &LocalFs{
		fs:       fs,
		utils:    &afero.Afero{Fs: fs},
		basePath: basePath,
	}
}

func (fs *LocalFs) Name() string {
	return `local`
}

func (fs *LocalFs) BasePath() string {
	return fs.basePath
}

func (fs *LocalFs) Walk(root string, walkFn filesystem.WalkFunc) error {
	return fs.utils.Walk(filesystem.FromSlash(root), func(path string, info filesystem.FileInfo, err error) error {
		return walkFn(filesystem.ToSlash(path), info, err)
	})
}

func (fs *LocalFs) ReadDir(path string) ([]filesystem.FileInfo, error) {
	return fs.utils.ReadDir(filesystem.FromSlash(path))
}
