package aferofs

import (
	"github.com/spf13/afero"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs/abstract"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// subDirBackend restricts a backend to its sub-directory.
type subDirBackend struct {
	afero.Fs
	utils    *afero.Afero
	name     string
	basePath string
}

// SubDirFs returns a filesystem rooted in the dir of the parent filesystem, the dir must exist.
func SubDirFs(parent filesystem.Fs, dir string, opts ...Option) (filesystem.Fs, error) {
	provider, ok := parent.(abstract.BackendProvider)
	if !ok {
		return nil, errors.Errorf(`unexpected type of filesystem "%T"`, parent)
	}

	dir = normalize(dir)
	backend := provider.Backend()
	if stat, err := backend.Stat(dir); err != nil || !stat.IsDir() {
		return nil, errors.Errorf(`directory "%s" not found`, dir)
	}

	fs := afero.NewBasePathFs(backend, filesystem.FromSlash(dir))
	return New(&subDirBackend{
		Fs:       fs,
		utils:    &afero.Afero{Fs: fs},
		name:     backend.Name(),
		basePath: filesystem.Join(backend.BasePath(), dir),
	}, opts...), nil
}

func (b *subDirBackend) Name() string {
	return b.name
}

func (b *subDirBackend) BasePath() string {
	return b.basePath
}

func (b *subDirBackend) Walk(root string, walkFn filesystem.WalkFunc) error {
	return b.utils.Walk(filesystem.FromSlash(root), func(path string, info filesystem.FileInfo, err error) error {
		return walkFn(filesystem.ToSlash(path), info, err)
	})
}

func (b *subDirBackend) ReadDir(path string) ([]filesystem.FileInfo, error) {
	return b.utils.ReadDir(filesystem.FromSlash(path))
}
