package abstract

import (
	"github.com/spf13/afero"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
)

// Backend is an afero filesystem, all paths are relative to the BasePath.
type Backend interface {
	afero.Fs
	Name() string
	BasePath() string
	Walk(root string, walkFn filesystem.WalkFunc) error
	ReadDir(path string) ([]filesystem.FileInfo, error)
}

type BackendProvider interface {
	Backend() Backend
}
