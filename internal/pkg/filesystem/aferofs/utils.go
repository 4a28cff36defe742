package aferofs

import (
	"github.com/spf13/afero"
	"go.nhat.io/aferocopy/v2"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs/abstract"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const CopyBufferSize uint = 512 * 1024 // 512 kB

// CopyFs2Fs copies a file or a directory between two filesystems, nil means the OS filesystem.
// Existing directories in the destination are replaced.
func CopyFs2Fs(srcFs filesystem.Fs, srcPath string, dstFs filesystem.Fs, dstPath string) error {
	aferoSrc, err := aferoBackend(srcFs)
	if err != nil {
		return errors.PrefixError(err, "invalid source")
	}
	aferoDst, err := aferoBackend(dstFs)
	if err != nil {
		return errors.PrefixError(err, "invalid destination")
	}

	// nolint: forbidigo
	return aferocopy.Copy(filesystem.FromSlash(normalize(srcPath)), filesystem.FromSlash(normalize(dstPath)), aferocopy.Options{
		SrcFs:          aferoSrc,
		DestFs:         aferoDst,
		Sync:           false,
		CopyBufferSize: CopyBufferSize,
		OnDirExists: func(srcFs afero.Fs, src string, destFs afero.Fs, dest string) aferocopy.DirExistsAction {
			return aferocopy.Replace
		},
	})
}

func aferoBackend(fs filesystem.Fs) (afero.Fs, error) {
	if fs == nil {
		// If nil, use OS filesystem
		return afero.NewOsFs(), nil
	}
	if v, ok := fs.(abstract.BackendProvider); ok {
		// If filesystem implemented by Afero lib -> get lib backend
		return v.Backend(), nil
	}
	return nil, errors.Errorf(`unexpected type of filesystem "%T"`, fs)
}
