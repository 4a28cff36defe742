package export

import (
	"context"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

const (
	dirSuffix     = "/**"
	globMetaChars = `\*?[]{}`
)

// Manifest contains staged paths, relative to the staging root.
// A directory is recorded as "<dir>/**", a file by its path.
// Glob meta characters in names are escaped, so each entry matches its literal path only.
type Manifest struct {
	entries []manifestEntry
}

type manifestEntry struct {
	path    string
	isDir   bool
	pattern string
}

func NewManifest() *Manifest {
	return &Manifest{}
}

func (m *Manifest) AddDir(path string) {
	m.entries = append(m.entries, manifestEntry{path: path, isDir: true, pattern: escapeGlob(path) + dirSuffix})
}

func (m *Manifest) AddFile(path string) {
	m.entries = append(m.entries, manifestEntry{path: path, pattern: escapeGlob(path)})
}

// Entries returns recorded patterns in the staging order.
func (m *Manifest) Entries() []string {
	out := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, entry.pattern)
	}
	return out
}

// Paths returns staged files and directories, without the "/**" suffix.
func (m *Manifest) Paths() []string {
	out := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, entry.path)
	}
	return out
}

// Match returns true if the path, relative to the staging root, is covered by an entry.
func (m *Manifest) Match(path string) bool {
	for _, entry := range m.entries {
		if entry.match(path) {
			return true
		}
	}
	return false
}

// Files returns all staged files matched by the manifest, relative to the root, sorted.
// A file entry without the file, or a directory entry not matching its files, is an error.
func (m *Manifest) Files(ctx context.Context, fs filesystem.Fs, root string) ([]string, error) {
	var out, all []string
	matched := make([]bool, len(m.entries))
	err := fs.Walk(ctx, root, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filesystem.Rel(root, filesystem.ToSlash(path))
		if err != nil {
			return err
		}
		all = append(all, rel)
		found := false
		for i, entry := range m.entries {
			if entry.match(rel) {
				matched[i] = true
				found = true
			}
		}
		if found {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	errs := errors.NewMultiError()
	for i, entry := range m.entries {
		if matched[i] {
			continue
		}
		if !entry.isDir {
			errs.Append(errors.Errorf(`staged file "%s" not found`, entry.path))
			continue
		}
		for _, rel := range all {
			if filesystem.IsFrom(rel, entry.path) {
				errs.Append(errors.Errorf(`staged directory "%s" does not match its files`, entry.path))
				break
			}
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

func (e manifestEntry) match(path string) bool {
	matched, err := doublestar.Match(e.pattern, path)
	return err == nil && matched
}

// escapeGlob escapes characters with a special meaning in doublestar patterns.
func escapeGlob(path string) string {
	if !strings.ContainsAny(path, globMetaChars) {
		return path
	}
	var b strings.Builder
	for _, r := range path {
		if strings.ContainsRune(globMetaChars, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
