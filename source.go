package palette

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source resolves a resource name to the raw bytes of a themes document.
// Implementations cover the usual places a document lives: a directory on
// disk, an fs.FS (including embedded bundles), or an in-memory map for
// tests.
type Source interface {
	// ReadResource returns the bytes of the named resource. Absent
	// resources should be reported with an error satisfying
	// errors.Is(err, fs.ErrNotExist) where possible; the loader folds any
	// failure into a FileNotFoundError regardless.
	ReadResource(name string) ([]byte, error)
}

// DirSource reads resources from a directory on disk.
type DirSource string

// ReadResource implements Source.
func (d DirSource) ReadResource(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), name))
}

// FSSource reads resources from an fs.FS, such as an embed.FS.
type FSSource struct {
	FS fs.FS
}

// ReadResource implements Source.
func (s FSSource) ReadResource(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}

// MemorySource serves resources from a map keyed by resource name.
type MemorySource map[string][]byte

// ReadResource implements Source.
func (m MemorySource) ReadResource(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}
