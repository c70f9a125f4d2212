// Package memory provides an in-memory file tree for tests, examples and demos.
package memory

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/aretw0/fsnav/pkg/adapters/afs"
)

// Tree describes a file tree below a root.
// Files maps slash-separated relative paths to content; Dirs lists extra
// (possibly empty) directories. Parent directories are created implicitly.
type Tree struct {
	Dirs  []string
	Files map[string]string
}

// NewFS builds an afero in-memory file system holding tree below root.
func NewFS(root string, tree Tree) (afero.Fs, error) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root %s: %w", root, err)
	}

	dirs := append([]string(nil), tree.Dirs...)
	sort.Strings(dirs) // Deterministic order
	for _, d := range dirs {
		p := filepath.Join(root, filepath.FromSlash(d))
		if err := fsys.MkdirAll(p, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	for name, content := range tree.Files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := fsys.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create parent of %s: %w", name, err)
		}
		if err := afero.WriteFile(fsys, p, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return fsys, nil
}

// NewStorage returns a read-only Storage over an in-memory copy of tree.
func NewStorage(root string, tree Tree) (*afs.Storage, error) {
	fsys, err := NewFS(root, tree)
	if err != nil {
		return nil, err
	}
	return afs.New(fsys), nil
}
