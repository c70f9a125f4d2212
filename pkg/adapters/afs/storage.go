// Package afs implements ports.Storage on top of an afero file system.
package afs

import (
	"bufio"
	"fmt"
	"iter"
	"slices"

	"github.com/djherbis/times"
	"github.com/spf13/afero"

	"github.com/aretw0/fsnav/pkg/domain"
)

// MaxLineSize bounds a single line read by Lines.
const MaxLineSize = 1024 * 1024

// Storage implements ports.Storage over any afero.Fs.
// The underlying file system is wrapped read-only, so nothing reachable
// through Storage can modify the tree.
type Storage struct {
	fs afero.Fs
}

// New wraps fsys in a read-only Storage.
func New(fsys afero.Fs) *Storage {
	return &Storage{fs: afero.NewReadOnlyFs(fsys)}
}

// NewOS returns a Storage over the host file system.
func NewOS() *Storage {
	return New(afero.NewOsFs())
}

// IsDir reports whether path exists and is a directory.
func (s *Storage) IsDir(path string) bool {
	ok, err := afero.IsDir(s.fs, path)
	return err == nil && ok
}

// Attributes returns the basic metadata of path, following symbolic links.
func (s *Storage) Attributes(path string) (domain.Attributes, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return domain.Attributes{}, fmt.Errorf("failed to read attributes of %s: %w", path, err)
	}

	attrs := domain.Attributes{
		Name:     info.Name(),
		IsDir:    info.IsDir(),
		Size:     info.Size(),
		Modified: info.ModTime(),
		Created:  info.ModTime(),
		Accessed: info.ModTime(),
	}

	// In-memory file systems carry no platform stat data.
	if info.Sys() == nil {
		return attrs, nil
	}

	ts := times.Get(info)
	attrs.Accessed = ts.AccessTime()
	if ts.HasBirthTime() {
		attrs.Created = ts.BirthTime()
	}
	return attrs, nil
}

// ReadDir returns the sorted names of the immediate entries of path.
// The directory handle is closed before returning.
func (s *Storage) ReadDir(path string) ([]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	slices.Sort(names)
	if err != nil {
		return names, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	return names, nil
}

// Lines returns a lazy sequence over the lines of a regular file.
// Every range opens the file anew and closes it on every exit path.
// A read failure is yielded once and ends the sequence.
func (s *Storage) Lines(path string) (iter.Seq2[string, error], bool) {
	info, err := s.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}

	return func(yield func(string, error) bool) {
		f, err := s.fs.Open(path)
		if err != nil {
			yield("", fmt.Errorf("failed to open %s: %w", path, err))
			return
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("failed to read %s: %w", path, err))
		}
	}, true
}
