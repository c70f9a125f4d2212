package ports

import (
	"iter"

	"github.com/aretw0/fsnav/pkg/domain"
)

// Storage defines the read-only queries the navigator performs on a file tree.
// Implementations must release every directory or file handle before returning.
type Storage interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// Attributes returns the basic metadata of path.
	// Fails when the path does not exist or its attributes cannot be read.
	Attributes(path string) (domain.Attributes, error)

	// ReadDir returns the names of the immediate entries of path.
	// On a read failure part way through it returns the names read so far
	// together with the error.
	ReadDir(path string) ([]string, error)

	// Lines returns a lazy sequence of the lines of a regular file.
	// The boolean is false when path is not a regular file; that is a
	// reported condition, not an error.
	Lines(path string) (iter.Seq2[string, error], bool)
}
