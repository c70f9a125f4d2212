package tests

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/aretw0/fsnav/pkg/ports"
)

// Fixture describes the tree a Storage under test was seeded with.
// Files maps a path below Root to its content; Dirs lists directories below Root.
type Fixture struct {
	Root  string
	Dirs  []string
	Files map[string]string
}

// StorageContractTest is a reusable test suite that verifies if an adapter complies with ports.Storage.
func StorageContractTest(t *testing.T, storage ports.Storage, fx Fixture) {
	t.Helper()

	t.Run("IsDir", func(t *testing.T) {
		if !storage.IsDir(fx.Root) {
			t.Fatalf("expected root %s to be a directory", fx.Root)
		}
		for _, d := range fx.Dirs {
			if !storage.IsDir(filepath.Join(fx.Root, d)) {
				t.Errorf("expected %s to be a directory", d)
			}
		}
		for f := range fx.Files {
			if storage.IsDir(filepath.Join(fx.Root, f)) {
				t.Errorf("expected %s not to be a directory", f)
			}
		}
		if storage.IsDir(filepath.Join(fx.Root, "does-not-exist")) {
			t.Error("expected missing path not to be a directory")
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		names, err := storage.ReadDir(fx.Root)
		if err != nil {
			t.Fatalf("unexpected error listing root: %v", err)
		}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			seen[n] = true
		}
		for _, d := range fx.Dirs {
			if filepath.Dir(d) == "." && !seen[d] {
				t.Errorf("listing missing directory %s: %v", d, names)
			}
		}
		for f := range fx.Files {
			if filepath.Dir(f) == "." && !seen[f] {
				t.Errorf("listing missing file %s: %v", f, names)
			}
		}
	})

	t.Run("Attributes", func(t *testing.T) {
		for f, content := range fx.Files {
			attrs, err := storage.Attributes(filepath.Join(fx.Root, f))
			if err != nil {
				t.Fatalf("unexpected error reading attributes of %s: %v", f, err)
			}
			if attrs.IsDir {
				t.Errorf("expected %s not to be a directory", f)
			}
			if attrs.Size != int64(len(content)) {
				t.Errorf("size mismatch for %s: got %d, want %d", f, attrs.Size, len(content))
			}
		}

		if _, err := storage.Attributes(filepath.Join(fx.Root, "does-not-exist")); err == nil {
			t.Error("expected error for missing path, got nil")
		}
	})

	t.Run("Lines", func(t *testing.T) {
		for f, content := range fx.Files {
			seq, ok := storage.Lines(filepath.Join(fx.Root, f))
			if !ok {
				t.Fatalf("expected %s to be a regular file", f)
			}
			// Two passes: each range re-reads from the start.
			for pass := 0; pass < 2; pass++ {
				var got []string
				for line, err := range seq {
					if err != nil {
						t.Fatalf("unexpected read error: %v", err)
					}
					got = append(got, line)
				}
				if want := splitLines(content); !slices.Equal(got, want) {
					t.Errorf("pass %d lines mismatch for %s: got %q, want %q", pass, f, got, want)
				}
			}
		}

		if _, ok := storage.Lines(fx.Root); ok {
			t.Error("expected directory not to be a regular file")
		}
		if _, ok := storage.Lines(filepath.Join(fx.Root, "does-not-exist")); ok {
			t.Error("expected missing path not to be a regular file")
		}
	})

	t.Run("Lines_EarlyStop", func(t *testing.T) {
		for f := range fx.Files {
			seq, _ := storage.Lines(filepath.Join(fx.Root, f))
			// Breaking out must not panic and must release the file.
			for _, err := range seq {
				if err != nil {
					t.Fatalf("unexpected read error: %v", err)
				}
				break
			}
		}
	})
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
