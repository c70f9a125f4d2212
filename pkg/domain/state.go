package domain

import (
	"path/filepath"
	"strings"
)

// State is the navigation snapshot threaded through a session.
// It is a value: transitions return a new State and never modify the old one.
type State struct {
	// root is the boundary the session may never leave.
	root string
	// current is the directory commands resolve names against.
	current string
}

// NewState creates a state positioned at root.
func NewState(root string) State {
	clean := filepath.Clean(root)
	return State{root: clean, current: clean}
}

// Root returns the session boundary.
func (s State) Root() string {
	return s.root
}

// Current returns the current directory.
func (s State) Current() string {
	return s.current
}

// AtRoot reports whether the current directory is the root boundary.
func (s State) AtRoot() bool {
	return s.current == s.root
}

// With returns a copy of the state positioned at path.
func (s State) With(path string) State {
	return State{root: s.root, current: filepath.Clean(path)}
}

// Resolve joins name onto the current directory.
func (s State) Resolve(name string) string {
	return filepath.Join(s.current, name)
}

// Parent returns the directory containing the current one.
func (s State) Parent() string {
	return filepath.Dir(s.current)
}

// Contains reports whether path is the root or lies beneath it.
func (s State) Contains(path string) bool {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Location renders the current directory relative to the root, using "/" for the root itself.
func (s State) Location() string {
	rel, err := filepath.Rel(s.root, s.current)
	if err != nil || rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel)
}
