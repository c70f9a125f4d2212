package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/aretw0/fsnav/pkg/runner"
)

const defaultWrap = 80

// NewRenderer returns a markdown renderer for show output.
// A zero width wraps at the terminal width, or 80 columns without one.
func NewRenderer(width int) (runner.ContentRenderer, error) {
	if width <= 0 {
		width = TerminalWidth(os.Stdout)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or 80 when unknown.
func TerminalWidth(f *os.File) int {
	if !IsTerminal(f) {
		return defaultWrap
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWrap
	}
	return w
}
