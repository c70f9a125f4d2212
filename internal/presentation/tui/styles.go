package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles decorates session output for w's color profile.
type Styles struct {
	out *termenv.Output
}

// NewStyles detects the color profile of w.
func NewStyles(w io.Writer) Styles {
	return Styles{out: termenv.NewOutput(w)}
}

// Error renders failures in red.
func (s Styles) Error(msg string) string {
	return s.out.String(msg).Foreground(s.out.Color("#f87171")).String()
}

// Prompt renders the prompt in bold teal.
func (s Styles) Prompt(prompt string) string {
	return s.out.String(prompt).Foreground(s.out.Color("#2dd4bf")).Bold().String()
}
