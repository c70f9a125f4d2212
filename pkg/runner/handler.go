package runner

import (
	"context"

	"github.com/aretw0/fsnav/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the actions produced by one command, in order.
	Output(ctx context.Context, actions []domain.ActionRequest) error

	// Input shows prompt and reads the next line.
	// Returns io.EOF when input is exhausted.
	Input(ctx context.Context, prompt string) (string, error)

	// Error reports a failed command. The session continues afterwards.
	Error(ctx context.Context, err error) error

	// SystemOutput presents a meta-message to the user (e.g. status updates).
	// This is distinct from command output.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms file content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
