package runner

import (
	"log/slog"
)

// DefaultPrompt is shown before each command. {path} expands to the
// current directory relative to the root.
const DefaultPrompt = "fsnav:{path}> "

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithPrompt sets the prompt template.
func WithPrompt(prompt string) Option {
	return func(r *Runner) {
		if prompt != "" {
			r.Prompt = prompt
		}
	}
}
