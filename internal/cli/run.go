package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/fsnav/internal/config"
	"github.com/aretw0/fsnav/pkg/ports"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config config.Config

	// Interactive enables the banner and colors. The cmd layer sets it when
	// both stdin and stdout are terminals.
	Interactive bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Storage replaces the host file system (tests, demos).
	Storage ports.Storage
}

// Execute runs one navigation session with opts.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return RunSession(ctx, opts)
}
