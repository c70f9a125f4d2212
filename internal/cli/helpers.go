package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fsnav/internal/config"
	"github.com/aretw0/fsnav/internal/logging"
	"github.com/aretw0/fsnav/internal/presentation/tui"
	"github.com/aretw0/fsnav/pkg/runner"
)

// createLogger configures the application logger on w (normally Stderr,
// to keep it apart from the session output).
func createLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return logging.NewWriter(w, cfg.Level())
}

// createHandler picks the IO strategy for the session.
func createHandler(cfg config.Config, opts RunOptions, logger *slog.Logger) runner.IOHandler {
	if cfg.JSON {
		h := runner.NewJSONHandler(opts.Stdin, opts.Stdout)
		h.MaxInputSize = cfg.MaxInputSize
		return h
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithMaxInputSize(cfg.MaxInputSize),
	}
	if opts.Interactive {
		styles := tui.NewStyles(opts.Stdout)
		handlerOpts = append(handlerOpts,
			runner.WithErrorStyle(styles.Error),
			runner.WithPromptStyle(styles.Prompt),
		)
	}
	if cfg.Render {
		render, err := tui.NewRenderer(0)
		if err != nil {
			logger.Warn("markdown rendering disabled", "err", err)
		} else {
			handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
		}
	}
	return runner.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n>>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
