package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/fsnav/pkg/domain"
	"github.com/aretw0/fsnav/pkg/ports"
)

// Runner handles the session loop using provided IO.
// This allows for easy testing and integration with different frontends (CLI, JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Prompt is the prompt template; {path} expands to the location below the root.
	Prompt string
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the session loop until the exit command, end of input or
// cancellation of ctx. It returns the final navigation state.
//
// Command failures never end the loop: each is reported through the
// handler and the next line is read. Only input/output failures and
// cancellation are returned.
func (r *Runner) Run(ctx context.Context, nav ports.Navigator, state domain.State) (domain.State, error) {
	handler := r.resolveHandler()
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for {
		line, err := handler.Input(ctx, r.promptFor(state))
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed", "path", state.Current())
				return state, nil
			}
			if ctx.Err() != nil {
				logger.Debug("session cancelled", "err", ctx.Err())
				return state, ctx.Err()
			}
			return state, fmt.Errorf("input error: %w", err)
		}

		res, err := r.step(ctx, nav, state, line)
		if err != nil {
			logger.Debug("command rejected", "line", line, "code", domain.CodeOf(err), "err", err)
			if herr := handler.Error(ctx, err); herr != nil {
				return state, fmt.Errorf("output error: %w", herr)
			}
			continue
		}

		if err := handler.Output(ctx, res.Actions); err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		state = res.State
		if res.Stop {
			return state, nil
		}
	}
}

func (r *Runner) step(ctx context.Context, nav ports.Navigator, state domain.State, line string) (domain.Result, error) {
	inv, err := nav.Parse(ctx, line)
	if err != nil {
		return domain.Result{State: state}, err
	}
	return nav.Apply(ctx, state, inv)
}

func (r *Runner) promptFor(state domain.State) string {
	return strings.ReplaceAll(r.Prompt, "{path}", state.Location())
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	return r.Handler
}
