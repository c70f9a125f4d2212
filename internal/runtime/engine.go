package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/fsnav/pkg/domain"
	"github.com/aretw0/fsnav/pkg/ports"
)

// DefaultExcludedExtensions are the binary/media extensions show refuses.
var DefaultExcludedExtensions = []string{".mp3", ".mp4"}

// DefaultFarewell is printed by the exit command.
const DefaultFarewell = "Exiting..."

// Engine is the navigation state machine.
// It holds no session state: every call receives the current State and
// returns the next one.
type Engine struct {
	storage  ports.Storage
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	excluded []string
	farewell string
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithExcludedExtensions replaces the extensions show refuses.
// Matching is a case-sensitive suffix test on the file name.
func WithExcludedExtensions(exts ...string) EngineOption {
	return func(e *Engine) {
		e.excluded = append([]string(nil), exts...)
	}
}

// WithFarewell sets the message printed by exit.
func WithFarewell(msg string) EngineOption {
	return func(e *Engine) {
		if msg != "" {
			e.farewell = msg
		}
	}
}

// NewEngine creates a state machine over storage.
func NewEngine(storage ports.Storage, opts ...EngineOption) *Engine {
	e := &Engine{
		storage:  storage,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		excluded: append([]string(nil), DefaultExcludedExtensions...),
		farewell: DefaultFarewell,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial state positioned at root.
// Root must exist and be a directory.
func (e *Engine) Start(root string) (domain.State, error) {
	clean := filepath.Clean(root)
	if !e.storage.IsDir(clean) {
		return domain.State{}, fmt.Errorf("root %s: %w", clean, domain.ErrNotADirectory)
	}
	e.logger.Debug("session started", "root", clean)
	return domain.NewState(clean), nil
}

// Apply runs inv against state.
// On failure the Result carries the unchanged input state and the error is a *domain.Error.
func (e *Engine) Apply(ctx context.Context, state domain.State, inv domain.Invocation) (domain.Result, error) {
	res, err := e.transition(state, inv)
	if err != nil {
		e.logger.Debug("command failed", "kind", inv.Kind(), "path", state.Current(), "err", err)
		e.emitFailure(ctx, state, inv, err)
		return domain.Result{State: state}, err
	}

	e.logger.Debug("command applied", "kind", inv.Kind(), "path", res.State.Current(), "stop", res.Stop)
	e.emitCommand(ctx, res.State, inv)
	if res.State.Current() != state.Current() {
		e.emitTransition(ctx, inv.Kind(), state.Current(), res.State.Current())
	}
	return res, nil
}

func (e *Engine) emitCommand(ctx context.Context, state domain.State, inv domain.Invocation) {
	if e.hooks.OnCommand == nil {
		return
	}
	e.hooks.OnCommand(ctx, &domain.CommandEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommand},
		Kind:      inv.Kind(),
		Args:      inv.Args(),
		Path:      state.Current(),
	})
}

func (e *Engine) emitFailure(ctx context.Context, state domain.State, inv domain.Invocation, err error) {
	if e.hooks.OnFailure == nil {
		return
	}
	e.hooks.OnFailure(ctx, &domain.CommandEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFailure},
		Kind:      inv.Kind(),
		Args:      inv.Args(),
		Path:      state.Current(),
		Err:       err,
	})
}

func (e *Engine) emitTransition(ctx context.Context, kind domain.Kind, from, to string) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
		Kind:      kind,
		From:      from,
		To:        to,
	})
}
