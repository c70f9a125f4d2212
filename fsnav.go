package fsnav

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/fsnav/internal/runtime"
	"github.com/aretw0/fsnav/pkg/adapters/afs"
	"github.com/aretw0/fsnav/pkg/command"
	"github.com/aretw0/fsnav/pkg/domain"
	"github.com/aretw0/fsnav/pkg/ports"
)

// Version of the fsnav library and binary.
const Version = "0.1.0"

// Engine is the high-level entry point for the fsnav library.
// It wraps the command registry and the navigation state machine and
// implements ports.Navigator.
type Engine struct {
	runtime  *runtime.Engine
	registry *command.Registry
	storage  ports.Storage
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	excluded []string
	farewell string
	root     string
}

var _ ports.Navigator = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStorage injects a custom Storage, bypassing the host file system.
func WithStorage(s ports.Storage) Option {
	return func(e *Engine) {
		e.storage = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithExcludedExtensions replaces the file extensions show refuses (default .mp3 and .mp4).
func WithExcludedExtensions(exts ...string) Option {
	return func(e *Engine) {
		e.excluded = exts
	}
}

// WithFarewell sets the message printed by exit.
func WithFarewell(msg string) Option {
	return func(e *Engine) {
		e.farewell = msg
	}
}

// New initializes a navigator rooted at root.
// By default it reads the host file system; WithStorage swaps it out.
func New(root string, opts ...Option) (*Engine, error) {
	if root == "" {
		return nil, fmt.Errorf("root is required")
	}

	eng := &Engine{registry: command.Default}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.storage == nil {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("invalid root: %w", err)
		}
		root = abs
		eng.storage = afs.NewOS()
	}
	eng.root = filepath.Clean(root)

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("root", eng.root)

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithFarewell(eng.farewell),
	}
	if eng.excluded != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithExcludedExtensions(eng.excluded...))
	}
	eng.runtime = runtime.NewEngine(eng.storage, runtimeOpts...)

	return eng, nil
}

// Root returns the session boundary.
func (e *Engine) Root() string {
	return e.root
}

// Start creates the initial state, positioned at the root.
func (e *Engine) Start(ctx context.Context) (domain.State, error) {
	return e.runtime.Start(e.root)
}

// Parse classifies a raw input line.
// Classification failures are reported to the OnFailure hook.
func (e *Engine) Parse(ctx context.Context, line string) (domain.Invocation, error) {
	inv, err := e.registry.Parse(line)
	if err != nil && e.hooks.OnFailure != nil {
		e.hooks.OnFailure(ctx, &domain.CommandEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFailure},
			Kind:      domain.KindUnknown,
			Err:       err,
		})
	}
	return inv, err
}

// Apply runs a parsed invocation against state.
func (e *Engine) Apply(ctx context.Context, state domain.State, inv domain.Invocation) (domain.Result, error) {
	return e.runtime.Apply(ctx, state, inv)
}

// Execute parses line and applies it to state.
// On failure the Result carries the unchanged state.
func (e *Engine) Execute(ctx context.Context, state domain.State, line string) (domain.Result, error) {
	inv, err := e.Parse(ctx, line)
	if err != nil {
		return domain.Result{State: state}, err
	}
	return e.Apply(ctx, state, inv)
}

// Keywords returns the recognized command keywords.
func (e *Engine) Keywords() []string {
	return e.registry.Keywords()
}
