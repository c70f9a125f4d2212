package ports

import (
	"context"

	"github.com/aretw0/fsnav/pkg/domain"
)

// Navigator defines the interface the session loop drives.
// It holds no session state: the caller threads State through every call.
type Navigator interface {
	// Parse classifies a raw input line.
	Parse(ctx context.Context, line string) (domain.Invocation, error)

	// Apply runs an invocation against state and returns the next state.
	// On failure the returned Result carries the unchanged input state.
	Apply(ctx context.Context, state domain.State, inv domain.Invocation) (domain.Result, error)
}
