package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/fsnav/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			logger.DebugContext(ctx, "command", "kind", kindLabel(e.Kind), "args", e.Args, "path", e.Path)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "transition", "kind", kindLabel(e.Kind), "from", e.From, "to", e.To)
		},
		OnFailure: func(ctx context.Context, e *domain.CommandEvent) {
			logger.DebugContext(ctx, "failure",
				"kind", kindLabel(e.Kind),
				"path", e.Path,
				"code", domain.CodeOf(e.Err),
				"err", e.Err,
			)
		},
	}
}

// ChainHooks calls each hook set in order. Nil callbacks are skipped.
func ChainHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			for _, s := range sets {
				if s.OnCommand != nil {
					s.OnCommand(ctx, e)
				}
			}
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, s := range sets {
				if s.OnTransition != nil {
					s.OnTransition(ctx, e)
				}
			}
		},
		OnFailure: func(ctx context.Context, e *domain.CommandEvent) {
			for _, s := range sets {
				if s.OnFailure != nil {
					s.OnFailure(ctx, e)
				}
			}
		},
	}
}
