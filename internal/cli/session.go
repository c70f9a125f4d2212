package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/fsnav"
	"github.com/aretw0/fsnav/internal/presentation/tui"
	"github.com/aretw0/fsnav/pkg/observability"
	"github.com/aretw0/fsnav/pkg/runner"
)

// RunSession executes a single session of fsnav.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	logger := createLogger(cfg, opts.Stderr)

	metrics := observability.NewMetrics()
	hooks := observability.ChainHooks(metrics.Hooks(), observability.LoggingHooks(logger))

	engineOpts := []fsnav.Option{
		fsnav.WithLogger(logger),
		fsnav.WithLifecycleHooks(hooks),
		fsnav.WithFarewell(cfg.Farewell),
		fsnav.WithExcludedExtensions(cfg.ExcludedExtensions...),
	}
	if opts.Storage != nil {
		engineOpts = append(engineOpts, fsnav.WithStorage(opts.Storage))
	}

	engine, err := fsnav.New(cfg.Root, engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing fsnav: %w", err)
	}

	signals := runner.NewSignalManager(ctx)
	defer signals.Stop()

	state, err := engine.Start(signals.Context())
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	logger.Info("session started", "root", engine.Root())

	if cfg.Banner && opts.Interactive && !cfg.JSON {
		tui.PrintBanner(opts.Stdout, fsnav.Version, engine.Root())
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(cfg, opts, logger)),
		runner.WithPrompt(cfg.Prompt),
	)

	final, runErr := r.Run(signals.Context(), engine, state)

	interrupted := signals.Interrupted()
	if runErr != nil && !interrupted {
		// Ctrl+C may close stdin just before the signal lands.
		interrupted = signals.Settle(runner.DefaultSettleDelay)
	}
	if interrupted && !cfg.JSON {
		printSystemMessage(opts.Stdout, "Interrupted at %s", final.Location())
	}
	logger.Info("session ended", "path", final.Current(), "interrupted", interrupted)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsFile, "err", err)
		}
	}

	if interrupted {
		return nil
	}
	return handleExecutionError(runErr)
}
