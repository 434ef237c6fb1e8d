package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/ctxlog"
)

// Run executes the main application logic based on the provided
// configuration: the eager-load pass (unless lazy mode is requested), an
// optional single-resource lookup, and the per-concept summary.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(cfg.HealthcheckPort)
	}

	if !cfg.Lazy {
		a.logger.Info("Materializing configured resources...")
		if err := a.foundry.Load(ctx); err != nil {
			return fmt.Errorf("eager load failed: %w", err)
		}
		a.logger.Info("All resources built.")
	} else {
		a.logger.Debug("Lazy mode: resources build on first request.")
	}

	for _, concept := range a.source.Concepts() {
		a.logger.Info("Concept summary.",
			"concept", concept,
			"configured", len(a.source.Names(concept)),
			"built", a.foundry.Built(concept))
	}

	if cfg.Get != "" {
		if err := a.resolveAndPrint(ctx, cfg.Get); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveAndPrint resolves a "concept/name" target and writes a one-line
// description of the instance to the app's output.
func (a *App) resolveAndPrint(ctx context.Context, target string) error {
	concept, name, ok := strings.Cut(target, "/")
	if !ok || concept == "" || name == "" {
		return fmt.Errorf("invalid get target %q: want concept/name", target)
	}
	instance, err := a.foundry.Get(ctx, catalog.Concept(concept), name)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", target, err)
	}
	fmt.Fprintf(a.outW, "%s = %+v\n", target, instance)
	return nil
}
