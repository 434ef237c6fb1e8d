package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/foundry/internal/builtin"
	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/ctxlog"
	"github.com/vk/foundry/internal/foundry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	source  catalog.Source
	foundry *foundry.Foundry
}

// NewApp is the constructor for the main application. It loads the
// configuration through the given loader and assembles a foundry from the
// built-in factory tables merged under the caller's overrides. An override
// replaces the whole table for its concept.
func NewApp(outW io.Writer, cfg *Config, loader catalog.Loader, overrides map[catalog.Concept]foundry.FactoryTable) *App {
	logger := newLogger(cfg, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	source, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into catalog model.")

	assembler := builtin.NewAssembler(source)
	for concept, table := range overrides {
		assembler.WithFactories(concept, table)
	}
	f, err := assembler.Build()
	if err != nil {
		panic(fmt.Errorf("failed to assemble foundry: %w", err))
	}
	logger.Debug("Foundry assembled.", "foundry", f.ID(), "overridden_concepts", len(overrides))

	return &App{
		outW:    outW,
		logger:  logger,
		source:  source,
		foundry: f,
	}
}

// Foundry returns the application's foundry. This is primarily for testing.
func (a *App) Foundry() *foundry.Foundry {
	return a.foundry
}

// Source returns the loaded configuration source. Primarily for testing.
func (a *App) Source() catalog.Source {
	return a.source
}
