package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/needsgo/internal/construct"
	"github.com/vk/needsgo/internal/ctxlog"
	"github.com/vk/needsgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// App owns the registry and constructor for one engine instance.
type App struct {
	output      io.Writer
	config      *Config
	logger      *slog.Logger
	registry    *registry.Registry
	constructor *construct.Constructor
}

// NewApp creates an App from a validated Config. Load must be called before
// any construction.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	return &App{
		output: outW,
		config: cfg,
		logger: logger,
	}
}

// Load populates the registry: built-in widget modules first, then any
// manifests under ManifestsPath, then a full registry validation. Contract
// declaration strictly precedes construction; after Load the registry is
// read-only.
func (a *App) Load(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	reg := registry.New()
	for _, m := range builtinModules() {
		m.Register(reg)
	}

	if a.config.ManifestsPath != "" {
		if err := reg.LoadManifestsRecursively(ctx, a.config.ManifestsPath); err != nil {
			return err
		}
	}

	if err := reg.Validate(ctx); err != nil {
		return err
	}

	a.registry = reg
	a.constructor = construct.New(reg)
	a.logger.Debug("App loaded.", "widget_types", len(reg.Types()))
	return nil
}

// Registry returns the populated registry. Nil before Load.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Construct builds a validated instance of the named widget type from the
// supplied parameter bag.
func (a *App) Construct(ctx context.Context, typeName string, bag map[string]cty.Value) (*construct.Instance, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.constructor.Construct(ctx, typeName, bag)
}
