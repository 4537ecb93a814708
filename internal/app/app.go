// Package app implements the application layer for provenv.
package app

import (
	"context"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports"
	"go.trai.ch/provenv/internal/engine/provision"
	"go.trai.ch/zerr"
)

// Engine is the provisioning engine the app drives.
type Engine interface {
	Provision(ctx context.Context, cfg *domain.Config) (*provision.Result, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       Engine
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, engine Engine, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		logger:       logger,
	}
}

// Setup provisions the environment described by the config file at
// configPath. A non-empty requirements argument overrides the manifest the
// config names.
func (a *App) Setup(ctx context.Context, configPath, requirements string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if requirements != "" {
		cfg.Requirements = requirements
	}

	res, err := a.engine.Provision(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "provisioning failed")
	}

	if res.Reused {
		a.logger.Info("environment already provisioned at " + res.Path)
	} else {
		a.logger.Info("environment ready at " + res.Path)
	}
	return nil
}
