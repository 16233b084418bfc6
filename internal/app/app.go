// Package app implements the application layer for lessco.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/lessco/internal/adapters/detector"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/lessco/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *compiler.Pipeline
	store        ports.CacheStore
	resolver     ports.InputResolver
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pipeline *compiler.Pipeline,
	store ports.CacheStore,
	resolver ports.InputResolver,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipeline,
		store:        store,
		resolver:     resolver,
		watcher:      watcher,
		tracer:       tracer,
		logger:       log,
	}
}

// LoadConfig reads lessco.yaml. An empty path searches upwards from the
// working directory.
func (a *App) LoadConfig(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// formatSwitcher is implemented by loggers that support output switching.
type formatSwitcher interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies the --log-format and --verbose flags.
func (a *App) ConfigureLogging(format string, verbose bool) {
	sw, ok := a.logger.(formatSwitcher)
	if !ok {
		return
	}
	resolved := detector.ResolveFormat(detector.DetectEnvironment(), format)
	sw.SetJSON(resolved == detector.FormatJSON)
	sw.SetVerbose(verbose)
}

// Clean removes every cache record below the configured cache directory.
func (a *App) Clean(_ context.Context, cfg *domain.Config) error {
	a.logger.Info(fmt.Sprintf("removing cache records in %s...", cfg.TmpPath))
	n, err := a.store.Purge(cfg.TmpPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", cfg.TmpPath)
	}
	a.logger.Info(fmt.Sprintf("removed %d cache records", n))
	return nil
}
