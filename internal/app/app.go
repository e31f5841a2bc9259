package app

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/vk/msgfeatures/internal/config"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	config    *Config
	loader    config.Loader
	resources resources.Loader

	rowsDone  atomic.Int64
	rowsTotal atomic.Int64
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Without explicit modules every core feature module is registered.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "features", len(reg.Names()))

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		config:    appConfig,
		loader:    loader,
		resources: resources.NewFileLoader(appConfig.Resources),
	}
}

// WithResourceLoader replaces the loader used to build language models and
// classifiers.
func (a *App) WithResourceLoader(l resources.Loader) *App {
	a.resources = l
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
