package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mk/hookline/internal/config"
	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/dispatch"
	"github.com/mk/hookline/internal/hook"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	model      *config.Model
	ledger     *hook.Loader
	dispatcher *dispatch.Dispatcher
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, the plugin bindings
// validated, and the ledger already committed into the dispatcher.
// Startup problems (unreadable config, broken bindings) are programmer or
// operator errors, so it panics; the CLI entrypoint recovers.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, plugins ...hook.Plugin) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, converter, err := loader.Load(ctx, appConfig.SitePath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	if len(plugins) == 0 {
		plugins = corePlugins
	}

	ledger := hook.NewLoader()
	bound := 0
	for _, p := range plugins {
		pc := model.Plugins[p.Name()]
		if pc != nil && !pc.Enabled {
			logger.Debug("Plugin disabled by configuration.", "plugin", p.Name())
			continue
		}
		if s, ok := p.(hook.Settable); ok && pc != nil {
			if err := converter.DecodeSettings(ctx, s.Settings(), pc.Settings); err != nil {
				panic(fmt.Errorf("failed to decode settings for plugin %q: %w", p.Name(), err))
			}
		}
		p.Bind(ledger)
		bound++
	}
	logger.Debug("Plugins bound.", "count", bound)

	// A binding whose owner lacks the named method is a mismatch between
	// plugin code and its registrations, so we panic.
	if err := ledger.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Ledger validation passed.")

	dispatcher := dispatch.New()
	ledger.Commit(dispatcher)
	logger.Debug("Ledger committed into dispatcher.",
		"actions", dispatcher.ActionCount(),
		"filters", dispatcher.FilterCount(),
		"shortcodes", dispatcher.ShortcodeCount())

	return &App{
		outW:       outW,
		logger:     logger,
		model:      model,
		ledger:     ledger,
		dispatcher: dispatcher,
	}
}

// Ledger returns the application's hook ledger. Primarily for testing.
func (a *App) Ledger() *hook.Loader {
	return a.ledger
}

// Dispatcher returns the committed hook tables. Primarily for testing.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}
