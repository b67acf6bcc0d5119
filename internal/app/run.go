package app

import (
	"context"
	"fmt"

	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/render"
)

// Run executes the main application logic based on the provided
// configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HealthcheckPort > 0 {
		go a.startHealthcheckServer(appConfig.HealthcheckPort)
	}

	renderer := render.New(a.model.Site, a.dispatcher, appConfig.DryRun)
	if err := renderer.Run(ctx); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
