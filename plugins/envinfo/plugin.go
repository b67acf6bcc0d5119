// Package envinfo exposes process environment variables to rendered
// content through the [env key="NAME"] shortcode.
package envinfo

import (
	"context"
	"os"

	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
)

// Plugin implements the hook.Plugin interface for this package.
type Plugin struct{}

// New creates the plugin.
func New() *Plugin { return &Plugin{} }

// Name identifies the plugin in the site configuration.
func (p *Plugin) Name() string { return "envinfo" }

// Bind records the plugin's callbacks on the ledger.
func (p *Plugin) Bind(l *hook.Loader) {
	l.AddShortcode("env", p, "Env")
	l.AddAction(render.ActionInit, p, "OnInit", hook.WithArgCount(0))
}

// OnInit reports how much environment is visible to shortcodes.
func (p *Plugin) OnInit(ctx context.Context, args ...any) {
	ctxlog.FromContext(ctx).Debug("envinfo plugin ready.", "vars", len(os.Environ()))
}

// Env is the [env key="NAME"] shortcode callback. An unset or missing key
// expands to the empty string.
func (p *Plugin) Env(ctx context.Context, attrs map[string]string, inner string) string {
	key := attrs["key"]
	if key == "" {
		return ""
	}
	return os.Getenv(key)
}
