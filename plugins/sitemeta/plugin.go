// Package sitemeta exposes the site's identity to rendered content: it
// stamps the site name onto document titles and provides the site_name
// and base_url shortcodes.
package sitemeta

import (
	"context"

	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
)

// Settings defines the site file settings for the sitemeta plugin.
type Settings struct {
	SiteName       string `hkl:"site_name"`
	BaseURL        string `hkl:"base_url"`
	TitleSeparator string `hkl:"title_separator"`
}

// Plugin implements the hook.Plugin interface for this package.
type Plugin struct {
	settings Settings
}

// New creates the plugin with its default settings.
func New() *Plugin {
	return &Plugin{settings: Settings{TitleSeparator: " - "}}
}

// Name identifies the plugin in the site configuration.
func (p *Plugin) Name() string { return "sitemeta" }

// Settings returns the settings struct the converter decodes into.
func (p *Plugin) Settings() any { return &p.settings }

// Bind records the plugin's callbacks on the ledger.
func (p *Plugin) Bind(l *hook.Loader) {
	l.AddFilter(render.FilterDocumentTitle, p, "OnDocumentTitle")
	l.AddShortcode("site_name", p, "SiteName")
	l.AddShortcode("base_url", p, "BaseURL")
}

// OnDocumentTitle appends the site name to every document title.
func (p *Plugin) OnDocumentTitle(ctx context.Context, value any, args ...any) any {
	title, ok := value.(string)
	if !ok || p.settings.SiteName == "" {
		return value
	}
	return title + p.settings.TitleSeparator + p.settings.SiteName
}

// SiteName is the [site_name] shortcode callback.
func (p *Plugin) SiteName(ctx context.Context, attrs map[string]string, inner string) string {
	return p.settings.SiteName
}

// BaseURL is the [base_url] shortcode callback.
func (p *Plugin) BaseURL(ctx context.Context, attrs map[string]string, inner string) string {
	return p.settings.BaseURL
}
