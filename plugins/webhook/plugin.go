// Package webhook delivers hook activity to an external HTTP endpoint: it
// binds to configured actions and POSTs a JSON envelope for each firing.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
)

// Settings defines the site file settings for the webhook plugin.
type Settings struct {
	Endpoint string   `hkl:"endpoint"`
	Timeout  string   `hkl:"timeout"`
	Events   []string `hkl:"events"`
}

// Plugin implements the hook.Plugin interface for this package.
type Plugin struct {
	settings Settings

	clientOnce sync.Once
	client     *http.Client
}

// New creates the plugin with its default settings.
func New() *Plugin {
	return &Plugin{settings: Settings{
		Timeout: "10s",
		Events:  []string{render.ActionRenderComplete},
	}}
}

// Name identifies the plugin in the site configuration.
func (p *Plugin) Name() string { return "webhook" }

// Settings returns the settings struct the converter decodes into.
func (p *Plugin) Settings() any { return &p.settings }

// Bind records an action binding per configured event. Without an
// endpoint the plugin stays inert.
func (p *Plugin) Bind(l *hook.Loader) {
	if p.settings.Endpoint == "" {
		return
	}
	for _, event := range p.settings.Events {
		l.AddAction(event, p, "OnEvent", hook.WithArgCount(2))
	}
}

// OnEvent posts the dispatch arguments to the configured endpoint.
// Actions are fire-and-forget, so delivery failures are logged and
// swallowed.
func (p *Plugin) OnEvent(ctx context.Context, args ...any) {
	logger := ctxlog.FromContext(ctx).With("plugin", "webhook", "endpoint", p.settings.Endpoint)

	payload, err := json.Marshal(map[string]any{"args": args})
	if err != nil {
		logger.Warn("Failed to encode webhook payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.settings.Endpoint, bytes.NewReader(payload))
	if err != nil {
		logger.Warn("Failed to build webhook request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient(logger.Warn).Do(req)
	if err != nil {
		logger.Warn("Webhook delivery failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Warn("Webhook endpoint rejected delivery", "status", resp.StatusCode)
		return
	}
	logger.Debug("Webhook delivered.", "status", resp.StatusCode)
}

// httpClient lazily builds the shared client so the decoded timeout
// setting is in effect by the time the first action fires.
func (p *Plugin) httpClient(warn func(msg string, args ...any)) *http.Client {
	p.clientOnce.Do(func() {
		timeout, err := time.ParseDuration(p.settings.Timeout)
		if err != nil {
			warn("Failed to parse webhook timeout, using default 10s", "inputTimeout", p.settings.Timeout, "error", err)
			timeout = 10 * time.Second
		}
		p.client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	})
	return p.client
}
