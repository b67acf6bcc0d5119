// Package broadcast relays hook activity to a socket.io channel so live
// dashboards can watch the pipeline. It binds to configured actions and
// emits one event per firing.
package broadcast

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Settings defines the site file settings for the broadcast plugin.
type Settings struct {
	URL                string   `hkl:"url"`
	Namespace          string   `hkl:"namespace"`
	EmitEvent          string   `hkl:"emit_event"`
	Events             []string `hkl:"events"`
	Timeout            string   `hkl:"timeout"`
	InsecureSkipVerify bool     `hkl:"insecure_skip_verify"`
}

// Plugin implements the hook.Plugin interface for this package.
type Plugin struct {
	settings Settings
}

// New creates the plugin with its default settings.
func New() *Plugin {
	return &Plugin{settings: Settings{
		Namespace: "/",
		EmitEvent: "hookline",
		Events:    []string{render.ActionRenderComplete},
		Timeout:   "10s",
	}}
}

// Name identifies the plugin in the site configuration.
func (p *Plugin) Name() string { return "broadcast" }

// Settings returns the settings struct the converter decodes into.
func (p *Plugin) Settings() any { return &p.settings }

// Bind records an action binding per configured event. Without a URL the
// plugin stays inert.
func (p *Plugin) Bind(l *hook.Loader) {
	if p.settings.URL == "" {
		return
	}
	for _, event := range p.settings.Events {
		l.AddAction(event, p, "OnAction", hook.WithArgCount(2))
	}
}

// OnAction connects to the configured socket.io server, emits the dispatch
// arguments, and disconnects. Actions are fire-and-forget, so connection
// and emission failures are logged and swallowed.
func (p *Plugin) OnAction(ctx context.Context, args ...any) {
	logger := ctxlog.FromContext(ctx).With("plugin", "broadcast", "url", p.settings.URL, "emitEvent", p.settings.EmitEvent)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	timeout, err := time.ParseDuration(p.settings.Timeout)
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 10s", "inputTimeout", p.settings.Timeout, "error", err)
		timeout = 10 * time.Second
	}

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(p.settings.URL)
	if err != nil {
		logger.Warn("Failed to parse broadcast URL", "error", err)
		return
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if p.settings.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.settings.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	done := make(chan error, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Connected, emitting event", "namespace", p.settings.Namespace, "sid", io.Id())
		io.Emit(p.settings.EmitEvent, map[string]any{"args": args})
		done <- nil
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if err, ok := errs[0].(error); ok {
			done <- err
			return
		}
		done <- fmt.Errorf("connect_error: %v", errs[0])
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		logger.Warn("Timed out while broadcasting", "timeout", timeout)
	case err := <-done:
		if err != nil {
			logger.Warn("Broadcast failed", "error", err)
		}
	}
}
