package hclconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/mk/hookline/internal/config"
	"github.com/mk/hookline/internal/schema"
)

// translateSite converts the HCL site block into the agnostic model,
// applying directory defaults.
func translateSite(s *schema.Site) *config.Site {
	site := &config.Site{
		Name:       s.Name,
		BaseURL:    s.BaseURL,
		ContentDir: s.ContentDir,
		OutputDir:  s.OutputDir,
	}
	if site.ContentDir == "" {
		site.ContentDir = config.DefaultContentDir
	}
	if site.OutputDir == "" {
		site.OutputDir = config.DefaultOutputDir
	}
	return site
}

// translatePlugin converts an HCL plugin block into the agnostic model.
// Settings attributes stay as raw expressions; the converter gives them
// Go shape when the plugin is configured.
func translatePlugin(p *schema.Plugin) (*config.PluginConfig, error) {
	pc := &config.PluginConfig{
		Name:     p.Name,
		Enabled:  true,
		Settings: make(map[string]hcl.Expression),
	}
	if p.Enabled != nil {
		pc.Enabled = *p.Enabled
	}
	if p.Settings != nil {
		attrs, diags := p.Settings.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid settings block: %w", diags)
		}
		for name, attr := range attrs {
			pc.Settings[name] = attr.Expr
		}
	}
	return pc, nil
}
