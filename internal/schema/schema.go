// Package schema holds the HCL tag structs the site configuration is
// decoded into before translation to the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Site represents the `site` block of a site file.
type Site struct {
	Name       string `hcl:"name"`
	BaseURL    string `hcl:"base_url,optional"`
	ContentDir string `hcl:"content_dir,optional"`
	OutputDir  string `hcl:"output_dir,optional"`
}

// Settings represents the free-form `settings` block within a plugin
// block. Attributes stay undecoded here; each plugin's own settings
// struct gives them shape later.
type Settings struct {
	Body hcl.Body `hcl:",remain"`
}

// Plugin represents a `plugin` block from a site file.
type Plugin struct {
	Name     string    `hcl:"name,label"`
	Enabled  *bool     `hcl:"enabled,optional"`
	Settings *Settings `hcl:"settings,block"`
}

// SiteConfig represents the top-level structure of a site file.
type SiteConfig struct {
	Site    *Site     `hcl:"site,block"`
	Plugins []*Plugin `hcl:"plugin,block"`
	Body    hcl.Body  `hcl:",remain"`
}
