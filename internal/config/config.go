// Package config defines the format-agnostic site configuration model,
// along with the interfaces (Loader, Converter) the application uses to
// load and interpret configuration from a concrete format.
//
// The config.Model is the single source of truth for the app and render
// packages. The concrete HCL implementation lives in the hclconf package.
package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the site configuration from path (a file or a directory
	// of config files), translates it into the format-agnostic model, and
	// returns a matching Converter for decoding plugin settings.
	Load(ctx context.Context, path string) (*Model, Converter, error)
}

// Converter decodes raw, format-specific settings expressions into plugin
// Go structs. It is the bridge between the configuration file and the
// types plugins declare.
type Converter interface {
	// DecodeSettings evaluates the raw settings attributes and populates
	// the target struct, matching fields by their hkl tag.
	DecodeSettings(ctx context.Context, target any, settings map[string]hcl.Expression) error
}

// Model is the unified representation of a site's configuration.
type Model struct {
	Site    *Site
	Plugins map[string]*PluginConfig
}

// Site holds the site-wide settings driving the render pipeline.
type Site struct {
	Name       string
	BaseURL    string
	ContentDir string
	OutputDir  string
}

// PluginConfig is the per-plugin block from the site file. Settings stay
// as raw expressions until a Converter decodes them against the plugin's
// own settings struct.
type PluginConfig struct {
	Name     string
	Enabled  bool
	Settings map[string]hcl.Expression
}

// DefaultContentDir is used when the site block omits content_dir.
const DefaultContentDir = "content"

// DefaultOutputDir is used when the site block omits output_dir.
const DefaultOutputDir = "public"
