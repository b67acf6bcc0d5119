package hclconf

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mk/hookline/internal/config"
	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/fsutil"
	"github.com/mk/hookline/internal/schema"
)

// Loader implements config.Loader for HCL site files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads one site file, or every .hcl file under a directory, and
// merges them into a single model. Exactly one site block must appear
// across all files; plugin blocks merge by name with later files winning.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading site configuration...", "path", path)

	paths, err := collectPaths(path)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no .hcl site files found in %s", path)
	}
	logger.Debug("Found HCL files to load", "files", paths)

	parser := hclparse.NewParser()
	model := &config.Model{
		Plugins: make(map[string]*config.PluginConfig),
	}

	for _, filePath := range paths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var sc schema.SiteConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &sc); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode site file %s: %w", filePath, diags)
		}

		if sc.Site != nil {
			if model.Site != nil {
				return nil, nil, fmt.Errorf("duplicate site block in %s", filePath)
			}
			model.Site = translateSite(sc.Site)
		}
		for _, p := range sc.Plugins {
			pc, err := translatePlugin(p)
			if err != nil {
				return nil, nil, fmt.Errorf("plugin block %q in %s: %w", p.Name, filePath, err)
			}
			model.Plugins[pc.Name] = pc
		}
		logger.Debug("Loaded definitions from HCL file", "file", filePath)
	}

	if model.Site == nil {
		return nil, nil, fmt.Errorf("no site block found in %s", path)
	}

	logger.Info("Site configuration loaded.", "site", model.Site.Name, "plugins_configured", len(model.Plugins))
	return model, NewConverter(), nil
}

// collectPaths resolves the configured path to the list of HCL files to
// parse.
func collectPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("site path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
