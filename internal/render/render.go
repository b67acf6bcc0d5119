// Package render drives the content pipeline: it walks the site's content
// directory and pushes every document through the committed hook tables.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mk/hookline/internal/config"
	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/dispatch"
	"github.com/mk/hookline/internal/fsutil"
)

// Hook names the pipeline fires. Plugins bind against these.
const (
	ActionInit           = "init"
	ActionContentLoad    = "content_load"
	ActionRenderComplete = "render_complete"
	FilterContent        = "the_content"
	FilterDocumentTitle  = "document_title"
)

// contentExtension is the only kind of document the pipeline picks up.
const contentExtension = ".html"

// Renderer walks the content directory and renders each document through
// the dispatcher's filter and shortcode tables. It is sequential by
// design: the hook tables are single-goroutine state.
type Renderer struct {
	site   *config.Site
	d      *dispatch.Dispatcher
	dryRun bool
}

// New creates a Renderer for the given site against committed hook tables.
func New(site *config.Site, d *dispatch.Dispatcher, dryRun bool) *Renderer {
	return &Renderer{site: site, d: d, dryRun: dryRun}
}

// Run fires the init action, renders every content document in sorted
// path order, and fires render_complete with the rendered count.
func (r *Renderer) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(r.site.ContentDir, contentExtension)
	if err != nil {
		return fmt.Errorf("failed to scan content directory %s: %w", r.site.ContentDir, err)
	}
	if len(files) == 0 {
		logger.Warn("No content documents found.", "content_dir", r.site.ContentDir)
	}

	r.d.DoAction(ctx, ActionInit)

	for _, path := range files {
		if err := r.renderDocument(ctx, path); err != nil {
			return err
		}
	}

	r.d.DoAction(ctx, ActionRenderComplete, len(files))
	logger.Info("Render finished.", "documents", len(files), "output_dir", r.site.OutputDir)
	return nil
}

// renderDocument loads one document, threads it through the content
// filters, expands shortcodes, and writes the result under the output
// directory at the same relative path.
func (r *Renderer) renderDocument(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}
	rel, err := filepath.Rel(r.site.ContentDir, path)
	if err != nil {
		return fmt.Errorf("failed to resolve document path %s: %w", path, err)
	}

	r.d.DoAction(ctx, ActionContentLoad, rel)

	title := strings.TrimSuffix(filepath.Base(path), contentExtension)
	if t, ok := r.d.ApplyFilters(ctx, FilterDocumentTitle, title).(string); ok {
		title = t
	}

	body := string(raw)
	if b, ok := r.d.ApplyFilters(ctx, FilterContent, body).(string); ok {
		body = b
	}
	body = r.d.ExpandShortcodes(ctx, body)

	outPath := filepath.Join(r.site.OutputDir, rel)
	if r.dryRun {
		logger.Info("Dry run: would render document.", "path", rel, "title", title, "bytes", len(body))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", rel, err)
	}

	logger.Info("Rendered document.", "path", rel, "title", title)
	return nil
}
