package sitemeta_test

import (
	"context"
	"testing"

	"github.com/mk/hookline/internal/dispatch"
	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
	"github.com/mk/hookline/plugins/sitemeta"
	"github.com/stretchr/testify/require"
)

func configured(t *testing.T, siteName string) *sitemeta.Plugin {
	t.Helper()
	p := sitemeta.New()
	s := p.Settings().(*sitemeta.Settings)
	s.SiteName = siteName
	s.BaseURL = "https://example.test"
	return p
}

func TestBind_RecordsExpectedBindings(t *testing.T) {
	t.Parallel()

	l := hook.NewLoader()
	configured(t, "Example").Bind(l)

	require.Empty(t, l.Actions())
	require.Len(t, l.Filters(), 1)
	require.Equal(t, render.FilterDocumentTitle, l.Filters()[0].Hook)
	require.Len(t, l.Shortcodes(), 2)
	require.NoError(t, l.Validate(context.Background()))
}

func TestDocumentTitle_GainsSiteName(t *testing.T) {
	t.Parallel()

	l := hook.NewLoader()
	configured(t, "Example").Bind(l)
	d := dispatch.New()
	l.Commit(d)

	got := d.ApplyFilters(context.Background(), render.FilterDocumentTitle, "About")
	require.Equal(t, "About - Example", got)
}

func TestDocumentTitle_UnconfiguredSiteNameLeavesTitleAlone(t *testing.T) {
	t.Parallel()

	p := sitemeta.New()
	got := p.OnDocumentTitle(context.Background(), "About")
	require.Equal(t, "About", got)
}

func TestShortcodes(t *testing.T) {
	t.Parallel()

	l := hook.NewLoader()
	configured(t, "Example").Bind(l)
	d := dispatch.New()
	l.Commit(d)

	got := d.ExpandShortcodes(context.Background(), `Visit [site_name] at [base_url]`)
	require.Equal(t, "Visit Example at https://example.test", got)
}
