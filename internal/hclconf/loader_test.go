package hclconf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mk/hookline/internal/hclconf"
	"github.com/stretchr/testify/require"
)

func writeSiteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeSiteFile(t, t.TempDir(), "site.hcl", `
		site {
			name     = "Example"
			base_url = "https://example.test"
		}

		plugin "webhook" {
			settings {
				endpoint = "https://hooks.example.test/in"
			}
		}

		plugin "broadcast" {
			enabled = false
		}
	`)

	model, converter, err := hclconf.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, converter)

	require.Equal(t, "Example", model.Site.Name)
	require.Equal(t, "https://example.test", model.Site.BaseURL)
	require.Equal(t, "content", model.Site.ContentDir, "content_dir default applies")
	require.Equal(t, "public", model.Site.OutputDir, "output_dir default applies")

	require.Len(t, model.Plugins, 2)
	require.True(t, model.Plugins["webhook"].Enabled)
	require.Contains(t, model.Plugins["webhook"].Settings, "endpoint")
	require.False(t, model.Plugins["broadcast"].Enabled)
	require.Empty(t, model.Plugins["broadcast"].Settings)
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSiteFile(t, dir, "a_site.hcl", `
		site {
			name        = "Example"
			content_dir = "docs"
		}
	`)
	writeSiteFile(t, dir, "b_plugins.hcl", `
		plugin "envinfo" {}
	`)

	model, _, err := hclconf.NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, "Example", model.Site.Name)
	require.Equal(t, "docs", model.Site.ContentDir)
	require.Contains(t, model.Plugins, "envinfo")
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		files       map[string]string
		errContains string
	}{
		{
			name:        "missing site block",
			files:       map[string]string{"site.hcl": `plugin "webhook" {}`},
			errContains: "no site block",
		},
		{
			name: "duplicate site block",
			files: map[string]string{
				"a.hcl": `site { name = "one" }`,
				"b.hcl": `site { name = "two" }`,
			},
			errContains: "duplicate site block",
		},
		{
			name:        "syntax error",
			files:       map[string]string{"site.hcl": `site { name = `},
			errContains: "failed to parse",
		},
		{
			name:        "empty directory",
			files:       map[string]string{},
			errContains: "no .hcl site files",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for name, contents := range tc.files {
				writeSiteFile(t, dir, name, contents)
			}

			_, _, err := hclconf.NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_MissingPathErrors(t *testing.T) {
	t.Parallel()

	_, _, err := hclconf.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "site path")
}
