package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error is guaranteed to make app.NewApp
	// panic during the loading phase.
	invalidHCL := `
		site {
			name =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "site.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_RendersASite(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")
	outputDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "index.html"), []byte("brought to you by [site_name]"), 0o600))

	siteHCL := `
		site {
			name        = "Demo"
			content_dir = "` + contentDir + `"
			output_dir  = "` + outputDir + `"
		}

		plugin "sitemeta" {
			settings {
				site_name = "Demo"
			}
		}
	`
	sitePath := filepath.Join(dir, "site.hcl")
	require.NoError(t, os.WriteFile(sitePath, []byte(siteHCL), 0o600))

	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-log-level", "error", sitePath})

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	require.Equal(t, "brought to you by Demo", string(got))
}
