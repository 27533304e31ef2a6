package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qif/internal/categorize"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.DefaultAccount = "Chase Checking"
	cfg.Output.ClearedStatus = "*"
	cfg.Import.MarkProcessed = true
	cfg.Rules = []categorize.Rule{
		{Match: "github", Category: "Software", Payee: "GitHub"},
		{Match: `^usps\b`, Regex: true, Category: "Postage"},
	}

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "chase", cfg.Import.Format)
	assert.Equal(t, "import", cfg.Import.Dir)
	assert.False(t, cfg.Import.MarkProcessed)
	assert.Equal(t, "export.qif", cfg.Output.Path)
	assert.Empty(t, cfg.Output.ClearedStatus)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Rules)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("import:\n  format: generic\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "generic", cfg.Import.Format)
	assert.Equal(t, "export.qif", cfg.Output.Path)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "output:\n  cleared_status: maybe\nlogging:\n  format: xml\nrules:\n  - match: ''\n    category: X\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cleared_status")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "rule 1: empty match")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("rules: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "format: chase")
	assert.Contains(t, contents, "path: export.qif")
	assert.Contains(t, contents, "mark_processed: false")
	assert.NotContains(t, contents, "default_account")
}
