package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, config.LevelNone, cfg.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output = "json"
level = "debug"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, config.LevelDebug, cfg.Level)
}

func TestLoadPartialFileKeepsOtherDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`level = "error"`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, config.LevelError, cfg.Level)
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`output = "xml"`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`level = "verbose"`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported level")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
