package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBranch, cfg.Branch)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.True(t, cfg.Cache.Enabled)
	assert.NotEmpty(t, cfg.Cache.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "warn", cfg.Logging.Components["cache"])
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "subsurface")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
branch: logbook
format: json
cache:
  enabled: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "logbook", cfg.Branch)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SUBSURFACE_BRANCH", "main")
	t.Setenv("SUBSURFACE_FORMAT", "plain")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Branch)
	assert.Equal(t, "plain", cfg.Format)
}

func TestLoadExpandsCachePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "subsurface")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	content := "cache:\n  path: ~/caches/subsurface\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "caches", "subsurface"), cfg.Cache.Path)
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "subsurface"), got)
	})

	t.Run("falls back to home config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "subsurface"), got)
	})
}
