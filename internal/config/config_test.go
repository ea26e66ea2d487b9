package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interference/internal/session"
)

// isolate points the XDG directories at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("INTERFERENCE_LOG_LEVEL", "")
	t.Setenv("INTERFERENCE_LOG_FILE", "")
	t.Setenv("INTERFERENCE_ALLOW_BACK", "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.UI.AllowBack)
	assert.Equal(t, session.DefaultRoute, cfg.Route())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "interference", "interference.log"), cfg.Log.File)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_Layering(t *testing.T) {
	dir := isolate(t)

	userPath := filepath.Join(dir, "config", "interference", "config.yaml")
	writeFile(t, userPath, "log:\n  level: debug\nui:\n  allow_back: false\n")

	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "ui:\n  default_route: Both\n")

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level, "user file applies")
	assert.False(t, cfg.UI.AllowBack, "user file can turn a default off")
	assert.Equal(t, session.RouteBoth, cfg.Route(), "explicit file applies on top")
	assert.Equal(t, []string{userPath, explicit}, cfg.Sources)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "interference", "config.yaml"), "log:\n  level: debug\n")

	t.Setenv("INTERFERENCE_LOG_LEVEL", "warn")
	t.Setenv("INTERFERENCE_LOG_FILE", "/tmp/custom.log")
	t.Setenv("INTERFERENCE_ALLOW_BACK", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/custom.log", cfg.Log.File)
	assert.False(t, cfg.UI.AllowBack)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load("/nonexistent/config.yaml")
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		isolate(t)
		t.Setenv("INTERFERENCE_LOG_LEVEL", "chatty")
		_, err := Load("")
		assert.ErrorContains(t, err, "log.level")
	})

	t.Run("bad route", func(t *testing.T) {
		dir := isolate(t)
		p := filepath.Join(dir, "c.yaml")
		writeFile(t, p, "ui:\n  default_route: somewhere\n")
		_, err := Load(p)
		assert.ErrorIs(t, err, session.ErrInvalidRoute)
	})

	t.Run("bad bool", func(t *testing.T) {
		isolate(t)
		t.Setenv("INTERFERENCE_ALLOW_BACK", "sometimes")
		_, err := Load("")
		assert.ErrorContains(t, err, "INTERFERENCE_ALLOW_BACK")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := isolate(t)
		p := filepath.Join(dir, "c.yaml")
		writeFile(t, p, "log: [unterminated\n")
		_, err := Load(p)
		assert.ErrorContains(t, err, "parse config file")
	})
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	cfg.UI.AllowBack = false
	require.NoError(t, cfg.SaveToFile(p))

	loaded := DefaultConfig()
	require.NoError(t, loaded.ApplyFile(p))
	assert.Equal(t, "error", loaded.Log.Level)
	assert.False(t, loaded.UI.AllowBack)
}
