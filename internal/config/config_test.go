package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NEUROSPRINT_HOME", dir)
	t.Setenv("NEUROSPRINT_CONFIG", "")
	t.Setenv("NEUROSPRINT_DB", "")
	t.Setenv("NEUROSPRINT_LOG_DIR", "")
	t.Setenv("NEUROSPRINT_EXPORT_DIR", "")
	t.Setenv("NEUROSPRINT_DEBUG", "")
	t.Setenv("NEUROSPRINT_SPRINT_WEEKS", "")
	t.Setenv("NEUROSPRINT_STATE_KEY", "")
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "neurosprint.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "logs"), cfg.LogDir)
	assert.Equal(t, 4, cfg.DefaultSprintWeeks)
	assert.Equal(t, 10, cfg.DefaultBudgetHours)
	assert.Equal(t, DefaultStateKey, cfg.StateKey)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	yml := "debug: true\ndefault_sprint_weeks: 3\nstate_key: custom\nmax_backups: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644))
	t.Setenv("NEUROSPRINT_SPRINT_WEEKS", "5")
	t.Setenv("NEUROSPRINT_DB", "/tmp/other.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "custom", cfg.StateKey)
	assert.Equal(t, 2, cfg.MaxBackups)
	assert.Equal(t, 5, cfg.DefaultSprintWeeks)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
}

func TestLoadConfig_ExplicitConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export_dir: /srv/exports\n"), 0o644))
	t.Setenv("NEUROSPRINT_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/exports", cfg.ExportDir)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("debug: [unclosed"), 0o644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadConfig_InvalidEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("NEUROSPRINT_SPRINT_WEEKS", "zero")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DefaultSprintWeeks)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.DefaultSprintWeeks = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig(t.TempDir())
	cfg.StateKey = ""
	assert.Error(t, cfg.Validate())
}
