package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Progression.StreakGraceDays)
	assert.Equal(t, 3, cfg.Progression.MasteryGraceDays)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
progression:
  streak_grace_days: 7
storage:
  db_path: /tmp/questline-test.db
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Progression.StreakGraceDays)
	// Unset keys fall back to defaults.
	assert.Equal(t, 3, cfg.Progression.MasteryGraceDays)
	assert.Equal(t, "/tmp/questline-test.db", cfg.Storage.DBPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("QUESTLINE_PROGRESSION_STREAK_GRACE_DAYS", "10")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Progression.StreakGraceDays)
}

func TestLoad_RejectsInvalidGraceWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progression:\n  streak_grace_days: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "streak_grace_days")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
