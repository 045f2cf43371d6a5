package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 10, cfg.WeeklyGoal)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// comments are fine, this is JSONC
		"theme": "ocean",
		"weekly_goal": 25,
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ocean", cfg.Theme)
	assert.Equal(t, 25, cfg.WeeklyGoal)
	assert.Equal(t, "sqlite", cfg.Backend, "unset fields keep their defaults")
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": `), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseRejectsWrongTypes(t *testing.T) {
	_, err := Parse([]byte(`{"weekly_goal": "ten"}`))
	assert.Error(t, err)
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "pano", "config.json"), Path())
}
