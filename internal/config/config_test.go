package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Browse.Age)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[browse]
age = 18
mode = "library"
category = "Sleep"
sticky-header = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Browse.Age)
	assert.Equal(t, 18, *cfg.Browse.Age)
	require.NotNil(t, cfg.Browse.Mode)
	assert.Equal(t, "library", *cfg.Browse.Mode)
	require.NotNil(t, cfg.Browse.StickyHeader)
	assert.False(t, *cfg.Browse.StickyHeader)
	assert.Nil(t, cfg.Browse.Hero)
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[browse]\nspeed = 3\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browse.speed")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/cfg", "tinysteps", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/state", "tinysteps", "tinysteps.log"), DefaultLogPath())
}
