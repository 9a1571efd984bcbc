package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgekit/cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "grid", cfg.Layout)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_WithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := (&Config{
		Window: WindowConfig{Width: 1024, Height: 768},
		Theme:  "light",
		Layout: "tabs",
	}).WithDefaults()

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "tabs", cfg.Layout)
}

func TestLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", `window:
  width: 1280
  height: 720
theme: light
layout: tabs
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "tabs", cfg.Layout)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "theme: light\n")

	t.Setenv("FORGE_THEME", "dark")
	t.Setenv("FORGE_WINDOW_WIDTH", "1920")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 1920, cfg.Window.Width)
}

func TestLoader_PartialFileFilledWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "layout: tabs\n")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "tabs", cfg.Layout)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoader_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "window: [not a map\n")

	_, err := NewLoader().Load(path)
	require.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := GetConfigDir()
	require.NoError(t, err)
	homeRoot := filepath.Dir(home)

	expanded, err := ExpandPath("~/.forge/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeRoot, ".forge", "config.yaml"), expanded)

	plain, err := ExpandPath("/etc/forge.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/forge.yaml", plain)
}
