// Package config provides configuration loading and management for the CLI
// itself (not for generated projects).
package config

import "github.com/forgekit/cli/internal/project"

// WindowConfig contains default window dimensions for new projects.
type WindowConfig struct {
	// Width is the default window width in pixels.
	// Env: FORGE_WINDOW_WIDTH, Default: 800
	Width int `mapstructure:"width" yaml:"width,omitempty"`

	// Height is the default window height in pixels.
	// Env: FORGE_WINDOW_HEIGHT, Default: 600
	Height int `mapstructure:"height" yaml:"height,omitempty"`
}

// Config represents the forge CLI configuration.
// Loaded from ~/.forge/config.yaml with FORGE_* environment overrides.
type Config struct {
	// Window contains default window dimensions for new projects.
	Window WindowConfig `mapstructure:"window" yaml:"window,omitempty"`

	// Theme is the default theme for new projects ("dark" or "light").
	// Env: FORGE_THEME
	Theme string `mapstructure:"theme" yaml:"theme,omitempty"`

	// Layout is the default widget arrangement for new projects
	// ("grid" or "tabs"). Env: FORGE_LAYOUT
	Layout string `mapstructure:"layout" yaml:"layout,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `forge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  project.DefaultWidth,
			Height: project.DefaultHeight,
		},
		Theme:  project.DefaultTheme,
		Layout: project.DefaultArrangement,
	}
}

// WithDefaults fills zero-valued fields with the built-in defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Window.Width <= 0 {
		out.Window.Width = project.DefaultWidth
	}
	if out.Window.Height <= 0 {
		out.Window.Height = project.DefaultHeight
	}
	if out.Theme == "" {
		out.Theme = project.DefaultTheme
	}
	if out.Layout == "" {
		out.Layout = project.DefaultArrangement
	}
	return &out
}
