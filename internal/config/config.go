// Package config provides configuration types, defaults, and
// preference persistence for lgtok.
package config

import (
	"fmt"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Motion preference values.
const (
	MotionFull    = "full"
	MotionReduced = "reduced"
)

// Config holds all configuration options for lgtok.
type Config struct {
	// TokensPath points at an external base token dataset. Empty means
	// the embedded palette.
	TokensPath string `mapstructure:"tokens_path"`

	// AutoReload re-reads TokensPath when the file changes on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	// Theme forces light or dark rendering. Empty falls back to
	// terminal background detection.
	Theme string `mapstructure:"theme"`

	// Motion is "full" or "reduced". Reduced motion drops the spinner
	// and animated transitions in favor of plain state changes.
	Motion string `mapstructure:"motion"`

	UI UIConfig `mapstructure:"ui"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	// ShowDescriptions renders the selected token's description under
	// the table.
	ShowDescriptions bool `mapstructure:"show_descriptions"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload: true,
		Motion:     MotionFull,
		UI: UIConfig{
			ShowDescriptions: true,
		},
	}
}

// Validate checks preference values, leaving unknown settings to
// viper's own handling.
func (c Config) Validate() error {
	switch c.Theme {
	case "", ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want %q or %q)", c.Theme, ThemeLight, ThemeDark)
	}
	switch c.Motion {
	case "", MotionFull, MotionReduced:
	default:
		return fmt.Errorf("invalid motion %q (want %q or %q)", c.Motion, MotionFull, MotionReduced)
	}
	return nil
}

// ReducedMotion reports whether animations should be suppressed.
func (c Config) ReducedMotion() bool {
	return c.Motion == MotionReduced
}
