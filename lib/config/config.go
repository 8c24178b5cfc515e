// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for tickmark.
//
// Configuration is loaded from a single file specified by:
//   - TICKMARK_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. Running without a
// config file is fully supported and uses the built-in defaults; the
// file only exists for users who want to change them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ThemeMode selects how the color palette is chosen.
type ThemeMode string

const (
	// ThemeAuto picks dark or light based on the terminal background.
	ThemeAuto ThemeMode = "auto"
	// ThemeDark forces the dark palette.
	ThemeDark ThemeMode = "dark"
	// ThemeLight forces the light palette.
	ThemeLight ThemeMode = "light"
)

// Config is the master configuration for tickmark.
type Config struct {
	// UI configures startup behavior and list rendering.
	UI UIConfig `yaml:"ui"`

	// Theme configures the color palette.
	Theme ThemeConfig `yaml:"theme"`
}

// UIConfig configures startup behavior and list rendering.
type UIConfig struct {
	// StartTab is the tab shown on startup.
	// Values: "all", "active", "completed"
	// Default: all
	StartTab string `yaml:"start_tab"`

	// OpenGlyph is the checkbox glyph for open tasks.
	// Default: [ ]
	OpenGlyph string `yaml:"open_glyph"`

	// DoneGlyph is the checkbox glyph for completed tasks.
	// Default: [x]
	DoneGlyph string `yaml:"done_glyph"`
}

// ThemeConfig configures the color palette.
type ThemeConfig struct {
	// Mode selects the palette: "auto" detects the terminal
	// background, "dark" and "light" force a palette.
	// Default: auto
	Mode ThemeMode `yaml:"mode"`

	// Accent overrides the accent color used for the active tab,
	// cursors, and the focused scrollbar thumb.
	// ANSI 256 color index ("39") or hex ("#00afff").
	Accent string `yaml:"accent"`

	// Selection overrides the selected-row background color.
	Selection string `yaml:"selection"`

	// Completed overrides the completed-task text color.
	Completed string `yaml:"completed"`
}

// Default returns the default configuration. The config file is
// optional; these defaults are the full behavior when none is given.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			StartTab:  "all",
			OpenGlyph: "",
			DoneGlyph: "",
		},
		Theme: ThemeConfig{
			Mode: ThemeAuto,
		},
	}
}

// Load loads configuration from the TICKMARK_CONFIG environment
// variable. Returns defaults when the variable is not set; there is
// no other discovery.
func Load() (*Config, error) {
	configPath := os.Getenv("TICKMARK_CONFIG")
	if configPath == "" {
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// merged over the defaults and validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	tabValues := []string{"all", "active", "completed"}
	if !contains(tabValues, c.UI.StartTab) {
		errs = append(errs, fmt.Errorf("ui.start_tab must be one of: %v", tabValues))
	}

	if c.Theme.Mode != ThemeAuto && c.Theme.Mode != ThemeDark && c.Theme.Mode != ThemeLight {
		errs = append(errs, fmt.Errorf("theme.mode must be one of: auto, dark, light"))
	}

	for name, value := range map[string]string{
		"theme.accent":    c.Theme.Accent,
		"theme.selection": c.Theme.Selection,
		"theme.completed": c.Theme.Completed,
	} {
		if err := validateColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// validateColor accepts an empty string (no override), an ANSI 256
// color index, or a #rrggbb hex color.
func validateColor(value string) error {
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 6 {
			return fmt.Errorf("hex color must be #rrggbb, got %q", value)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return fmt.Errorf("invalid hex color %q", value)
		}
		return nil
	}

	index, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("color must be an ANSI 256 index or #rrggbb, got %q", value)
	}
	if index < 0 || index > 255 {
		return fmt.Errorf("ANSI color index out of range: %d", index)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
