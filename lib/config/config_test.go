// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a temporary config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickmark.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadWithoutEnvReturnsDefaults(t *testing.T) {
	t.Setenv("TICKMARK_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.StartTab != "all" {
		t.Errorf("expected default start tab, got %q", cfg.UI.StartTab)
	}
	if cfg.Theme.Mode != ThemeAuto {
		t.Errorf("expected auto theme mode, got %q", cfg.Theme.Mode)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "ui:\n  start_tab: active\n")
	t.Setenv("TICKMARK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.StartTab != "active" {
		t.Errorf("expected active start tab, got %q", cfg.UI.StartTab)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
ui:
  open_glyph: "( )"
  done_glyph: "(*)"
theme:
  mode: dark
  accent: "39"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.UI.StartTab != "all" {
		t.Errorf("expected default start tab preserved, got %q", cfg.UI.StartTab)
	}
	if cfg.UI.OpenGlyph != "( )" || cfg.UI.DoneGlyph != "(*)" {
		t.Errorf("glyph overrides not applied: %q %q", cfg.UI.OpenGlyph, cfg.UI.DoneGlyph)
	}
	if cfg.Theme.Mode != ThemeDark {
		t.Errorf("expected dark mode, got %q", cfg.Theme.Mode)
	}
	if cfg.Theme.Accent != "39" {
		t.Errorf("expected accent override, got %q", cfg.Theme.Accent)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "ui: [not a mapping")
	if _, err := LoadFile(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad start tab",
			mutate:  func(c *Config) { c.UI.StartTab = "archived" },
			wantErr: "ui.start_tab",
		},
		{
			name:    "bad theme mode",
			mutate:  func(c *Config) { c.Theme.Mode = "solarized" },
			wantErr: "theme.mode",
		},
		{
			name:    "color index out of range",
			mutate:  func(c *Config) { c.Theme.Accent = "300" },
			wantErr: "theme.accent",
		},
		{
			name:    "color not a number",
			mutate:  func(c *Config) { c.Theme.Selection = "blue" },
			wantErr: "theme.selection",
		},
		{
			name:    "short hex color",
			mutate:  func(c *Config) { c.Theme.Completed = "#fff" },
			wantErr: "theme.completed",
		},
		{
			name:    "non-hex digits",
			mutate:  func(c *Config) { c.Theme.Accent = "#zzzzzz" },
			wantErr: "theme.accent",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not mention %q", err, test.wantErr)
			}
		})
	}
}

func TestValidateAcceptsGoodColors(t *testing.T) {
	cfg := Default()
	cfg.Theme.Accent = "39"
	cfg.Theme.Selection = "#00afff"
	cfg.Theme.Completed = "0"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
