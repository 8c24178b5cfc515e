// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the tickmark TUI. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText    lipgloss.Color
	FaintText     lipgloss.Color
	CompletedText lipgloss.Color // Struck-through text of done tasks.

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Completion indicator.
	CheckboxOpen lipgloss.Color
	CheckboxDone lipgloss.Color

	// Delete control glyph at the right edge of each row.
	DeleteControl lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	AccentForeground lipgloss.Color // Active tab, draft cursor.
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	NoticeText       lipgloss.Color // Transient status bar notices.
}

// DefaultDarkTheme is the built-in color scheme for dark-background
// terminals (the common case for development environments).
var DefaultDarkTheme = Theme{
	NormalText:    lipgloss.Color("252"),
	FaintText:     lipgloss.Color("245"),
	CompletedText: lipgloss.Color("240"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	CheckboxOpen: lipgloss.Color("245"),
	CheckboxDone: lipgloss.Color("114"), // green

	DeleteControl: lipgloss.Color("131"), // muted red

	HeaderForeground: lipgloss.Color("255"),
	AccentForeground: lipgloss.Color("75"), // blue
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	NoticeText:       lipgloss.Color("220"), // amber
}

// DefaultLightTheme adapts the palette for light-background terminals.
var DefaultLightTheme = Theme{
	NormalText:    lipgloss.Color("235"),
	FaintText:     lipgloss.Color("243"),
	CompletedText: lipgloss.Color("248"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	CheckboxOpen: lipgloss.Color("243"),
	CheckboxDone: lipgloss.Color("28"), // green

	DeleteControl: lipgloss.Color("124"),

	HeaderForeground: lipgloss.Color("232"),
	AccentForeground: lipgloss.Color("26"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("246"),
	NoticeText:       lipgloss.Color("130"),
}

// DetectTheme picks the default theme matching the terminal's
// background. Querying the terminal is unreliable once the alt screen
// is active, so call this before starting the bubbletea program.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DefaultDarkTheme
	}
	return DefaultLightTheme
}
