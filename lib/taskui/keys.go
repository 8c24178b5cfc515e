// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the tickmark TUI.
type KeyMap struct {
	// List navigation.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Task operations.
	Toggle key.Binding // Flip the selected task between open and done.
	Delete key.Binding // Remove the selected task.
	Draft  key.Binding // Focus the draft input for a new task.

	// Tab switching.
	TabAll       key.Binding
	TabActive    key.Binding
	TabCompleted key.Binding

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	Cancel         key.Binding // Clear filter / cancel draft.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "toggle done"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Draft: key.NewBinding(
		key.WithKeys("a", "o"),
		key.WithHelp("a", "new task"),
	),
	TabAll: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "all"),
	),
	TabActive: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "active"),
	),
	TabCompleted: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "done"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
