// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import "github.com/charmbracelet/lipgloss"

// DraftModel holds the not-yet-submitted text for a new task. The
// draft is scratch state at the store/view boundary: Enter hands it to
// the source (which ignores blank text) and clears it, Esc discards
// it.
type DraftModel struct {
	// Input is the current draft text.
	Input string

	// Active is true when the draft bar has keyboard focus.
	Active bool
}

// HandleRune appends a character typed while the draft is active.
func (draft *DraftModel) HandleRune(character rune) {
	draft.Input += string(character)
}

// HandleBackspace removes the last character from the draft.
// Returns true if the input changed.
func (draft *DraftModel) HandleBackspace() bool {
	if len(draft.Input) == 0 {
		return false
	}
	runes := []rune(draft.Input)
	draft.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the draft text and deactivates it.
func (draft *DraftModel) Clear() {
	draft.Input = ""
	draft.Active = false
}

// View renders the draft bar. When active, shows the input with a
// cursor. When inactive, shows a faint hint for the new-task binding.
func (draft *DraftModel) View(theme Theme, width int) string {
	if draft.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.AccentForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			MaxWidth(width).
			Render(" > " + draft.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		MaxWidth(width).
		Render(" > press a to add a task")
}
