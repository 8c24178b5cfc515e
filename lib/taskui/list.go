// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tickmark-app/tickmark/lib/task"
)

// Column widths for the list table. The text column fills remaining
// space; all others are fixed.
const (
	// columnWidthCheckbox covers the indent and the "[ ] " cell.
	columnWidthCheckbox = 5

	// columnWidthID is the short ID plus trailing space
	// (e.g. "task-2ccg  ").
	columnWidthID = 11

	// columnWidthDelete is the " ✗" control at the right edge.
	columnWidthDelete = 2
)

// Checkbox glyphs. Overridable via config so users who dislike the
// bracket style can use ○/● or similar.
const (
	defaultOpenGlyph = "[ ]"
	defaultDoneGlyph = "[x]"
)

// ListRenderer handles row rendering for the task list within a given
// width.
type ListRenderer struct {
	theme     Theme
	width     int
	openGlyph string
	doneGlyph string
}

// NewListRenderer creates a ListRenderer for the given width using the
// default checkbox glyphs.
func NewListRenderer(theme Theme, width int) ListRenderer {
	return ListRenderer{
		theme:     theme,
		width:     width,
		openGlyph: defaultOpenGlyph,
		doneGlyph: defaultDoneGlyph,
	}
}

// SetGlyphs overrides the open/done checkbox glyphs. Empty strings
// keep the defaults.
func (renderer *ListRenderer) SetGlyphs(open, done string) {
	if open != "" {
		renderer.openGlyph = open
	}
	if done != "" {
		renderer.doneGlyph = done
	}
}

// RenderRow renders a single task entry as a formatted table row.
//
// Row layout: indent + checkbox + " " + ID + text (fill) + delete glyph
//
//	[ ] task-2ccg  Walk the dog                ✗
//	[x] task-3vk5  Buy milk                    ✗
//
// Completed tasks render the text struck through in the completed
// color. The selected flag switches the whole row to the selection
// highlight. highlights holds the rune positions in the task text
// matched by the active filter; those characters render emphasized.
func (renderer ListRenderer) RenderRow(entry task.Entry, selected bool, highlights []int) string {
	textWidth := renderer.width - columnWidthCheckbox - columnWidthID - columnWidthDelete
	if textWidth < 10 {
		textWidth = 10
	}

	text := entry.Content.Text
	if ansi.StringWidth(text) > textWidth {
		text = ansi.Truncate(text, textWidth-1, "…")
		// Positions past the cut have nothing to emphasize.
		visible := len([]rune(text)) - 1
		kept := highlights[:0:0]
		for _, position := range highlights {
			if position < visible {
				kept = append(kept, position)
			}
		}
		highlights = kept
	}

	if selected {
		return renderer.renderSelectedRow(entry, text, textWidth, highlights)
	}
	return renderer.renderNormalRow(entry, text, textWidth, highlights)
}

// checkbox returns the completion indicator glyph for a task.
func (renderer ListRenderer) checkbox(completed bool) string {
	if completed {
		return renderer.doneGlyph
	}
	return renderer.openGlyph
}

// renderTextCell renders the text column padded to width, switching
// to the match style on highlighted rune positions.
func renderTextCell(text string, highlights []int, base, match lipgloss.Style, width int) string {
	if len(highlights) == 0 {
		return base.Width(width).Render(text)
	}

	highlighted := make(map[int]struct{}, len(highlights))
	for _, position := range highlights {
		highlighted[position] = struct{}{}
	}

	var cell strings.Builder
	for index, character := range []rune(text) {
		style := base
		if _, ok := highlighted[index]; ok {
			style = match
		}
		cell.WriteString(style.Render(string(character)))
	}
	if padding := width - ansi.StringWidth(text); padding > 0 {
		cell.WriteString(base.Render(strings.Repeat(" ", padding)))
	}
	return cell.String()
}

// renderNormalRow renders a row with per-component foreground colors
// on the default terminal background.
func (renderer ListRenderer) renderNormalRow(entry task.Entry, text string, textWidth int, highlights []int) string {
	completed := entry.Content.Completed

	checkboxColor := renderer.theme.CheckboxOpen
	if completed {
		checkboxColor = renderer.theme.CheckboxDone
	}
	checkboxStyle := lipgloss.NewStyle().Foreground(checkboxColor)

	idStyle := lipgloss.NewStyle().
		Width(columnWidthID).
		Foreground(renderer.theme.FaintText)

	textStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	if completed {
		textStyle = textStyle.
			Foreground(renderer.theme.CompletedText).
			Strikethrough(true)
	}
	matchStyle := textStyle.
		Foreground(renderer.theme.AccentForeground).
		Bold(true)

	deleteStyle := lipgloss.NewStyle().Foreground(renderer.theme.DeleteControl)

	row := " " +
		checkboxStyle.Render(renderer.checkbox(completed)) +
		" " +
		idStyle.Render(entry.ID) +
		renderTextCell(text, highlights, textStyle, matchStyle, textWidth) +
		deleteStyle.Render(" ✗")

	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// renderSelectedRow renders the selected row with a highlight
// background. All text uses the selected foreground color; the
// strikethrough on completed tasks is kept so completion stays
// legible under selection.
func (renderer ListRenderer) renderSelectedRow(entry task.Entry, text string, textWidth int, highlights []int) string {
	completed := entry.Content.Completed

	baseStyle := lipgloss.NewStyle().
		Background(renderer.theme.SelectedBackground).
		Foreground(renderer.theme.SelectedForeground)

	textStyle := baseStyle
	if completed {
		textStyle = textStyle.Strikethrough(true)
	}
	matchStyle := textStyle.Bold(true).Underline(true)

	row := " " +
		baseStyle.Bold(true).Render(renderer.checkbox(completed)) +
		" " +
		baseStyle.Width(columnWidthID).Render(entry.ID) +
		renderTextCell(text, highlights, textStyle, matchStyle, textWidth) +
		baseStyle.Render(" ✗")

	return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
}
