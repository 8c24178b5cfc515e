// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/tickmark-app/tickmark/lib/task"
)

func listEntry(id, text string, completed bool) task.Entry {
	return task.Entry{
		ID: id,
		Content: task.Content{
			Text:      text,
			Completed: completed,
		},
	}
}

func TestRenderRowShowsCheckboxAndText(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 60)

	open := renderer.RenderRow(listEntry("task-2ccg", "Walk the dog", false), false, nil)
	if !strings.Contains(open, "[ ]") {
		t.Errorf("open row missing open checkbox: %q", open)
	}
	if !strings.Contains(open, "Walk the dog") {
		t.Errorf("open row missing text: %q", open)
	}
	if !strings.Contains(open, "task-2ccg") {
		t.Errorf("open row missing ID: %q", open)
	}
	if !strings.Contains(open, "✗") {
		t.Errorf("open row missing delete control: %q", open)
	}

	done := renderer.RenderRow(listEntry("task-3vk5", "Buy milk", true), false, nil)
	if !strings.Contains(done, "[x]") {
		t.Errorf("done row missing done checkbox: %q", done)
	}
}

func TestRenderRowTruncatesLongText(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 40)
	longText := strings.Repeat("long task text ", 10)

	row := renderer.RenderRow(listEntry("task-aaaa", longText, false), false, nil)
	if ansi.StringWidth(row) > 40 {
		t.Errorf("row wider than limit: %d", ansi.StringWidth(row))
	}
	if !strings.Contains(row, "…") {
		t.Errorf("expected ellipsis in truncated row: %q", row)
	}
}

func TestRenderRowWidthIsStable(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 60)

	short := renderer.RenderRow(listEntry("task-aaaa", "a", false), false, nil)
	long := renderer.RenderRow(listEntry("task-bbbb", "a somewhat longer task", false), false, nil)
	if ansi.StringWidth(short) != ansi.StringWidth(long) {
		t.Errorf("row widths differ: %d vs %d",
			ansi.StringWidth(short), ansi.StringWidth(long))
	}
}

func TestRenderRowSelectedKeepsContent(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 60)
	entry := listEntry("task-aaaa", "Buy milk", false)

	selected := renderer.RenderRow(entry, true, nil)
	if !strings.Contains(selected, "Buy milk") || !strings.Contains(selected, "task-aaaa") {
		t.Errorf("selected row missing content: %q", selected)
	}
}

func TestRenderRowHighlightKeepsContentAndWidth(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 60)
	entry := listEntry("task-aaaa", "Buy milk", false)

	plain := renderer.RenderRow(entry, false, nil)
	highlighted := renderer.RenderRow(entry, false, []int{0, 4, 7})

	if !strings.Contains(highlighted, "B") || !strings.Contains(highlighted, "milk"[3:]) {
		t.Errorf("highlighted row lost characters: %q", highlighted)
	}
	if ansi.StringWidth(highlighted) != ansi.StringWidth(plain) {
		t.Errorf("highlight changed row width: %d vs %d",
			ansi.StringWidth(highlighted), ansi.StringWidth(plain))
	}
}

func TestRenderRowHighlightPastTruncationIsDropped(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 40)
	longText := strings.Repeat("long task text ", 10)
	entry := listEntry("task-aaaa", longText, false)

	// Positions far past the visible cut must not panic or widen the
	// row.
	row := renderer.RenderRow(entry, false, []int{0, 140, 149})
	if ansi.StringWidth(row) > 40 {
		t.Errorf("row wider than limit: %d", ansi.StringWidth(row))
	}
	if !strings.Contains(row, "…") {
		t.Errorf("expected ellipsis in truncated row: %q", row)
	}
}

func TestSetGlyphs(t *testing.T) {
	renderer := NewListRenderer(DefaultDarkTheme, 60)
	renderer.SetGlyphs("○", "●")

	open := renderer.RenderRow(listEntry("task-aaaa", "one", false), false, nil)
	if !strings.Contains(open, "○") {
		t.Errorf("expected custom open glyph: %q", open)
	}

	done := renderer.RenderRow(listEntry("task-bbbb", "two", true), false, nil)
	if !strings.Contains(done, "●") {
		t.Errorf("expected custom done glyph: %q", done)
	}

	// Empty strings keep the current glyphs.
	renderer.SetGlyphs("", "")
	open = renderer.RenderRow(listEntry("task-aaaa", "one", false), false, nil)
	if !strings.Contains(open, "○") {
		t.Errorf("expected glyph preserved after empty override: %q", open)
	}
}

func TestRenderScrollbarFullThumbWhenContentFits(t *testing.T) {
	bar := renderScrollbar(DefaultDarkTheme, 4, 2, 4, 0, true)
	lines := strings.Split(bar, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for index, line := range lines {
		if !strings.Contains(line, "┃") {
			t.Errorf("line %d missing full thumb: %q", index, line)
		}
	}
}

func TestRenderScrollbarProportionalThumb(t *testing.T) {
	// 10 visible of 20 total at offset 0: thumb in the top half.
	bar := renderScrollbar(DefaultDarkTheme, 10, 20, 10, 0, false)
	lines := strings.Split(bar, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "┃") {
		t.Errorf("expected thumb at top for offset 0")
	}
	if !strings.Contains(lines[9], "│") {
		t.Errorf("expected track at bottom for offset 0")
	}

	// At max offset the thumb sits at the bottom.
	bar = renderScrollbar(DefaultDarkTheme, 10, 20, 10, 10, false)
	lines = strings.Split(bar, "\n")
	if !strings.Contains(lines[9], "┃") {
		t.Errorf("expected thumb at bottom for max offset")
	}
	if !strings.Contains(lines[0], "│") {
		t.Errorf("expected track at top for max offset")
	}
}

func TestRenderScrollbarZeroHeight(t *testing.T) {
	if bar := renderScrollbar(DefaultDarkTheme, 0, 5, 5, 0, false); bar != "" {
		t.Errorf("expected empty scrollbar for zero height, got %q", bar)
	}
}
