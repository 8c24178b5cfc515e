// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickmark-app/tickmark/lib/task"
)

// Tab identifies which slice of the task list is visible.
type Tab int

const (
	// TabAll shows every task in insertion order.
	TabAll Tab = iota
	// TabActive shows tasks not yet completed.
	TabActive
	// TabCompleted shows completed tasks.
	TabCompleted
)

// FocusRegion identifies where keyboard input is routed.
type FocusRegion int

const (
	// FocusList means navigation keys move the list cursor and
	// operation keys act on the selected task.
	FocusList FocusRegion = iota
	// FocusDraft means keystrokes go to the draft input for a new
	// task. Enter submits, Escape cancels.
	FocusDraft
	// FocusFilter means keystrokes go to the filter input.
	FocusFilter
)

// sourceEventMsg wraps a Source Event for delivery through the
// bubbletea message loop.
type sourceEventMsg struct {
	event Event
}

// noticeFadeMsg is sent after a short delay to clear the transient
// notice from the header.
type noticeFadeMsg struct{}

// noticeFadeDelay is how long delete feedback stays visible.
const noticeFadeDelay = 2 * time.Second

// Model is the top-level bubbletea model for the tickmark TUI.
type Model struct {
	source Source
	theme  Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Active tab, filter, and draft input.
	activeTab Tab
	filter    FilterModel
	draft     DraftModel

	// List state. entries is the tab's base set straight from the
	// source; items is what the filter leaves visible, best match
	// first while a filter is set. stats comes from the source
	// snapshot and always covers the whole store.
	entries []task.Entry
	items   []task.Entry

	// filterHighlights maps task ID to the matched rune positions in
	// the task text for the current filter, nil when no filter is set.
	filterHighlights map[string][]int

	stats        task.Stats
	cursor       int
	scrollOffset int
	selectedID   string // Stable focus: track selection by task ID.

	focusRegion FocusRegion
	priorFocus  FocusRegion // Saved focus when entering filter mode.

	// Transient feedback after a delete, cleared by noticeFadeMsg.
	notice string

	// Checkbox glyph overrides from config; empty means defaults.
	glyphOpen string
	glyphDone string

	eventChannel <-chan Event
}

// NewModel creates a Model connected to the given task source,
// showing the All tab.
func NewModel(source Source) Model {
	snapshot := source.All()

	model := Model{
		source:       source,
		theme:        DefaultDarkTheme,
		keys:         DefaultKeyMap,
		activeTab:    TabAll,
		entries:      snapshot.Entries,
		stats:        snapshot.Stats,
		eventChannel: source.Subscribe(),
	}

	model.rebuildItems()
	if len(model.items) > 0 {
		model.selectedID = model.items[0].ID
	}
	return model
}

// SetTheme replaces the color palette. Call before running the
// bubbletea program.
func (model *Model) SetTheme(theme Theme) {
	model.theme = theme
}

// SetStartTab selects the tab shown first. Call before running the
// bubbletea program.
func (model *Model) SetStartTab(tab Tab) {
	model.activeTab = tab
	model.refreshFromSource()
}

// SetGlyphs overrides the open/done checkbox glyphs. Empty strings
// keep the defaults.
func (model *Model) SetGlyphs(open, done string) {
	model.glyphOpen = open
	model.glyphDone = done
}

// Init implements tea.Model. Starts listening for source events.
func (model Model) Init() tea.Cmd {
	if model.eventChannel == nil {
		return nil
	}
	return listenForSourceEvent(model.eventChannel)
}

// listenForSourceEvent returns a tea.Cmd that blocks until an event
// arrives on the source channel, then delivers it as a sourceEventMsg.
func listenForSourceEvent(channel <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return nil
		}
		return sourceEventMsg{event: event}
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles layout changes.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// When the draft input is active, route all input to it.
		if model.focusRegion == FocusDraft {
			return model.handleDraftKeys(message)
		}
		// When the filter is active, route all input to it.
		if model.focusRegion == FocusFilter {
			return model.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Draft):
			model.draft.Active = true
			model.focusRegion = FocusDraft

		case key.Matches(message, model.keys.FilterActivate):
			model.priorFocus = model.focusRegion
			model.focusRegion = FocusFilter
			model.filter.Active = true
			// Reset list position to the top so the user sees
			// results from the beginning as they type.
			model.cursor = 0
			model.scrollOffset = 0

		case key.Matches(message, model.keys.Cancel):
			if model.filter.Input != "" {
				model.filter.Clear()
				model.refreshFromSource()
			}

		case key.Matches(message, model.keys.TabAll):
			model.switchTab(TabAll)

		case key.Matches(message, model.keys.TabActive):
			model.switchTab(TabActive)

		case key.Matches(message, model.keys.TabCompleted):
			model.switchTab(TabCompleted)

		case key.Matches(message, model.keys.Toggle):
			model.toggleSelected()

		case key.Matches(message, model.keys.Delete):
			return model, model.deleteSelected()

		default:
			model.handleListKeys(message)
		}

	case tea.MouseMsg:
		if cmd := model.handleMouse(message); cmd != nil {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()

	case sourceEventMsg:
		// The event carries the change, but the model re-renders from
		// a fresh snapshot rather than patching local state — the
		// store is the single source of truth.
		model.refreshFromSource()
		return model, listenForSourceEvent(model.eventChannel)

	case noticeFadeMsg:
		model.notice = ""
	}
	return model, nil
}

// handleDraftKeys processes keystrokes while the draft input has
// focus. Enter submits the draft to the source (which drops blank
// text) and clears it; Escape discards it.
func (model Model) handleDraftKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits, even while typing.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		// 'q' is a regular character in the draft.
		model.draft.HandleRune('q')
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		model.draft.Clear()
		model.focusRegion = FocusList
		return model, nil

	case message.Type == tea.KeyEnter:
		text := model.draft.Input
		model.draft.Clear()
		model.focusRegion = FocusList
		if id := model.source.Add(text); id != "" {
			// Select the new task so the cursor lands on it after the
			// refresh triggered by the source event.
			model.selectedID = id
		}
		model.refreshFromSource()
		return model, nil

	case message.Type == tea.KeyBackspace:
		model.draft.HandleBackspace()
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.draft.HandleRune(character)
		}
		return model, nil
	}

	return model, nil
}

// handleFilterKeys processes keystrokes when the filter input has
// focus.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits, even in filter mode.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		// 'q' is a regular character in filter mode.
		model.filter.HandleRune('q')
		model.rebuildItems()
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		// Esc: if there's filter text, clear it but stay in filter
		// mode; if already empty, exit filter mode.
		if model.filter.Input != "" {
			model.filter.Input = ""
			model.refreshFromSource()
		} else {
			model.filter.Active = false
			model.focusRegion = model.priorFocus
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		// Confirm filter and return focus to the list.
		model.filter.Active = false
		model.focusRegion = FocusList
		return model, nil

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.rebuildItems()
		}
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.rebuildItems()
		return model, nil
	}

	return model, nil
}

// handleListKeys processes list navigation keys.
func (model *Model) handleListKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.items)-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.Home):
		model.cursor = 0

	case key.Matches(message, model.keys.End):
		if len(model.items) > 0 {
			model.cursor = len(model.items) - 1
		}
	}

	if model.cursor >= 0 && model.cursor < len(model.items) {
		model.selectedID = model.items[model.cursor].ID
	}
	model.ensureCursorVisible()
}

// handleMouse routes mouse events. The wheel scrolls the list; a
// click selects the row under the cursor, a click on the checkbox
// cell toggles the task, and a click on the delete glyph removes it.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if message.Action == tea.MouseActionMotion {
		return nil
	}

	contentStart := model.contentStartY()
	inContentArea := message.Y >= contentStart && message.Y < contentStart+model.visibleHeight()

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if inContentArea {
			model.scrollListUp(1)
		}

	case tea.MouseButtonWheelDown:
		if inContentArea {
			model.scrollListDown(1)
		}

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress || !inContentArea {
			return nil
		}
		index := model.scrollOffset + (message.Y - contentStart)
		if index < 0 || index >= len(model.items) {
			return nil
		}
		model.cursor = index
		model.selectedID = model.items[index].ID

		rowWidth := model.rowWidth()
		switch {
		case message.X < columnWidthCheckbox:
			model.toggleSelected()
		case message.X >= rowWidth-columnWidthDelete && message.X < rowWidth:
			return model.deleteSelected()
		}
	}
	return nil
}

// switchTab changes the active tab and refreshes the list, keeping
// the selection when the task is still visible on the new tab.
func (model *Model) switchTab(tab Tab) {
	if model.activeTab == tab {
		return
	}
	model.activeTab = tab
	model.scrollOffset = 0
	model.refreshFromSource()
}

// toggleSelected flips the completed flag of the selected task.
func (model *Model) toggleSelected() {
	if model.selectedID == "" {
		return
	}
	model.source.Toggle(model.selectedID)
	model.refreshFromSource()
}

// deleteSelected removes the selected task and shows a transient
// notice naming what was deleted. Returns the notice fade command,
// or nil when nothing was deleted.
func (model *Model) deleteSelected() tea.Cmd {
	if model.selectedID == "" {
		return nil
	}
	content, exists := model.source.Get(model.selectedID)
	if !exists {
		return nil
	}

	model.source.Delete(model.selectedID)
	model.notice = fmt.Sprintf("Deleted %q", content.Text)
	model.refreshFromSource()

	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// refreshFromSource pulls a fresh snapshot for the active tab and
// rebuilds the visible list.
func (model *Model) refreshFromSource() {
	var snapshot Snapshot
	switch model.activeTab {
	case TabActive:
		snapshot = model.source.Active()
	case TabCompleted:
		snapshot = model.source.Completed()
	default:
		snapshot = model.source.All()
	}
	model.entries = snapshot.Entries
	model.stats = snapshot.Stats
	model.rebuildItems()
}

// rebuildItems applies the filter to the tab's entries and restores
// the cursor to the selected task, clamping when it is gone.
func (model *Model) rebuildItems() {
	if model.filter.Input != "" {
		results := model.filter.ApplyFuzzy(model.entries)
		model.items = make([]task.Entry, len(results))
		model.filterHighlights = make(map[string][]int, len(results))
		for index, result := range results {
			model.items[index] = result.Entry
			if len(result.TextPositions) > 0 {
				model.filterHighlights[result.Entry.ID] = result.TextPositions
			}
		}
	} else {
		model.items = model.entries
		model.filterHighlights = nil
	}

	// Stable focus: find the previously selected task in the new list.
	found := -1
	for index, entry := range model.items {
		if entry.ID == model.selectedID {
			found = index
			break
		}
	}
	if found >= 0 {
		model.cursor = found
	} else {
		if model.cursor >= len(model.items) {
			model.cursor = len(model.items) - 1
		}
		if model.cursor < 0 {
			model.cursor = 0
		}
		if model.cursor < len(model.items) {
			model.selectedID = model.items[model.cursor].ID
		} else {
			model.selectedID = ""
		}
	}
	model.ensureCursorVisible()
}

// scrollListUp scrolls the list up, moving the cursor to stay within
// the visible window.
func (model *Model) scrollListUp(lines int) {
	model.scrollOffset -= lines
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
	model.clampCursorToWindow()
}

// scrollListDown scrolls the list down, moving the cursor to stay
// within the visible window.
func (model *Model) scrollListDown(lines int) {
	maxOffset := len(model.items) - model.visibleHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	model.scrollOffset += lines
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}
	model.clampCursorToWindow()
}

// clampCursorToWindow keeps the cursor inside the visible window
// after a scroll, then re-anchors the stable selection.
func (model *Model) clampCursorToWindow() {
	visible := model.visibleHeight()
	if visible <= 0 || len(model.items) == 0 {
		return
	}
	if model.cursor < model.scrollOffset {
		model.cursor = model.scrollOffset
	}
	last := model.scrollOffset + visible - 1
	if last >= len(model.items) {
		last = len(model.items) - 1
	}
	if model.cursor > last {
		model.cursor = last
	}
	model.selectedID = model.items[model.cursor].ID
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	// Clamp scrollOffset so we never scroll past the end of the list.
	// This handles tab switches where the new list is shorter than the
	// old scrollOffset.
	maxOffset := len(model.items) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// contentStartY returns the Y coordinate where the list area begins.
// The top chrome line is always exactly 1 row: either the tab bar
// (normal) or the filter bar (when filter is active).
func (model Model) contentStartY() int {
	return 1
}

// visibleHeight returns the number of list rows that fit between the
// chrome elements: tab bar above, and draft bar, separator line, and
// help bar below.
func (model Model) visibleHeight() int {
	return model.height - model.contentStartY() - 3
}

// rowWidth returns the width of a list row. One column at the right
// edge is reserved for the scrollbar.
func (model Model) rowWidth() int {
	return model.width - 1
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: either the tab bar or the filter bar. The
	// filter bar replaces the tab bar so the layout doesn't shift.
	filterView := model.filter.View(model.theme, model.width)
	if filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderHeader())
	}

	sections = append(sections, model.renderListPane())
	sections = append(sections, model.draft.View(model.theme, model.width))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width)))
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// tabLabel returns the display label for a tab with its count.
func (model Model) tabLabel(tab Tab) string {
	switch tab {
	case TabActive:
		return fmt.Sprintf("Active (%d)", model.stats.Remaining)
	case TabCompleted:
		return fmt.Sprintf("Done (%d)", model.stats.Completed)
	default:
		return fmt.Sprintf("All (%d)", model.stats.Total)
	}
}

// renderHeader renders the tab bar with per-tab counts, plus the
// transient notice at the right edge when one is active.
func (model Model) renderHeader() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(model.theme.AccentForeground).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)
	separatorStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)

	var parts []string
	for _, tab := range []Tab{TabAll, TabActive, TabCompleted} {
		label := model.tabLabel(tab)
		if tab == model.activeTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	left := " " + strings.Join(parts, separatorStyle.Render(" │ "))

	if model.notice != "" {
		noticeRendered := lipgloss.NewStyle().
			Foreground(model.theme.NoticeText).
			Render(model.notice)
		padding := model.width - lipgloss.Width(left) - lipgloss.Width(noticeRendered) - 1
		if padding > 0 {
			return left + strings.Repeat(" ", padding) + noticeRendered + " "
		}
	}

	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(left)
}

// renderListPane renders the visible task rows plus the scrollbar
// column on the right.
func (model Model) renderListPane() string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}
	rowWidth := model.rowWidth()

	renderer := NewListRenderer(model.theme, rowWidth)
	renderer.SetGlyphs(model.glyphOpen, model.glyphDone)

	var rows []string
	if len(model.items) == 0 {
		rows = append(rows, model.renderEmpty(rowWidth))
	}
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.items); index++ {
		entry := model.items[index]
		rows = append(rows, renderer.RenderRow(entry, index == model.cursor, model.filterHighlights[entry.ID]))
	}

	// Pad empty rows so the draft bar stays anchored at the bottom.
	emptyStyle := lipgloss.NewStyle().Width(rowWidth)
	for len(rows) < visible {
		rows = append(rows, emptyStyle.Render(""))
	}

	scrollbar := renderScrollbar(
		model.theme, visible,
		len(model.items), visible, model.scrollOffset,
		model.focusRegion == FocusList,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderEmpty renders the placeholder row when no tasks are visible.
func (model Model) renderEmpty(width int) string {
	text := "No tasks yet — press a to add one."
	if model.filter.Input != "" {
		text = "No tasks match the filter."
	} else if model.activeTab == TabActive && model.stats.Total > 0 {
		text = "All done."
	} else if model.activeTab == TabCompleted {
		text = "Nothing completed yet."
	}

	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Width(width).
		MaxWidth(width).
		Render(" " + text)
}

// renderHelp renders the bottom help bar with key hints and the
// focus indicator.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	var hints string
	switch model.focusRegion {
	case FocusDraft:
		hints = "DRAFT  Enter add · Esc cancel"
	case FocusFilter:
		hints = "FILTER  Enter confirm · Esc clear"
	default:
		hints = fmt.Sprintf("LIST  %d/%d done · j/k move · Space toggle · d delete · a new · / filter · 1/2/3 tabs · q quit",
			model.stats.Completed, model.stats.Total)
	}

	return style.Width(model.width).MaxWidth(model.width).Render(" " + hints)
}
