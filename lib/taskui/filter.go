// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/tickmark-app/tickmark/lib/task"
)

// FilterModel narrows the visible list by fuzzy-matching the filter
// text against task text and ID. The filter composes with tabs: the
// tab chooses the base set (All/Active/Completed), and the filter
// narrows it client-side without touching the store.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// FuzzyEntryResult pairs an entry with its fuzzy match score and the
// matched rune positions within the task text (empty when the match
// was against the ID instead).
type FuzzyEntryResult struct {
	Entry         task.Entry
	Score         int
	TextPositions []int
}

// ApplyFuzzy ranks entries against the current filter text using
// fzf's fuzzy matcher. An entry matches when either its text or its
// ID matches; the better of the two scores counts. Non-matching
// entries are dropped. Results sort by descending score, ties
// keeping insertion order. An empty filter returns every entry with
// a zero score.
func (filter *FilterModel) ApplyFuzzy(entries []task.Entry) []FuzzyEntryResult {
	results := make([]FuzzyEntryResult, 0, len(entries))

	if filter.Input == "" {
		for _, entry := range entries {
			results = append(results, FuzzyEntryResult{Entry: entry})
		}
		return results
	}

	pattern := []rune(filter.Input)
	slab := util.MakeSlab(slab16Size, slab32Size)

	for _, entry := range entries {
		textMatch := fuzzyMatch(entry.Content.Text, pattern, slab)
		idMatch := fuzzyMatch(entry.ID, pattern, slab)

		score := textMatch.Score
		if idMatch.Score > score {
			score = idMatch.Score
		}
		if score <= 0 {
			continue
		}
		results = append(results, FuzzyEntryResult{
			Entry:         entry,
			Score:         score,
			TextPositions: textMatch.Positions,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// HandleRune appends a character typed while the filter is active.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter as a subtle
// indicator. When inactive with no text, returns "" (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.AccentForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" filter: " + filter.Input)
}
