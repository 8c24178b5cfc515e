// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"testing"

	"github.com/tickmark-app/tickmark/lib/task"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := fuzzyMatch("Buy milk and bread", []rune("milk"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
	// "milk" sits at rune offsets 4-7.
	if result.Positions[0] != 4 {
		t.Errorf("expected first match position 4, got %d", result.Positions[0])
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "bmk" should match "Buy milk" — b from Buy, m and k from milk.
	result := fuzzyMatch("Buy milk", []rune("bmk"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
	if len(result.Positions) != 3 {
		t.Errorf("expected 3 matched positions, got %v", result.Positions)
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := fuzzyMatch("Buy milk", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	// Pattern is lowercase, text has uppercase. The wrapper lowercases
	// both sides, so this should match.
	result := fuzzyMatch("BUY MILK", []rune("milk"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := fuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func fuzzyEntry(id, text string) task.Entry {
	return task.Entry{ID: id, Content: task.Content{Text: text}}
}

func TestApplyFuzzyEmptyFilter(t *testing.T) {
	entries := []task.Entry{
		fuzzyEntry("task-aaaa", "Buy milk"),
		fuzzyEntry("task-bbbb", "Walk the dog"),
	}

	filter := FilterModel{Input: ""}
	results := filter.ApplyFuzzy(entries)

	if len(results) != len(entries) {
		t.Fatalf("empty filter should return all %d entries, got %d", len(entries), len(results))
	}
	for index, result := range results {
		if result.Entry.ID != entries[index].ID {
			t.Errorf("empty filter reordered entries: %q at %d", result.Entry.ID, index)
		}
		if result.Score != 0 {
			t.Errorf("entry %s should have zero score with empty filter, got %d", result.Entry.ID, result.Score)
		}
		if len(result.TextPositions) != 0 {
			t.Errorf("entry %s should have no text positions with empty filter", result.Entry.ID)
		}
	}
}

func TestApplyFuzzyMatchesSubstring(t *testing.T) {
	entries := []task.Entry{
		fuzzyEntry("task-aaaa", "Buy milk"),
		fuzzyEntry("task-bbbb", "Walk the dog"),
		fuzzyEntry("task-cccc", "Buy bread"),
	}

	filter := FilterModel{Input: "buy"}
	results := filter.ApplyFuzzy(entries)

	if len(results) != 2 {
		t.Fatalf("expected 2 matches for buy, got %d", len(results))
	}
	for _, result := range results {
		if result.Score <= 0 {
			t.Errorf("entry %s matched with non-positive score", result.Entry.ID)
		}
		if len(result.TextPositions) == 0 {
			t.Errorf("entry %s missing text positions", result.Entry.ID)
		}
	}
}

func TestApplyFuzzyNonContiguousMatch(t *testing.T) {
	entries := []task.Entry{
		fuzzyEntry("task-aaaa", "Buy milk"),
		fuzzyEntry("task-bbbb", "Walk the dog"),
	}

	// "bmk" has no contiguous occurrence anywhere; fuzzy matching
	// still keeps "Buy milk" visible.
	filter := FilterModel{Input: "bmk"}
	results := filter.ApplyFuzzy(entries)

	if len(results) != 1 {
		t.Fatalf("expected 1 match for bmk, got %d", len(results))
	}
	if results[0].Entry.Content.Text != "Buy milk" {
		t.Errorf("wrong match: %q", results[0].Entry.Content.Text)
	}
}

func TestApplyFuzzyOrdersByScore(t *testing.T) {
	entries := []task.Entry{
		fuzzyEntry("task-aaaa", "mail in bulk"), // Scattered m-i-l-k.
		fuzzyEntry("task-bbbb", "milk run"),     // Consecutive match.
	}

	filter := FilterModel{Input: "milk"}
	results := filter.ApplyFuzzy(entries)

	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if results[0].Entry.ID != "task-bbbb" {
		t.Errorf("consecutive match should rank first, got %q", results[0].Entry.ID)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("scores not descending: %d then %d", results[0].Score, results[1].Score)
	}
}

func TestApplyFuzzyMatchesID(t *testing.T) {
	entries := []task.Entry{
		fuzzyEntry("task-2ccg", "Buy milk"),
		fuzzyEntry("task-9de1", "Walk the dog"),
	}

	filter := FilterModel{Input: "2ccg"}
	results := filter.ApplyFuzzy(entries)

	if len(results) != 1 || results[0].Entry.ID != "task-2ccg" {
		t.Fatalf("expected only the ID match, got %+v", results)
	}
	// The query matched the ID, not the text, so there is nothing to
	// emphasize in the text column.
	if len(results[0].TextPositions) != 0 {
		t.Errorf("ID match should carry no text positions, got %v", results[0].TextPositions)
	}
}
