// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"strings"
	"time"

	"github.com/tickmark-app/tickmark/lib/clock"
)

// Store is the in-memory task list. It preserves insertion order: Add
// appends to the end and nothing ever reorders. The store is the sole
// owner of task state — the UI reads snapshots and calls mutation
// methods, never holding task data of its own.
//
// Construct with [NewStore]. Not safe for concurrent use.
type Store struct {
	entries []Entry

	// issued records every ID the store has ever generated, including
	// IDs of since-deleted tasks. Generated IDs are unique for the
	// store's whole lifetime, so a row key never refers to two
	// different tasks across re-renders.
	issued map[string]struct{}

	// sequence counts every add, feeding the ID hash so identical
	// text added at the same instant still hashes differently.
	sequence uint64

	clock clock.Clock
}

// NewStore returns an empty store that stamps timestamps from the
// given clock.
func NewStore(clk clock.Clock) *Store {
	return &Store{
		issued: make(map[string]struct{}),
		clock:  clk,
	}
}

// Add trims text and appends a new open task to the end of the list,
// returning its freshly generated ID. Blank or whitespace-only text is
// silently ignored and returns "" — invalid input is dropped rather
// than surfaced, matching client-side form validation.
func (store *Store) Add(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	now := store.clock.Now().UTC().Format(time.RFC3339)
	store.sequence++
	id := generateID(store.issued, now, store.sequence, trimmed)
	store.issued[id] = struct{}{}

	store.entries = append(store.entries, Entry{
		ID: id,
		Content: Content{
			Text:      trimmed,
			CreatedAt: now,
		},
	})
	return id
}

// Toggle flips the Completed flag on the task with the given ID and
// stamps or clears CompletedAt accordingly. Returns false (leaving
// every task untouched) when the ID is not present. No other task and
// no ordering is ever affected.
func (store *Store) Toggle(id string) bool {
	for index := range store.entries {
		if store.entries[index].ID != id {
			continue
		}
		content := &store.entries[index].Content
		content.Completed = !content.Completed
		if content.Completed {
			content.CompletedAt = store.clock.Now().UTC().Format(time.RFC3339)
		} else {
			content.CompletedAt = ""
		}
		return true
	}
	return false
}

// Delete removes the task with the given ID, preserving the relative
// order of the remaining tasks. Idempotent: a missing ID is a no-op
// returning false.
func (store *Store) Delete(id string) bool {
	for index := range store.entries {
		if store.entries[index].ID == id {
			store.entries = append(store.entries[:index], store.entries[index+1:]...)
			return true
		}
	}
	return false
}

// Get returns the content of a single task. The second return value
// is false if the task does not exist.
func (store *Store) Get(id string) (Content, bool) {
	for index := range store.entries {
		if store.entries[index].ID == id {
			return store.entries[index].Content, true
		}
	}
	return Content{}, false
}

// Len returns the number of tasks in the store.
func (store *Store) Len() int {
	return len(store.entries)
}

// List returns all tasks in insertion order. The returned slice is a
// copy: callers observe the state at call time and later mutations do
// not alias through.
func (store *Store) List() []Entry {
	return append([]Entry(nil), store.entries...)
}

// Active returns the open (not completed) tasks in insertion order.
func (store *Store) Active() []Entry {
	var result []Entry
	for _, entry := range store.entries {
		if !entry.Content.Completed {
			result = append(result, entry)
		}
	}
	return result
}

// Completed returns the completed tasks in insertion order.
func (store *Store) Completed() []Entry {
	var result []Entry
	for _, entry := range store.entries {
		if entry.Content.Completed {
			result = append(result, entry)
		}
	}
	return result
}

// Stats returns aggregate counts across all tasks.
func (store *Store) Stats() Stats {
	stats := Stats{Total: len(store.entries)}
	for _, entry := range store.entries {
		if entry.Content.Completed {
			stats.Completed++
		}
	}
	stats.Remaining = stats.Total - stats.Completed
	return stats
}
