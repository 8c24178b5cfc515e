// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package task

// Content holds the fields of a single to-do task. Text is set once
// at creation (trimmed, never empty) and is immutable afterwards;
// Completed is the only mutable field.
type Content struct {
	// Text is the trimmed user-provided task description.
	Text string

	// Completed is true when the task has been marked done.
	Completed bool

	// CreatedAt is the ISO 8601 creation timestamp.
	CreatedAt string

	// CompletedAt is the ISO 8601 timestamp of the most recent
	// transition to completed. Empty while the task is open; cleared
	// when a completed task is toggled back.
	CompletedAt string
}

// Entry pairs a task ID with its content. Returned by query methods.
type Entry struct {
	ID      string
	Content Content
}

// Stats holds aggregate counts across all tasks in the store.
type Stats struct {
	Total     int
	Completed int
	Remaining int
}
