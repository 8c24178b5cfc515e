// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"sync"

	"github.com/tickmark-app/tickmark/lib/task"
)

// Snapshot is a point-in-time view of tasks with aggregate statistics.
type Snapshot struct {
	Entries []task.Entry
	Stats   task.Stats
}

// Event describes a single change to the task store, delivered via
// the [Source.Subscribe] channel so the UI re-renders after each
// mutation.
type Event struct {
	TaskID  string
	Kind    string // "put" or "remove"
	Content task.Content
}

// Source abstracts task data access and mutation for the TUI. The
// store behind it is the sole owner of task state; the model reads
// snapshots and never caches authoritative data.
type Source interface {
	// All returns every task in insertion order.
	All() Snapshot

	// Active returns the open tasks in insertion order.
	Active() Snapshot

	// Completed returns the completed tasks in insertion order.
	Completed() Snapshot

	// Get returns a single task by ID.
	Get(taskID string) (task.Content, bool)

	// Add creates a task from the given text. Blank text is a no-op
	// returning "". Returns the new task's ID otherwise.
	Add(text string) string

	// Toggle flips the completed flag on the task with the given ID.
	// Missing IDs are a no-op.
	Toggle(taskID string)

	// Delete removes the task with the given ID. Missing IDs are a
	// no-op.
	Delete(taskID string)

	// Subscribe returns a channel that receives Events when the
	// underlying data changes.
	Subscribe() <-chan Event
}

// StoreSource wraps a [task.Store] with a mutex and event dispatch.
// The store itself is single-owner; the mutex exists because bubbletea
// delivers command results from goroutines.
type StoreSource struct {
	mutex       sync.RWMutex
	store       *task.Store
	subscribers []chan Event
}

// NewStoreSource creates a StoreSource wrapping the given store.
func NewStoreSource(store *task.Store) *StoreSource {
	return &StoreSource{store: store}
}

// All returns every task with global statistics.
func (source *StoreSource) All() Snapshot {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return Snapshot{Entries: source.store.List(), Stats: source.store.Stats()}
}

// Active returns the open tasks with global statistics.
func (source *StoreSource) Active() Snapshot {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return Snapshot{Entries: source.store.Active(), Stats: source.store.Stats()}
}

// Completed returns the completed tasks with global statistics.
func (source *StoreSource) Completed() Snapshot {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return Snapshot{Entries: source.store.Completed(), Stats: source.store.Stats()}
}

// Get returns a single task by ID.
func (source *StoreSource) Get(taskID string) (task.Content, bool) {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return source.store.Get(taskID)
}

// Subscribe returns a channel that receives Events when the store
// changes through this source.
func (source *StoreSource) Subscribe() <-chan Event {
	source.mutex.Lock()
	defer source.mutex.Unlock()
	channel := make(chan Event, 64)
	source.subscribers = append(source.subscribers, channel)
	return channel
}

// Add creates a task and dispatches a put event. Blank text is a
// no-op returning "" with no event.
func (source *StoreSource) Add(text string) string {
	source.mutex.Lock()
	id := source.store.Add(text)
	if id == "" {
		source.mutex.Unlock()
		return ""
	}
	content, _ := source.store.Get(id)
	subscribers := source.subscribers
	source.mutex.Unlock()

	source.dispatch(subscribers, Event{TaskID: id, Kind: "put", Content: content})
	return id
}

// Toggle flips a task's completed flag and dispatches a put event.
// Missing IDs are a no-op with no event.
func (source *StoreSource) Toggle(taskID string) {
	source.mutex.Lock()
	if !source.store.Toggle(taskID) {
		source.mutex.Unlock()
		return
	}
	content, _ := source.store.Get(taskID)
	subscribers := source.subscribers
	source.mutex.Unlock()

	source.dispatch(subscribers, Event{TaskID: taskID, Kind: "put", Content: content})
}

// Delete removes a task and dispatches a remove event. Missing IDs
// are a no-op with no event.
func (source *StoreSource) Delete(taskID string) {
	source.mutex.Lock()
	content, exists := source.store.Get(taskID)
	if !exists || !source.store.Delete(taskID) {
		source.mutex.Unlock()
		return
	}
	subscribers := source.subscribers
	source.mutex.Unlock()

	source.dispatch(subscribers, Event{TaskID: taskID, Kind: "remove", Content: content})
}

// dispatch sends an event to every subscriber without blocking.
// Subscriber lists are snapshotted under the lock by callers; the list
// is append-only, so iterating after release is safe.
func (source *StoreSource) dispatch(subscribers []chan Event, event Event) {
	for _, subscriber := range subscribers {
		select {
		case subscriber <- event:
		default:
			// Subscriber buffer full — drop the event. The UI pulls a
			// full snapshot on every refresh, so a dropped event only
			// delays the re-render until the next one.
		}
	}
}
