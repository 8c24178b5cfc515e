// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// Package task implements the in-memory task store that owns all
// to-do state for the lifetime of the screen.
//
// The store is an ordered, insertion-order-preserving sequence of
// tasks. Tasks are created by [Store.Add], flipped between open and
// done by [Store.Toggle], and removed by [Store.Delete]. There is no
// edit operation: text and ID are immutable for a task's entire life.
//
// Invalid input never errors. Blank text on Add and unknown IDs on
// Toggle/Delete are silent no-ops — every operation is a total,
// in-memory transition. Lookup is a linear scan over the ordered
// slice; the list is human-entered and tops out at tens of items.
//
// The store is not safe for concurrent use. The UI wraps it in a
// mutex-guarded source (see the taskui package) that also dispatches
// change events to subscribers.
package task
