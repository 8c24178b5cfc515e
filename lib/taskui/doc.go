// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// Package taskui implements the terminal user interface for the
// tickmark to-do list. Built on bubbletea (Elm architecture), it
// renders the current task list as a single scrollable pane with a
// draft input bar, connected to the task store via the [Source]
// interface.
//
// The view owns no task data. Every render is a projection of the
// latest snapshot pulled from the source; user gestures map to source
// mutation calls, and each mutation dispatches an event back through
// the subscribe channel, triggering a snapshot refresh.
//
// Data flow:
//
//	[task.Store]
//	     | (Source interface)
//	 [Model] <- bubbletea event loop
//	     |
//	[terminal output]
package taskui
