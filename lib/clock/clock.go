// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock parameter instead of calling
// time.Now directly. Real() provides standard library behavior; tests
// inject Fake() and advance it explicitly, making every timestamp in
// the store deterministic.
package clock

import "time"

// Clock abstracts the current time. Every production function that
// stamps a timestamp should accept a Clock (or be a method on a struct
// with a Clock field) instead of calling time.Now directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// realClock delegates to the time package.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a Clock backed by the standard library.
func Real() Clock { return realClock{} }
