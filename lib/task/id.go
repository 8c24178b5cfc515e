// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// idPrefix is the fixed prefix of every generated task ID. The short
// form shows up in the ID column of the list, so it stays terse.
const idPrefix = "task"

// generateID produces a unique task ID by hashing the creation
// timestamp, a per-store sequence number, and the text, then
// truncating to the shortest prefix that avoids collision with IDs
// already in use. The taken set contains every ID ever issued by the
// store, so IDs are never reused even after the original task is
// deleted.
//
// The sequence number makes the hash input distinct for every add,
// including identical text added repeatedly at the same instant.
// Without it, repeated same-hash adds would walk through prefix
// lengths one per add and the full-hash fallback below could return
// an ID that was already issued.
func generateID(taken map[string]struct{}, timestamp string, sequence uint64, text string) string {
	input := fmt.Sprintf("%s\n%d\n%s", timestamp, sequence, text)
	hash := sha256.Sum256([]byte(input))
	hexHash := hex.EncodeToString(hash[:])

	for length := 4; length <= len(hexHash); length++ {
		candidate := idPrefix + "-" + hexHash[:length]
		if _, exists := taken[candidate]; exists {
			continue
		}
		return candidate
	}
	// Reaching here requires every prefix of this hash, including the
	// full 64 chars, to collide with a previously issued ID. Distinct
	// hash inputs per add make that a sha256 collision, not something
	// a user can trigger.
	return idPrefix + "-" + hexHash
}
