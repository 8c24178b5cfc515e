// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for fzf's scratch allocator, reused across the matches
// of one filter pass. Same values fzf itself uses.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// FuzzyResult holds the outcome of matching one string against a
// filter pattern: the fzf score (zero means no match) and the rune
// positions of the matched characters within the text.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// fuzzyMatch runs fzf's fuzzy matcher over text. Both sides are
// lowercased, so matching is case-insensitive. A nil slab is allowed
// for one-off matches; batch callers should share one.
func fuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	loweredPattern := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))

	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, loweredPattern, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = append(matched.Positions, *positions...)
		// fzf reports positions back-to-front.
		sort.Ints(matched.Positions)
	}
	return matched
}
