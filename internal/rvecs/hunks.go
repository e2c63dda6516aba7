// Copyright 2026 The diffcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rvecs turns the positional removed/added bit vectors produced by
// the diff algorithms into an iterator over contiguous change regions.
//
// Unlike a unified-diff style hunk, a Hunk here carries no surrounding
// context: it spans exactly the changed tokens, with before/after ranges
// kept aligned the same way the postprocessing slide does.
package rvecs

import "iter"

// Hunk is one contiguous change region. Before and After are both
// half-open ranges; either may be empty (a pure insertion has an empty
// Before, a pure deletion an empty After), but not both.
type Hunk struct {
	BeforeStart, BeforeEnd int
	AfterStart, AfterEnd   int
}

// Hunks iterates over every change region in removed/added, in order.
func Hunks(removed, added []bool) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		var beforeEnd, afterEnd int
		for {
			h, ok := nextHunk(removed, added, beforeEnd, afterEnd)
			if !ok {
				return
			}
			beforeEnd, afterEnd = h.BeforeEnd, h.AfterEnd
			if !yield(h) {
				return
			}
		}
	}
}

// nextHunk finds the next change region reachable from (beforeEnd,
// afterEnd), the end of the previously yielded hunk (or the start of the
// sequences, both zero, for the first one).
func nextHunk(removed, added []bool, beforeEnd, afterEnd int) (Hunk, bool) {
	off, ok := findNextChange(added, afterEnd)
	offRemoved, okRemoved := findNextChange(removed, beforeEnd)
	if okRemoved && (!ok || offRemoved < off) {
		// A removal comes before the next addition: a pure deletion.
		beforeStart := beforeEnd + offRemoved
		afterStart := afterEnd + offRemoved
		return Hunk{
			BeforeStart: beforeStart,
			BeforeEnd:   findHunkEnd(removed, beforeStart),
			AfterStart:  afterStart,
			AfterEnd:    afterStart,
		}, true
	}
	if !ok {
		return Hunk{}, false
	}

	var beforeStart int
	offBefore := 0
	for {
		unchangedTokens, ok := findNextChange(removed, beforeEnd)
		if !ok {
			unchangedTokens = len(removed) - beforeEnd
		}
		if offBefore+unchangedTokens > off {
			beforeStart = beforeEnd + (off - offBefore)
			beforeEnd = beforeStart
			break
		}
		offBefore += unchangedTokens
		beforeStart = beforeEnd + unchangedTokens
		beforeEnd = findHunkEnd(removed, beforeEnd+unchangedTokens)
		if offBefore == off {
			break
		}
	}

	afterStart := afterEnd + off
	afterEnd = findHunkEnd(added, afterStart)

	return Hunk{
		BeforeStart: beforeStart,
		BeforeEnd:   beforeEnd,
		AfterStart:  afterStart,
		AfterEnd:    afterEnd,
	}, true
}

func findNextChange(changes []bool, pos int) (int, bool) {
	for i := pos; i < len(changes); i++ {
		if changes[i] {
			return i - pos, true
		}
	}
	return 0, false
}

func findHunkEnd(changes []bool, pos int) int {
	i := pos
	for i < len(changes) && changes[i] {
		i++
	}
	return i
}
