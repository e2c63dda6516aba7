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

// Package histogram implements a patience-diff-style histogram algorithm:
// it picks the rarest token shared between the two sides as a pivot,
// extends it into the longest common run it anchors, and recurses on the
// partitions to either side of that run.
//
// Occurrence positions are tracked with internal/listpool rather than a
// plain slice per token, so a diff over N tokens needs only O(N) backing
// storage across the whole recursion instead of one small allocation per
// distinct token. If a pivot search finds common tokens but even the rarest
// run it finds has no token occurring at most listpool.MaxChainLen times,
// the affected region is diffed with internal/myers instead: without this
// fallback, a file that is mostly repeats of one token degrades to quadratic
// behavior.
package histogram

import (
	"diffcore.dev/diffcore/internal/listpool"
	"diffcore.dev/diffcore/internal/myers"
)

// Token is the interned token type this package operates on, kept separate
// from the root package's type to avoid an import cycle; see
// internal/myers.Token for the same rationale.
type Token = uint32

type state struct {
	occurrences []listpool.Handle
	pool        *listpool.Pool
}

func newState(numTokens int) *state {
	return &state{
		occurrences: make([]listpool.Handle, numTokens),
		pool:        listpool.New(2 * numTokens),
	}
}

func (s *state) occurrencesOf(tok Token) []uint32 {
	return s.occurrences[tok].Slice(s.pool)
}

func (s *state) numOccurrencesOf(tok Token) uint32 {
	return s.occurrences[tok].Len(s.pool)
}

func (s *state) populate(file []Token) {
	for i, tok := range file {
		h := s.occurrences[tok]
		h.Push(uint32(i), s.pool)
		s.occurrences[tok] = h
	}
}

// Diff computes which tokens of before and after were changed, using the
// histogram algorithm. numTokens must be at least as large as the largest
// token id that occurs in before or after, plus one. The returned slices
// have the same length as before and after respectively.
func Diff(before, after []Token, numTokens int) (removed, added []bool) {
	removed = make([]bool, len(before))
	added = make([]bool, len(after))

	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}
	b, a := before[prefix:], after[prefix:]
	postfix := 0
	for postfix < len(b) && postfix < len(a) && b[len(b)-1-postfix] == a[len(a)-1-postfix] {
		postfix++
	}
	b = b[:len(b)-postfix]
	a = a[:len(a)-postfix]

	s := newState(numTokens)
	s.run(b, prefix, a, prefix, removed, added)
	return removed, added
}

func (s *state) run(before []Token, beforeOff int, after []Token, afterOff int, removed, added []bool) {
	for {
		if len(before) == 0 {
			for j := range after {
				added[afterOff+j] = true
			}
			return
		}
		if len(after) == 0 {
			for i := range before {
				removed[beforeOff+i] = true
			}
			return
		}

		s.populate(before)
		lcs, ok := findLCS(before, after, s)
		switch {
		case ok && lcs.length == 0:
			// No token in after occurs anywhere in before: the two
			// sides have nothing in common left in this range.
			for i := range before {
				removed[beforeOff+i] = true
			}
			for j := range after {
				added[afterOff+j] = true
			}
			return
		case ok:
			s.run(before[:lcs.beforeStart], beforeOff, after[:lcs.afterStart], afterOff, removed, added)

			beforeEnd := lcs.beforeStart + lcs.length
			before = before[beforeEnd:]
			beforeOff += int(beforeEnd)

			afterEnd := lcs.afterStart + lcs.length
			after = after[afterEnd:]
			afterOff += int(afterEnd)
		default:
			// A pivot's occurrence chain overflowed MaxChainLen:
			// this region is pathologically repetitive. Fall back to
			// Myers, which stays linear in space regardless.
			mRemoved, mAdded := myers.Diff(before, after, false)
			for i, changed := range mRemoved {
				if changed {
					removed[beforeOff+i] = true
				}
			}
			for j, changed := range mAdded {
				if changed {
					added[afterOff+j] = true
				}
			}
			return
		}
	}
}
