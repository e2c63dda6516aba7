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

package histogram

import "diffcore.dev/diffcore/internal/listpool"

// lcsRange is a common run of tokens found in both before and after, chosen
// to minimize rarity (the smallest occurrence count of any token along the
// run) first and to maximize length second.
type lcsRange struct {
	beforeStart, afterStart, length uint32
}

// findLCS scans after left to right, and for every token that also occurs
// in before, extends the match both directions as far as it will go,
// tracking the best (rarest, then longest) run seen. It reports ok=false
// if a common token was found but even the best run contains no token that
// occurs at most listpool.MaxChainLen times in before: at that point the
// occurrence lists involved have overflowed and the caller should fall back
// to a different algorithm rather than pay for scanning a chain that was
// silently truncated.
func findLCS(before, after []Token, s *state) (lcsRange, bool) {
	search := lcsSearch{minOccurrences: listpool.MaxChainLen + 1}
	search.run(before, after, s)
	return search.lcs, !search.foundCS || search.minOccurrences <= listpool.MaxChainLen
}

type lcsSearch struct {
	lcs            lcsRange
	minOccurrences uint32
	foundCS        bool
}

func (search *lcsSearch) run(before, after []Token, s *state) {
	pos := uint32(0)
	for int(pos) < len(after) {
		tok := after[pos]
		if s.numOccurrencesOf(tok) != 0 {
			search.foundCS = true
			if s.numOccurrencesOf(tok) <= search.minOccurrences {
				pos = search.updateLCS(pos, tok, s, before, after)
				continue
			}
		}
		pos++
	}
	s.pool.Clear()
}

func (search *lcsSearch) updateLCS(afterPos uint32, tok Token, s *state, before, after []Token) uint32 {
	nextAfterPos := afterPos + 1
	occ := s.occurrencesOf(tok)
	tokenIdx1 := occ[0]
	occIdx := 1

occurrences:
	for {
		occurrences := s.numOccurrencesOf(tok)
		start1, start2 := tokenIdx1, afterPos
		for start1 != 0 && start2 != 0 {
			if before[start1-1] != after[start2-1] {
				break
			}
			start1--
			start2--
			occurrences = min(occurrences, s.numOccurrencesOf(before[start1]))
		}

		end1, end2 := tokenIdx1+1, afterPos+1
		for int(end1) < len(before) && int(end2) < len(after) && before[end1] == after[end2] {
			occurrences = min(occurrences, s.numOccurrencesOf(before[end1]))
			end1++
			end2++
		}

		if nextAfterPos < end2 {
			nextAfterPos = end2
		}

		length := end2 - start2
		if search.lcs.length < length || search.minOccurrences > occurrences {
			search.minOccurrences = occurrences
			search.lcs = lcsRange{beforeStart: start1, afterStart: start2, length: length}
		}

		for {
			if occIdx >= len(occ) {
				break occurrences
			}
			next := occ[occIdx]
			occIdx++
			if next > end2 {
				tokenIdx1 = next
				continue occurrences
			}
		}
	}

	return nextAfterPos
}
