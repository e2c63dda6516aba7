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

package myers

import "math"

// snakeCnt is the minimum length of a diagonal run before it is considered
// a candidate "good" snake for the found-snake heuristic.
const snakeCnt = 20

// kHeur scales the edit-cost budget ec when deciding whether a candidate
// snake found by found_snake is interesting enough to stop early on.
const kHeur = 4

// searchResult is the outcome of scanning every diagonal once in
// middleSnakeSearch.run.
type searchResultKind uint8

const (
	searchNone searchResultKind = iota
	searchSnake
	searchFound
)

type searchResult struct {
	kind               searchResultKind
	tokenIdx1, tokenIdx2 int32
}

// middleSnakeSearch is one direction (forward or backward) of the
// bidirectional middle-snake search used to split a Myers comparison in
// two. It tracks the furthest-reaching end point of every d-path on every
// diagonal k it has searched so far, in a flat array indexed by k+v0.
//
// This mirrors the raw-pointer-indexed array in the algorithm this package
// is ported from; Go's bounds-checked slices make the same indexing safe by
// keeping an explicit v0 offset instead of pointer arithmetic, the same
// idiom this module's teacher uses for its own Myers implementation.
type middleSnakeSearch struct {
	back bool
	kvec []int32
	v0   int32
	kmin, kmax int32
	dmin, dmax int32
}

func newMiddleSnakeSearch(back bool, kvec []int32, v0 int32, file1, file2 fileSlice) middleSnakeSearch {
	dmin := -file2.len()
	dmax := file1.len()
	kmid := int32(0)
	if back {
		kmid = dmin + dmax
	}
	s := middleSnakeSearch{
		back: back,
		kvec: kvec,
		v0:   v0,
		kmin: kmid,
		kmax: kmid,
		dmin: dmin,
		dmax: dmax,
	}
	init := int32(0)
	if back {
		init = file1.len()
	}
	s.writeXPosAtDiagonal(kmid, init)
	return s
}

func (s *middleSnakeSearch) writeXPosAtDiagonal(k, tokenIdx1 int32) {
	s.kvec[s.v0+k] = tokenIdx1
}

func (s *middleSnakeSearch) xPosAtDiagonal(k int32) int32 {
	return s.kvec[s.v0+k]
}

func (s *middleSnakeSearch) posAtDiagonal(k int32) (int32, int32) {
	tokenIdx1 := s.xPosAtDiagonal(k)
	return tokenIdx1, tokenIdx1 - k
}

func (s *middleSnakeSearch) contains(k int32) bool {
	return k >= s.kmin && k <= s.kmax
}

// nextD extends the diagonal window searched by one more d value, the safe
// equivalent of the original's pointer-based initialization of the newly
// exposed boundary diagonals.
func (s *middleSnakeSearch) nextD() {
	var initVal int32
	if s.back {
		initVal = math.MaxInt32
	} else {
		initVal = math.MinInt32
	}

	if s.kmin > s.dmin {
		s.kmin--
		s.writeXPosAtDiagonal(s.kmin-1, initVal)
	} else {
		s.kmin++
	}
	if s.kmax < s.dmax {
		s.kmax++
		s.writeXPosAtDiagonal(s.kmax+1, initVal)
	} else {
		s.kmax--
	}
}

// run scans every diagonal in [kmin, kmax] once, extending each furthest
// reaching point by as long a snake as possible, and calls f after updating
// each diagonal to check for overlap with the opposing search direction.
// It reports whether any diagonal crossed snakeCnt (searchSnake) or f
// returned true (searchFound, with the endpoint).
func (s *middleSnakeSearch) run(file1, file2 fileSlice, f func(k, tokenIdx1 int32) bool) searchResult {
	res := searchResult{kind: searchNone}
	for k := s.kmax; k >= s.kmin; k -= 2 {
		var tokenIdx1 int32
		if s.back {
			if s.xPosAtDiagonal(k-1) < s.xPosAtDiagonal(k+1) {
				tokenIdx1 = s.xPosAtDiagonal(k - 1)
			} else {
				tokenIdx1 = s.xPosAtDiagonal(k+1) - 1
			}
		} else {
			if s.xPosAtDiagonal(k-1) >= s.xPosAtDiagonal(k+1) {
				tokenIdx1 = s.xPosAtDiagonal(k-1) + 1
			} else {
				tokenIdx1 = s.xPosAtDiagonal(k + 1)
			}
		}
		tokenIdx2 := tokenIdx1 - k

		var off int32
		if s.back {
			if tokenIdx1 > 0 && tokenIdx2 > 0 {
				off = commonPostfix(file1.tokens[:tokenIdx1], file2.tokens[:tokenIdx2])
			}
		} else {
			if tokenIdx1 < file1.len() && tokenIdx2 < file2.len() {
				off = commonPrefix(file1.tokens[tokenIdx1:], file2.tokens[tokenIdx2:])
			}
		}

		if off > snakeCnt {
			res = searchResult{kind: searchSnake}
		}

		if s.back {
			tokenIdx1 -= off
			tokenIdx2 -= off
		} else {
			tokenIdx1 += off
			tokenIdx2 += off
		}
		s.writeXPosAtDiagonal(k, tokenIdx1)

		if f(k, tokenIdx1) {
			return searchResult{kind: searchFound, tokenIdx1: tokenIdx1, tokenIdx2: tokenIdx2}
		}
	}
	return res
}

// bestPosition returns the furthest-reaching diagonal's point as its
// tokenIdx1+tokenIdx2 sum (measured from the start in both directions: the
// largest sum for a forward search, the smallest for a backward one) and its
// tokenIdx1, used as a fallback split point when the cost limit is exceeded
// without an exact overlap.
func (s *middleSnakeSearch) bestPosition(file1, file2 fileSlice) (int64, int32) {
	var bestDistance int64
	var bestTokenIdx1 int32
	if s.back {
		bestDistance = math.MaxInt64
		bestTokenIdx1 = math.MaxInt32
	} else {
		bestDistance = -1
		bestTokenIdx1 = -1
	}

	for k := s.kmax; k >= s.kmin; k -= 2 {
		tokenIdx1 := s.xPosAtDiagonal(k)
		if s.back {
			tokenIdx1 = max(tokenIdx1, 0)
		} else {
			tokenIdx1 = min(tokenIdx1, file1.len())
		}
		tokenIdx2 := tokenIdx1 - k
		if s.back {
			if tokenIdx2 < 0 {
				tokenIdx1 = k
				tokenIdx2 = 0
			}
		} else if tokenIdx2 > file2.len() {
			tokenIdx1 = file2.len() + k
			tokenIdx2 = file2.len()
		}

		distance := int64(tokenIdx1) + int64(tokenIdx2)
		if (s.back && distance < bestDistance) || (!s.back && distance > bestDistance) {
			bestDistance = distance
			bestTokenIdx1 = tokenIdx1
		}
	}
	return bestDistance, bestTokenIdx1
}

// foundSnake implements the K_HEUR heuristic: among diagonals that have
// reached far enough from the starting corner to be "interesting" relative
// to the edit cost ec spent so far, pick the one with the best score and
// verify it actually carries a snake of at least snakeCnt matching tokens.
func (s *middleSnakeSearch) foundSnake(ec int32, file1, file2 fileSlice) (int32, int32, bool) {
	var bestScore int64
	var bestTokenIdx1, bestTokenIdx2 int32

	for k := s.kmax; k >= s.kmin; k -= 2 {
		tokenIdx1, tokenIdx2 := s.posAtDiagonal(k)
		if s.back {
			if !(tokenIdx1 >= 0 && tokenIdx1 < file1.len()-snakeCnt) {
				continue
			}
			if !(tokenIdx2 >= 0 && tokenIdx2 < file2.len()-snakeCnt) {
				continue
			}
		} else {
			if !(tokenIdx1 >= snakeCnt && tokenIdx1 < file1.len()) {
				continue
			}
			if !(tokenIdx2 >= snakeCnt && tokenIdx2 < file2.len()) {
				continue
			}
		}

		mainDiagonalDistance := int64(abs32(k))
		var distance int64
		if s.back {
			distance = int64(file1.len()-tokenIdx1) + int64(file2.len()-tokenIdx2)
		} else {
			distance = int64(tokenIdx1) + int64(tokenIdx2)
		}
		score := distance + mainDiagonalDistance
		if score > int64(kHeur)*int64(ec) && score > bestScore {
			isSnake := true
			if s.back {
				for i := int32(0); i < snakeCnt; i++ {
					t1, t2 := tokenIdx1+i, tokenIdx2+i
					if t1 >= file1.len() || t2 >= file2.len() || file1.tokens[t1] != file2.tokens[t2] {
						isSnake = false
						break
					}
				}
			} else {
				for i := int32(0); i < snakeCnt; i++ {
					t1, t2 := tokenIdx1-1-i, tokenIdx2-1-i
					if t1 < 0 || t2 < 0 || file1.tokens[t1] != file2.tokens[t2] {
						isSnake = false
						break
					}
				}
			}
			if isSnake {
				bestTokenIdx1 = tokenIdx1
				bestTokenIdx2 = tokenIdx2
				bestScore = score
			}
		}
	}

	return bestTokenIdx1, bestTokenIdx2, bestScore > 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func commonPrefix(a, b []Token) int32 {
	var n int32
	for int(n) < len(a) && int(n) < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonPostfix(a, b []Token) int32 {
	var n int32
	for int(n) < len(a) && int(n) < len(b) && a[len(a)-1-int(n)] == b[len(b)-1-int(n)] {
		n++
	}
	return n
}
