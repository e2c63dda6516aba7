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

// Package myers implements Myers' O((N+M)D) linear-space difference
// algorithm, with a preprocessing pass that prunes tokens unique to one
// side before the search even starts, and two heuristics that bound the
// cost of pathological inputs: a hard cost limit (max_cost) that falls back
// to the furthest-reaching diagonal once the edit distance exceeds a
// sqrt(diagonals)-scaled budget, and a K_HEUR heuristic that accepts a
// "good enough" long snake early when the true cost is still climbing.
//
// Disabling both heuristics (the "minimal" mode) always finds a path of
// minimal edit distance, at the cost of potentially quadratic runtime on
// adversarial input.
package myers

// heurMinCost is the edit-cost threshold below which the K_HEUR snake
// heuristic is not even attempted: for cheap diffs it isn't worth the
// extra diagonal scan.
const heurMinCost = 256

// maxCostMin is a floor for the max_cost heuristic so that small inputs
// never trigger it spuriously.
const maxCostMin = 256

// Diff computes which tokens of before and after were changed using Myers'
// algorithm. The returned slices have the same length as before and after
// respectively; removed[i] is true if before[i] was deleted and added[j] is
// true if after[j] was inserted. minimal disables both cost-limiting
// heuristics.
func Diff(before, after []Token, minimal bool) (removed, added []bool) {
	removed = make([]bool, len(before))
	added = make([]bool, len(after))

	pre1, pre2 := preprocess(before, after)

	e := newEngine(len(pre1.tokens), len(pre2.tokens))
	f1, f2 := newFileSlice(&pre1), newFileSlice(&pre2)
	e.run(f1, f2, minimal)

	for i, changed := range pre1.isChanged {
		if changed {
			removed[pre1.offset+i] = true
		}
	}
	for i, changed := range pre2.isChanged {
		if changed {
			added[pre2.offset+i] = true
		}
	}
	return removed, added
}

type engine struct {
	kforward, kbackward []int32
	v0                  int32
	maxCost             int32
}

func newEngine(len1, len2 int) *engine {
	ndiags := len1 + len2 + 3
	return &engine{
		kforward:  make([]int32, ndiags),
		kbackward: make([]int32, ndiags),
		v0:        int32(len2 + 1),
		maxCost:   max(int32(sqrtUint(ndiags)), maxCostMin),
	}
}

func (e *engine) run(file1, file2 fileSlice, needMin bool) {
	for {
		stripCommon(&file1, &file2)

		if file1.isEmpty() {
			file2.markChanged()
			return
		}
		if file2.isEmpty() {
			file1.markChanged()
			return
		}

		split := e.split(file1, file2, needMin)
		e.run(file1.slice(0, split.tokenIdx1), file2.slice(0, split.tokenIdx2), split.minimizedLo)

		file1 = file1.slice(split.tokenIdx1, file1.len())
		file2 = file2.slice(split.tokenIdx2, file2.len())
		needMin = split.minimizedHi
	}
}

type split struct {
	tokenIdx1, tokenIdx2   int32
	minimizedLo, minimizedHi bool
}

// split finds the endpoints of a (possibly empty) sequence of diagonals in
// the middle of an optimal path from the start to the end of file1/file2,
// using a bidirectional search that alternates a forward pass from the
// start and a backward pass from the end until their reached diagonals
// overlap.
func (e *engine) split(file1, file2 fileSlice, needMin bool) split {
	forward := newMiddleSnakeSearch(false, e.kforward, e.v0, file1, file2)
	backward := newMiddleSnakeSearch(true, e.kbackward, e.v0, file1, file2)

	odd := (file1.len()-file2.len())&1 != 0

	var ec int32
	for ; needMin || ec <= e.maxCost; ec++ {
		foundSnake := false

		forward.nextD()
		if odd {
			res := forward.run(file1, file2, func(k, tokenIdx1 int32) bool {
				return backward.contains(k) && backward.xPosAtDiagonal(k) <= tokenIdx1
			})
			switch res.kind {
			case searchSnake:
				foundSnake = true
			case searchFound:
				return split{res.tokenIdx1, res.tokenIdx2, true, true}
			}
		} else {
			res := forward.run(file1, file2, func(int32, int32) bool { return false })
			foundSnake = foundSnake || res.kind == searchSnake
		}

		backward.nextD()
		if !odd {
			res := backward.run(file1, file2, func(k, tokenIdx1 int32) bool {
				return forward.contains(k) && tokenIdx1 <= forward.xPosAtDiagonal(k)
			})
			switch res.kind {
			case searchSnake:
				foundSnake = true
			case searchFound:
				return split{res.tokenIdx1, res.tokenIdx2, true, true}
			}
		} else {
			res := backward.run(file1, file2, func(int32, int32) bool { return false })
			foundSnake = foundSnake || res.kind == searchSnake
		}

		if needMin {
			continue
		}

		// K_HEUR: once the edit cost climbs past heurMinCost and some
		// diagonal has produced a long snake, check whether a diagonal
		// has reached a point "interesting" enough (far from its own
		// origin relative to the cost spent) to accept as a split
		// early rather than search for an exact overlap.
		if foundSnake && ec > heurMinCost {
			if t1, t2, ok := forward.foundSnake(ec, file1, file2); ok {
				return split{t1, t2, true, false}
			}
			if t1, t2, ok := backward.foundSnake(ec, file1, file2); ok {
				return split{t1, t2, false, true}
			}
		}
	}

	// max_cost exceeded without an exact overlap: fall back to the
	// furthest-reaching diagonal of whichever direction got closer to
	// the opposite corner.
	distForward, idxForward := forward.bestPosition(file1, file2)
	distBackward, idxBackward := backward.bestPosition(file1, file2)
	total := int64(file1.len()) + int64(file2.len())
	if distForward > total-distBackward {
		return split{idxForward, int32(distForward - int64(idxForward)), true, false}
	}
	return split{idxBackward, int32(distBackward - int64(idxBackward)), false, true}
}
