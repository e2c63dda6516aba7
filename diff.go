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

package diff

import (
	"diffcore.dev/diffcore/internal/config"
	"diffcore.dev/diffcore/internal/histogram"
	"diffcore.dev/diffcore/internal/myers"
	"diffcore.dev/diffcore/internal/slider"
)

// Diff is the result of comparing two interned token sequences: for every
// position in each side, whether that position was removed (for the first
// sequence) or added (for the second).
type Diff struct {
	removed []bool
	added   []bool
}

// Compute compares in.Before against in.After and returns their Diff.
func Compute[T comparable](in *InternedInput[T], opts ...Option) (Diff, error) {
	if err := checkLen("before", len(in.Before)); err != nil {
		return Diff{}, err
	}
	if err := checkLen("after", len(in.After)); err != nil {
		return Diff{}, err
	}

	cfg := config.FromOptions(opts, config.AlgorithmFlag|config.IndentHeuristicFlag)

	before := toUint32(in.Before)
	after := toUint32(in.After)

	var removed, added []bool
	switch cfg.Algorithm {
	case config.Myers:
		removed, added = myers.Diff(before, after, false)
	case config.MyersMinimal:
		removed, added = myers.Diff(before, after, true)
	default:
		removed, added = histogram.Diff(before, after, in.Interner.Len())
	}

	var heuristic slider.Heuristic = slider.NoOpHeuristic{}
	if cfg.IndentHeuristic {
		// The indent heuristic scores candidate hunk boundaries by the
		// indentation and blank-line structure of the surrounding
		// source text, which only makes sense when the tokens are
		// themselves lines of text. For any other token type it has
		// nothing to measure, so Compute silently falls back to
		// NoOpHeuristic rather than require every caller to plumb an
		// indent-of-token function through Option for types where it
		// would never apply.
		if strIn, ok := any(in).(*InternedInput[string]); ok {
			heuristic = slider.NewIndentHeuristic(lookupAll(strIn.Interner, strIn.Before), lookupAll(strIn.Interner, strIn.After))
		}
	}
	slider.Postprocess(removed, added, before, after, heuristic)

	return Diff{removed: removed, added: added}, nil
}

// IsRemoved reports whether the token at position i of the first sequence
// was removed.
func (d Diff) IsRemoved(i int) bool { return d.removed[i] }

// IsAdded reports whether the token at position i of the second sequence
// was added.
func (d Diff) IsAdded(i int) bool { return d.added[i] }

// CountRemovals returns the number of positions marked removed.
func (d Diff) CountRemovals() int { return count(d.removed) }

// CountAdditions returns the number of positions marked added.
func (d Diff) CountAdditions() int { return count(d.added) }

func count(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

func toUint32(toks []Token) []uint32 {
	out := make([]uint32, len(toks))
	for i, t := range toks {
		out[i] = uint32(t)
	}
	return out
}

func lookupAll(in *Interner[string], toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = in.Lookup(t)
	}
	return out
}
