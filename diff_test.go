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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// script renders a Diff as a string of M (matched), D (deleted from
// before), I (inserted into after) in before/after order, the same
// shorthand this module's teacher uses for its own Myers tests.
func script(t *testing.T, d Diff, beforeLen, afterLen int) string {
	t.Helper()
	var sb strings.Builder
	i, j := 0, 0
	for i < beforeLen || j < afterLen {
		switch {
		case i < beforeLen && d.IsRemoved(i):
			sb.WriteByte('D')
			i++
		case j < afterLen && d.IsAdded(j):
			sb.WriteByte('I')
			j++
		default:
			sb.WriteByte('M')
			i++
			j++
		}
	}
	return sb.String()
}

func computeAll(t *testing.T, before, after []string) map[Algorithm]Diff {
	t.Helper()
	out := make(map[Algorithm]Diff)
	for _, alg := range []Algorithm{Histogram, Myers, MyersMinimal} {
		in, err := NewInput[string](stringSource(before), stringSource(after))
		if err != nil {
			t.Fatalf("NewInput: %v", err)
		}
		d, err := Compute(in, WithAlgorithm(alg))
		if err != nil {
			t.Fatalf("Compute(%v): %v", alg, err)
		}
		out[alg] = d
	}
	return out
}

type stringSource []string

func (s stringSource) Tokenize() []string { return s }
func (s stringSource) EstimateTokens() int { return len(s) }

func TestCompute_Identical(t *testing.T) {
	lines := []string{"foo", "bar", "baz", "qux"}
	for alg, d := range computeAll(t, lines, lines) {
		if d.CountRemovals() != 0 || d.CountAdditions() != 0 {
			t.Errorf("%v: identical input produced a non-empty diff: %d removals, %d additions", alg, d.CountRemovals(), d.CountAdditions())
		}
		n := 0
		for range d.Hunks() {
			n++
		}
		if n != 0 {
			t.Errorf("%v: identical input produced %d hunks, want 0", alg, n)
		}
	}
}

func TestCompute_PureInsertAndDelete(t *testing.T) {
	before := []string{"a", "b", "c"}
	after := []string{"a", "b", "c", "d", "e"}
	for alg, d := range computeAll(t, before, after) {
		if got, want := d.CountRemovals(), 0; got != want {
			t.Errorf("%v: CountRemovals() = %d, want %d", alg, got, want)
		}
		if got, want := d.CountAdditions(), 2; got != want {
			t.Errorf("%v: CountAdditions() = %d, want %d", alg, got, want)
		}
	}

	for alg, d := range computeAll(t, after, before) {
		if got, want := d.CountRemovals(), 2; got != want {
			t.Errorf("%v: CountRemovals() = %d, want %d", alg, got, want)
		}
		if got, want := d.CountAdditions(), 0; got != want {
			t.Errorf("%v: CountAdditions() = %d, want %d", alg, got, want)
		}
	}
}

// TestCompute_MyersEvenOddRegression inserts one token into runs of n
// identical tokens, for both even and odd n, and checks that MyersMinimal
// reports exactly one addition and no removal. The common prefix/suffix
// strip reduces each of these inputs to a pure insertion, so the
// middle-snake search itself is not entered here.
func TestCompute_MyersEvenOddRegression(t *testing.T) {
	for n := 1; n <= 12; n++ {
		before := make([]string, n)
		after := make([]string, n+1)
		for i := range before {
			before[i] = "same"
		}
		for i := range after {
			after[i] = "same"
		}
		after[n/2] = "inserted"

		in, err := NewInput[string](stringSource(before), stringSource(after))
		if err != nil {
			t.Fatalf("n=%d: NewInput: %v", n, err)
		}
		d, err := Compute(in, WithAlgorithm(MyersMinimal))
		if err != nil {
			t.Fatalf("n=%d: Compute: %v", n, err)
		}
		if got, want := d.CountAdditions(), 1; got != want {
			t.Errorf("n=%d: CountAdditions() = %d, want %d", n, got, want)
		}
		if got, want := d.CountRemovals(), 0; got != want {
			t.Errorf("n=%d: CountRemovals() = %d, want %d", n, got, want)
		}
	}
}

// TestCompute_MyersMinimalIsMinimal checks that disabling the cost-limiting
// heuristics never produces more edits than leaving them enabled, on a
// highly repetitive input. The common prefix/suffix strip reduces this input
// to a pure insertion, so both modes finish without reaching the heuristics.
func TestCompute_MyersMinimalIsMinimal(t *testing.T) {
	before := strings.Split(strings.Repeat("a", 200), "")
	after := strings.Split(strings.Repeat("a", 150)+"b"+strings.Repeat("a", 100), "")

	in, err := NewInput[string](stringSource(before), stringSource(after))
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}

	minimal, err := Compute(in, WithAlgorithm(MyersMinimal))
	if err != nil {
		t.Fatalf("Compute(MyersMinimal): %v", err)
	}
	heuristic, err := Compute(in, WithAlgorithm(Myers))
	if err != nil {
		t.Fatalf("Compute(Myers): %v", err)
	}

	minimalEdits := minimal.CountRemovals() + minimal.CountAdditions()
	heuristicEdits := heuristic.CountRemovals() + heuristic.CountAdditions()
	if minimalEdits > heuristicEdits {
		t.Errorf("MyersMinimal found %d edits, Myers found %d: minimal should never find more", minimalEdits, heuristicEdits)
	}
}

// TestPostprocess_PreservesCounts checks that sliding hunks to their
// preferred position never changes how many tokens are marked changed on
// either side: the slider only repositions a hunk's boundary, it never
// changes the total edit distance.
func TestPostprocess_PreservesCounts(t *testing.T) {
	before := []string{"", "func f() {", "  x := 1", "", "  return x", "}", ""}
	after := []string{"", "func f() {", "", "  x := 1", "  return x", "}", ""}

	in, err := NewInput[string](stringSource(before), stringSource(after))
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	withIndent, err := Compute(in, IndentHeuristic(true))
	if err != nil {
		t.Fatalf("Compute(indent on): %v", err)
	}
	withoutIndent, err := Compute(in, IndentHeuristic(false))
	if err != nil {
		t.Fatalf("Compute(indent off): %v", err)
	}

	if withIndent.CountRemovals() != withoutIndent.CountRemovals() {
		t.Errorf("CountRemovals() differs between indent heuristic on/off: %d vs %d", withIndent.CountRemovals(), withoutIndent.CountRemovals())
	}
	if withIndent.CountAdditions() != withoutIndent.CountAdditions() {
		t.Errorf("CountAdditions() differs between indent heuristic on/off: %d vs %d", withIndent.CountAdditions(), withoutIndent.CountAdditions())
	}
}

func TestHunks_ExactRanges(t *testing.T) {
	before := []string{"a", "b", "c", "d"}
	after := []string{"a", "x", "c", "d"}

	in, err := NewInput[string](stringSource(before), stringSource(after))
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	d, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var got []Hunk
	for h := range d.Hunks() {
		got = append(got, h)
	}
	want := []Hunk{{BeforeStart: 1, BeforeEnd: 2, AfterStart: 1, AfterEnd: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Hunks() mismatch (-want +got):\n%s", diff)
	}
}

func TestHunks_MatchesPositionalView(t *testing.T) {
	before := []string{"a", "b", "c", "d", "e"}
	after := []string{"a", "x", "c", "y", "z", "e"}

	in, err := NewInput[string](stringSource(before), stringSource(after))
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	d, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	gotRemoved := make([]bool, len(before))
	gotAdded := make([]bool, len(after))
	for h := range d.Hunks() {
		for i := h.BeforeStart; i < h.BeforeEnd; i++ {
			gotRemoved[i] = true
		}
		for j := h.AfterStart; j < h.AfterEnd; j++ {
			gotAdded[j] = true
		}
	}
	for i := range before {
		if gotRemoved[i] != d.IsRemoved(i) {
			t.Errorf("before[%d]: Hunks() marked removed=%v, IsRemoved=%v", i, gotRemoved[i], d.IsRemoved(i))
		}
	}
	for j := range after {
		if gotAdded[j] != d.IsAdded(j) {
			t.Errorf("after[%d]: Hunks() marked added=%v, IsAdded=%v", j, gotAdded[j], d.IsAdded(j))
		}
	}
}
