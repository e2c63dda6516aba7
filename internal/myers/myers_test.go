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

import (
	"strings"
	"testing"
)

func script(before, after []Token, removed, added []bool) string {
	var sb strings.Builder
	i, j := 0, 0
	for i < len(before) || j < len(after) {
		switch {
		case i < len(before) && removed[i]:
			sb.WriteByte('D')
			i++
		case j < len(after) && added[j]:
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

func toks(s string) []Token {
	out := make([]Token, len(s))
	for i, c := range []byte(s) {
		out[i] = Token(c)
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		before, after string
		want        string
	}{
		{name: "identical", before: "abc", after: "abc", want: "MMM"},
		{name: "empty", before: "", after: "", want: ""},
		{name: "before-empty", before: "", after: "abc", want: "III"},
		{name: "after-empty", before: "abc", after: "", want: "DDD"},
		{name: "classic", before: "ABCABBA", after: "CBABAC", want: "DDMDMIMMI"},
		{name: "common-prefix", before: "foobar", after: "foobaz", want: "MMMMMDI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := toks(tt.before), toks(tt.after)
			removed, added := Diff(before, after, true)
			if got := script(before, after, removed, added); got != tt.want {
				t.Errorf("Diff(%q, %q) script = %q, want %q", tt.before, tt.after, got, tt.want)
			}
		})
	}
}

func TestDiff_MinimalVsHeuristicEditCount(t *testing.T) {
	before := toks(strings.Repeat("a", 300))
	after := toks(strings.Repeat("a", 140) + "bbbbb" + strings.Repeat("a", 160))

	minRemoved, minAdded := Diff(before, after, true)
	heurRemoved, heurAdded := Diff(before, after, false)

	minEdits := countTrue(minRemoved) + countTrue(minAdded)
	heurEdits := countTrue(heurRemoved) + countTrue(heurAdded)
	if minEdits > heurEdits {
		t.Errorf("minimal found %d edits, heuristic found %d: minimal must never exceed heuristic", minEdits, heurEdits)
	}
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
