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

package slider

import "testing"

func TestIndentLevelOf(t *testing.T) {
	tests := []struct {
		line string
		want indentLevel
	}{
		{"", indentBlank},
		{"   ", indentBlank},
		{"\t", indentBlank},
		{"    x", 4},
		{"\tx", tabWidth},
		{"\t\tx", 2 * tabWidth},
		{"  \tx", tabWidth}, // two spaces then a tab rounds up to the next stop
	}
	for _, tt := range tests {
		if got := indentLevelOf(tt.line); got != tt.want {
			t.Errorf("indentLevelOf(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestIndentLevelOf_CapsAtMax(t *testing.T) {
	line := ""
	for i := 0; i < 300; i++ {
		line += " "
	}
	line += "x"
	if got := indentLevelOf(line); got != indentMax {
		t.Errorf("indentLevelOf(300 spaces) = %d, want capped at %d", got, indentMax)
	}
}

func TestScore_IsImprovementOver(t *testing.T) {
	tests := []struct {
		name string
		s, prev score
		want bool
	}{
		{"lower indent wins at equal penalty", score{indent: 1, penalty: 0}, score{indent: 2, penalty: 0}, true},
		{"higher indent loses at equal penalty", score{indent: 2, penalty: 0}, score{indent: 1, penalty: 0}, false},
		{"same indent, lower penalty wins", score{indent: 1, penalty: 0}, score{indent: 1, penalty: 1}, true},
		{"same indent, higher penalty loses", score{indent: 1, penalty: 1}, score{indent: 1, penalty: 0}, false},
		{"identical is an improvement (<=0)", score{indent: 1, penalty: 0}, score{indent: 1, penalty: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.isImprovementOver(tt.prev); got != tt.want {
				t.Errorf("isImprovementOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIndentHeuristic_PrefersTrailingOverLeadingBlankLine hand-verifies an
// ambiguous one-line hunk next to two blank lines between two indented
// statements: the hunk end can rest at 2 (just before the first blank line)
// or at 3 (just after it). score() gives the range [2,3), which starts and
// ends on blank lines, a lower penalty than [1,2), so the later boundary
// wins.
func TestIndentHeuristic_PrefersTrailingOverLeadingBlankLine(t *testing.T) {
	lines := []string{
		"func f() {", // 0: indent 0
		"    a()",    // 1: indent 4
		"",           // 2: blank
		"",           // 3: blank
		"    b()",    // 4: indent 4
		"}",          // 5: indent 0
	}
	h := NewIndentHeuristic(nil, lines)

	got := h.BestSliderEnd(true, 2, 3, 2)
	if got != 3 {
		t.Errorf("BestSliderEnd(true, 2, 3, 2) = %d, want 3", got)
	}
}
