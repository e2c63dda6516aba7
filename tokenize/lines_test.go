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

package tokenize

import (
	"slices"
	"strings"
	"testing"
)

func TestLines_Tokenize(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{name: "empty", data: "", want: nil},
		{name: "no-trailing-newline", data: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing-newline", data: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", data: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank-lines", data: "\n\na\n", want: []string{"", "", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLines(tt.data).Tokenize()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinesWithTerminator_Tokenize(t *testing.T) {
	got := NewLinesWithTerminator("a\nb\n").Tokenize()
	want := []string{"a\n", "b\n"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize() = %q, want %q", got, want)
	}
}

func TestLinesWithTerminator_DetectsTerminatorChange(t *testing.T) {
	a := NewLines("a\nb\n").Tokenize()
	b := NewLines("a\r\nb\r\n").Tokenize()
	if !slices.Equal(a, b) {
		t.Errorf("Lines should be blind to terminator style: %q vs %q", a, b)
	}

	at := NewLinesWithTerminator("a\nb\n").Tokenize()
	bt := NewLinesWithTerminator("a\r\nb\r\n").Tokenize()
	if slices.Equal(at, bt) {
		t.Errorf("LinesWithTerminator should distinguish terminator style, both gave %q", at)
	}
}

func TestLines_EstimateTokens(t *testing.T) {
	if got := NewLines("").EstimateTokens(); got <= 0 {
		t.Errorf("EstimateTokens() on empty input = %d, want a positive fallback", got)
	}

	data := strings.Repeat("0123456789\n", 50)
	got := NewLines(data).EstimateTokens()
	if got < 25 || got > 100 {
		t.Errorf("EstimateTokens() = %d, want roughly 50 (uniform 11-byte lines)", got)
	}
}
