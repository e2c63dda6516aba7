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

// Token is the interned token type internal/myers operates on, defined here
// (rather than imported from the root package) so this package stays free
// of a dependency cycle. Compute, in diff.go at the module root, converts
// to and from diff.Token, which has the identical underlying
// representation.
type Token = uint32

// fileSlice is a zero-copy view into a preprocessedFile's kept tokens.
// changed always refers to the full, unsliced isChanged array of the
// preprocessedFile it was built from: indices maps a position in tokens
// back to its position in that array, so marking a change is always done
// through indices regardless of how far tokens/indices have been sliced.
type fileSlice struct {
	tokens  []Token
	indices []int32
	changed []bool
}

func newFileSlice(f *preprocessedFile) fileSlice {
	return fileSlice{
		tokens:  f.tokens,
		indices: f.indices,
		changed: f.isChanged,
	}
}

func (s fileSlice) len() int32 { return int32(len(s.tokens)) }

func (s fileSlice) isEmpty() bool { return len(s.tokens) == 0 }

// markChanged marks every token remaining in this slice as changed in the
// backing preprocessedFile.
func (s fileSlice) markChanged() {
	for _, i := range s.indices {
		s.changed[i] = true
	}
}

// slice returns the sub-slice [start:end), sharing the same backing changed
// array.
func (s fileSlice) slice(start, end int32) fileSlice {
	return fileSlice{
		tokens:  s.tokens[start:end],
		indices: s.indices[start:end],
		changed: s.changed,
	}
}

// stripCommon removes the common prefix and suffix shared between s and
// other, in place.
func stripCommon(s, other *fileSlice) {
	prefix := int32(0)
	for prefix < s.len() && prefix < other.len() && s.tokens[prefix] == other.tokens[prefix] {
		prefix++
	}
	postfix := int32(0)
	for prefix+postfix < s.len() && prefix+postfix < other.len() &&
		s.tokens[s.len()-1-postfix] == other.tokens[other.len()-1-postfix] {
		postfix++
	}
	*s = s.slice(prefix, s.len()-postfix)
	*other = other.slice(prefix, other.len()-postfix)
}
