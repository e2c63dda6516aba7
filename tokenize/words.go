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

import "unicode/utf8"

// Words is a diff.TokenSource that splits data into maximal runs of
// [A-Za-z0-9_], single spaces, or any other single rune. Every rune that
// is not part of a word is its own token, rather than merging into a
// whitespace or punctuation run: this means the original text can always
// be reconstructed by concatenating the tokens, and a change in spacing or
// a single inserted punctuation mark shows up as its own edit instead of
// folding into a larger neighboring token.
type Words struct {
	data string
}

// NewWords returns a Words tokenizer over data.
func NewWords(data string) Words { return Words{data: data} }

// Tokenize implements diff.TokenSource.
func (w Words) Tokenize() []string {
	var words []string
	rest := w.data
	for len(rest) > 0 {
		n := nextTokenLen(rest)
		words = append(words, rest[:n])
		rest = rest[n:]
	}
	return words
}

// EstimateTokens implements diff.TokenSource.
func (w Words) EstimateTokens() int {
	total := len(w.data)
	rest := w.data
	sampleLen := 0
	for n := 0; n < sampleLines && len(rest) > 0; n++ {
		tokLen := nextTokenLen(rest)
		sampleLen += tokLen
		rest = rest[tokLen:]
	}
	if sampleLen == 0 {
		return 100
	}
	return total * sampleLines / sampleLen
}

// nextTokenLen returns the length in bytes of the next token at the start
// of s: a maximal run of word runes, or else a single rune (whether that
// rune is a space or anything else).
func nextTokenLen(s string) int {
	if n := wordRunLen(s); n > 0 {
		return n
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// wordRunLen returns the length in bytes of the leading maximal run of
// isWordRune runes in s, or 0 if s does not start with one.
func wordRunLen(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	return i
}

// isWordRune reports whether r is one of [A-Za-z0-9_], matching spec's word
// token boundary rather than unicode.IsLetter/IsDigit.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
