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

import "math/bits"

// occurrence classifies a token by how often it occurs in the other file,
// relative to eqlimit.
type occurrence uint8

const (
	// occNone means the token does not occur in the other file at all: it
	// is always part of the edit script.
	occNone occurrence = iota
	// occSome means the token occurs, but rarely enough to be useful for
	// matching.
	occSome
	// occCommon means the token occurs so frequently (blank lines, braces,
	// ...) that it is usually not meaningful for alignment.
	occCommon
)

const maxEqlimit = 1024

func sqrtUint(v int) uint32 {
	if v <= 0 {
		return 0
	}
	nbits := (32 - uint32(bits.LeadingZeros32(uint32(v)))) / 2
	return 1 << nbits
}

func occurrenceOf(n uint32, eqlimit uint32) occurrence {
	switch {
	case n == 0:
		return occNone
	case n >= eqlimit:
		return occCommon
	default:
		return occSome
	}
}

// tokenOccurrences classifies every token of file1 by its occurrence count
// in file2 and vice versa.
func tokenOccurrences(file1, file2 []Token) (occ1, occ2 []occurrence) {
	eqlimit1 := min(sqrtUint(len(file1)), maxEqlimit)
	eqlimit2 := min(sqrtUint(len(file2)), maxEqlimit)

	var counts1 []uint32
	for _, t := range file1 {
		b := int(t)
		if b >= len(counts1) {
			counts1 = append(counts1, make([]uint32, b-len(counts1)+1)...)
		}
		counts1[b]++
	}

	var counts2 []uint32
	occ2 = make([]occurrence, len(file2))
	for i, t := range file2 {
		b := int(t)
		if b >= len(counts2) {
			counts2 = append(counts2, make([]uint32, b-len(counts2)+1)...)
		}
		counts2[b]++
		var n1 uint32
		if b < len(counts1) {
			n1 = counts1[b]
		}
		occ2[i] = occurrenceOf(n1, eqlimit2)
	}

	occ1 = make([]occurrence, len(file1))
	for i, t := range file1 {
		b := int(t)
		var n2 uint32
		if b < len(counts2) {
			n2 = counts2[b]
		}
		occ1[i] = occurrenceOf(n2, eqlimit1)
	}

	return occ1, occ2
}

// preprocessedFile is a view of one side of an input with tokens that don't
// help alignment (occNone, and occCommon lines surrounded by too many
// unmatched lines) filtered out.
//
// offset translates a position in tokens/indices back to the corresponding
// position in the original, unstripped input: a token at tokens[i] sits at
// indices[i] in the common-prefix-and-suffix-stripped slice that was
// preprocessed, and at indices[i]+offset in the caller's original slice.
// isChanged is indexed by the stripped (not original) position and has one
// entry per token of the stripped slice, not per kept token.
type preprocessedFile struct {
	offset    int
	isChanged []bool
	indices   []int32
	tokens    []Token
}

func newPreprocessedFile(offset int, diff []occurrence, tokens []Token) preprocessedFile {
	changed := make([]bool, len(tokens))
	kept, indices := pruneUnmatchedTokens(tokens, diff, changed)
	return preprocessedFile{
		offset:    offset,
		isChanged: changed,
		indices:   indices,
		tokens:    kept,
	}
}

func pruneUnmatchedTokens(file []Token, status []occurrence, changed []bool) (kept []Token, indices []int32) {
	for i, tok := range file {
		var prune bool
		switch status[i] {
		case occNone:
			prune = true
		case occSome:
			prune = false
		case occCommon:
			prune = shouldPruneCommonLine(status, i)
		}
		if prune {
			changed[i] = true
			continue
		}
		kept = append(kept, tok)
		indices = append(indices, int32(i))
	}
	return kept, indices
}

const pruneWindow = 100

// shouldPruneCommonLine decides whether a very frequent token at pos should
// still be treated as changed, based on how lopsided the mix of unmatched
// versus common tokens is in a window around it.
func shouldPruneCommonLine(status []occurrence, pos int) bool {
	start := 0
	if pos > pruneWindow {
		start = pos - pruneWindow
	}

	unmatchedBefore, commonBefore := 0, 0
	for i := pos - 1; i >= start; i-- {
		if status[i] == occSome {
			break
		}
		if status[i] == occNone {
			unmatchedBefore++
		} else {
			commonBefore++
		}
	}
	if unmatchedBefore == 0 {
		return false
	}

	end := min(len(status), pos+pruneWindow)
	unmatchedAfter, commonAfter := 0, 0
	for i := pos; i < end; i++ {
		if status[i] == occSome {
			break
		}
		if status[i] == occNone {
			unmatchedAfter++
		} else {
			commonAfter++
		}
	}
	if unmatchedAfter == 0 {
		return false
	}

	common := commonBefore + commonAfter
	unmatched := unmatchedBefore + unmatchedAfter
	return unmatched > 3*common
}

func preprocess(file1, file2 []Token) (preprocessedFile, preprocessedFile) {
	prefix := 0
	for prefix < len(file1) && prefix < len(file2) && file1[prefix] == file2[prefix] {
		prefix++
	}
	file1, file2 = file1[prefix:], file2[prefix:]

	postfix := 0
	for postfix < len(file1) && postfix < len(file2) && file1[len(file1)-1-postfix] == file2[len(file2)-1-postfix] {
		postfix++
	}
	file1 = file1[:len(file1)-postfix]
	file2 = file2[:len(file2)-postfix]

	diff1, diff2 := tokenOccurrences(file1, file2)
	return newPreprocessedFile(prefix, diff1, file1), newPreprocessedFile(prefix, diff2, file2)
}
