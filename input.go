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

// TokenSource produces the tokens of one side of a diff. Implementations are
// expected to be cheap to construct and re-iterate; package tokenize
// provides Lines and Words implementations over strings.
type TokenSource[T comparable] interface {
	// Tokenize returns every token of this source, in order.
	Tokenize() []T
	// EstimateTokens returns a rough upper bound on the number of tokens
	// Tokenize will yield, used only to size an initial allocation. It
	// need not be exact; returning 0 is always safe.
	EstimateTokens() int
}

// InternedInput holds two token sequences sharing a single [Interner],
// ready to be diffed with [Compute].
type InternedInput[T comparable] struct {
	// Before holds the interned tokens of the first sequence.
	Before []Token
	// After holds the interned tokens of the second sequence.
	After []Token
	// Interner is the shared vocabulary Before and After were interned
	// against.
	Interner *Interner[T]
}

// NewInput tokenizes and interns before and after into a fresh InternedInput.
func NewInput[T comparable](before, after TokenSource[T]) (*InternedInput[T], error) {
	in := &InternedInput[T]{
		Interner: NewInterner[T](before.EstimateTokens() + after.EstimateTokens()),
	}
	if err := in.UpdateBefore(before); err != nil {
		return nil, err
	}
	if err := in.UpdateAfter(after); err != nil {
		return nil, err
	}
	return in, nil
}

// UpdateBefore replaces Before with the interned tokens of src. Tokens
// previously interned for the old Before are not removed from the
// Interner; call [Interner.Clear] or [Interner.TruncateAfter] periodically
// if this is called often over a long-running process.
func (in *InternedInput[T]) UpdateBefore(src TokenSource[T]) error {
	toks := src.Tokenize()
	if err := checkLen("before", len(toks)); err != nil {
		return err
	}
	in.Before = internAll(in.Interner, in.Before[:0], toks)
	return nil
}

// UpdateAfter replaces After with the interned tokens of src. See
// [InternedInput.UpdateBefore] for the same memory-growth caveat.
func (in *InternedInput[T]) UpdateAfter(src TokenSource[T]) error {
	toks := src.Tokenize()
	if err := checkLen("after", len(toks)); err != nil {
		return err
	}
	in.After = internAll(in.Interner, in.After[:0], toks)
	return nil
}

func internAll[T comparable](in *Interner[T], dst []Token, toks []T) []Token {
	if cap(dst) < len(toks) {
		dst = make([]Token, 0, len(toks))
	}
	for _, t := range toks {
		dst = append(dst, in.Intern(t))
	}
	return dst
}

// Clear removes all tokens from Before and After and clears the Interner.
// It does not release previously allocated memory.
func (in *InternedInput[T]) Clear() {
	in.Before = in.Before[:0]
	in.After = in.After[:0]
	in.Interner.Clear()
}
