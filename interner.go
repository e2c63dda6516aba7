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

// Interner assigns a dense [Token] id to every distinct value of T it sees,
// reusing the same id for values that compare equal. It is the shared
// vocabulary between the two sides of an [InternedInput].
//
// The zero value is not usable; construct one with [NewInterner].
type Interner[T comparable] struct {
	ids    map[T]Token
	values []T
}

// NewInterner returns an empty Interner, optionally reserving room for n
// distinct values.
func NewInterner[T comparable](n int) *Interner[T] {
	return &Interner[T]{
		ids:    make(map[T]Token, n),
		values: make([]T, 0, n),
	}
}

// Intern returns the token for v, assigning it a fresh one on first sight.
func (in *Interner[T]) Intern(v T) Token {
	if tok, ok := in.ids[v]; ok {
		return tok
	}
	tok := Token(len(in.values))
	in.values = append(in.values, v)
	in.ids[v] = tok
	return tok
}

// Lookup returns the value a token was interned from. It panics if tok was
// not produced by this Interner.
func (in *Interner[T]) Lookup(tok Token) T {
	return in.values[tok]
}

// Len reports the number of distinct values interned so far.
func (in *Interner[T]) Len() int {
	return len(in.values)
}

// Clear removes every interned value, as if the Interner had just been
// constructed. Tokens previously produced by this Interner must not be used
// afterwards.
func (in *Interner[T]) Clear() {
	clear(in.ids)
	in.values = in.values[:0]
}

// TruncateAfter discards every value interned after the first n, so that
// Len() == n afterwards. It panics if n > Len(). Tokens at or beyond n must
// not be used afterwards.
//
// Rebuilding the id map from the kept prefix costs O(n); removing the
// discarded suffix one entry at a time costs O(Len()-n). TruncateAfter picks
// whichever is cheaper, mirroring the interner this package is ported from.
func (in *Interner[T]) TruncateAfter(n int) {
	if n > len(in.values) {
		panic("diff: TruncateAfter: n exceeds Len()")
	}
	dropped := len(in.values) - n
	if dropped == 0 {
		return
	}
	if dropped < n {
		for _, v := range in.values[n:] {
			delete(in.ids, v)
		}
	} else {
		clear(in.ids)
		for i, v := range in.values[:n] {
			in.ids[v] = Token(i)
		}
	}
	in.values = in.values[:n]
}
