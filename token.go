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
	"errors"
	"fmt"
)

// Token is a dense identifier assigned to an interned value by an
// [Interner]. Two tokens compare equal if and only if the values they were
// interned from compared equal.
type Token uint32

// maxTokens is the largest number of tokens a single side of an input may
// contain. The algorithms below track positions as signed 32 bit offsets
// internally, so a side must stay strictly below 1<<31 tokens.
const maxTokens = 1 << 31

// ErrInputTooLarge is returned when a side of an input holds 1<<31 tokens or
// more.
var ErrInputTooLarge = errors.New("diff: input exceeds maximum of 2^31 tokens")

func checkLen(side string, n int) error {
	if n >= maxTokens {
		return fmt.Errorf("%w: %s side has %d tokens", ErrInputTooLarge, side, n)
	}
	return nil
}
