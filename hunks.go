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
	"iter"

	"diffcore.dev/diffcore/internal/rvecs"
)

// Hunk is one contiguous change region of a Diff. Before and After are
// both half-open ranges into the original before/after sequences; either
// may be empty (a pure insertion has an empty Before, a pure deletion an
// empty After) but never both.
type Hunk struct {
	BeforeStart, BeforeEnd int
	AfterStart, AfterEnd   int
}

// Hunks iterates over every change region of d, in order from the start of
// the sequences to the end.
func (d Diff) Hunks() iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		for h := range rvecs.Hunks(d.removed, d.added) {
			if !yield(Hunk(h)) {
				return
			}
		}
	}
}
