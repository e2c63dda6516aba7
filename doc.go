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

// Package diff computes the difference between two sequences of tokens.
//
// A diff is produced in three stages. First, the caller interns the tokens
// of both sides into a shared [Interner], producing an [InternedInput] of
// dense integer [Token] ids. Second, [Compute] runs either the histogram or
// the Myers algorithm (selected with [Algorithm]) over that input, and
// postprocesses the raw result with a slider heuristic so that hunk
// boundaries land on human-meaningful lines. Third, the resulting [Diff] is
// consumed either position by position ([Diff.IsRemoved], [Diff.IsAdded]) or
// hunk by hunk ([Diff.Hunks]).
//
// The package has no opinion on what a token is: it only ever compares
// tokens for equality. Turning concrete input (strings, byte slices, lines
// of a file) into tokens is the job of a [TokenSource], and package
// tokenize provides line and word tokenizers as a convenience; neither this
// package nor tokenize renders a diff back to text.
package diff
