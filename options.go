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

import "diffcore.dev/diffcore/internal/config"

// Algorithm selects which comparison algorithm [Compute] uses.
type Algorithm = config.Algorithm

const (
	// Histogram is the default algorithm. See [config.Histogram].
	Histogram = config.Histogram
	// Myers computes a diff with Myers' algorithm. See [config.Myers].
	Myers = config.Myers
	// MyersMinimal is Myers' algorithm without early-exit heuristics. See
	// [config.MyersMinimal].
	MyersMinimal = config.MyersMinimal
)

// Option configures [Compute].
type Option = config.Option

// WithAlgorithm selects the comparison algorithm. The default is [Histogram].
func WithAlgorithm(a Algorithm) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Algorithm = a
		return config.AlgorithmFlag
	}
}

// IndentHeuristic enables or disables the indent-aware slider heuristic that
// the postprocessor uses to choose between otherwise equally valid hunk
// boundaries. It is enabled by default.
func IndentHeuristic(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = enabled
		return config.IndentHeuristicFlag
	}
}
