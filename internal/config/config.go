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

// Package config provides the shared configuration mechanism for this
// module's packages.
//
// This package is an implementation detail; the configuration surface for
// users is diff.Option.
package config

// Algorithm selects which comparison algorithm Compute uses.
type Algorithm int

const (
	// Histogram picks the rarest shared token as a pivot and recurses
	// around it, falling back to Myers when a pivot's occurrence list
	// overflows. It is the default: fast and produces readable diffs on
	// typical source-like input.
	Histogram Algorithm = iota
	// Myers computes a diff with Myers' algorithm, using heuristics to
	// bound the cost of large, highly different inputs. The result is not
	// guaranteed to be of minimal edit distance.
	Myers
	// MyersMinimal is Myers' algorithm without the early-exit heuristics:
	// the result is always of minimal edit distance, at the cost of
	// potentially quadratic runtime on pathological input.
	MyersMinimal
)

// Config collects all configurable parameters for the comparison functions
// in this module.
type Config struct {
	// Algorithm selects the comparison algorithm.
	Algorithm Algorithm

	// IndentHeuristic, if set, makes the postprocessor prefer hunk
	// boundaries that align with indentation and blank lines over the
	// raw algorithmic result.
	IndentHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Algorithm:       Histogram,
	IndentHeuristic: true,
}

// Flag describes a single config entry, used to detect options being set
// that a caller is not allowed to set in a given context.
type Flag int

const (
	AlgorithmFlag Flag = 1 << iota
	IndentHeuristicFlag
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("diff: option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case AlgorithmFlag:
		return "diff.WithAlgorithm"
	case IndentHeuristicFlag:
		return "diff.IndentHeuristic"
	default:
		panic("diff: unknown option flag")
	}
}
