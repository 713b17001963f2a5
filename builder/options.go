// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builder run by mutating a builderConfig
// before any constructor executes.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and sign policies.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Seed 0 selects
// DefaultSeed so that the zero value stays reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithSign overrides the per-edge sign policy. Panics on nil.
func WithSign(fn SignFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSign(nil)")
	}
	return func(c *builderConfig) {
		c.signFn = fn
	}
}
