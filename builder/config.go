// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil            (pure/deterministic unless seeded)
//   • signFn = DefaultSignFn  (every edge positive)

package builder

import "math/rand"

// DefaultSeed is used by WithSeed(0).
const DefaultSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Sign policy for every emitted edge.
	signFn SignFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		signFn: DefaultSignFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// weight draws the next edge weight from the configured sign policy.
func (c builderConfig) weight() (int64, error) {
	return c.signFn(c.rng)
}
