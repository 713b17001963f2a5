// SPDX-License-Identifier: MIT
// Package: signed-graphs/sampler
//
// options.go: functional options for Sampler construction.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package sampler

import "math/rand"

// Option configures a Sampler.
type Option func(*config)

// config holds resolved sampler settings.
type config struct {
	rng *rand.Rand
}

// WithSeed seeds a private random source. Seed 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects an explicit random source. The Sampler takes ownership of
// r: sharing it with other goroutines breaks determinism. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// newConfig applies opts over the DefaultSeed source.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(DefaultSeed)
	}

	return cfg
}
