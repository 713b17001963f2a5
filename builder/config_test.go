// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaults verifies the deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	w, err := cfg.weight()
	if err != nil || w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %d, got %d (err=%v)", DefaultEdgeWeight, w, err)
	}
}

// TestRNGOptions verifies WithSeed reproducibility, the zero-seed policy
// and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	if a.rng.Int63() != b.rng.Int63() {
		t.Error("WithSeed: equal seeds produced different streams")
	}

	zero := newBuilderConfig(WithSeed(0))
	def := newBuilderConfig(WithSeed(DefaultSeed))
	if zero.rng.Int63() != def.rng.Int63() {
		t.Error("WithSeed(0): expected DefaultSeed stream")
	}

	r := rand.New(rand.NewSource(5))
	last := newBuilderConfig(WithSeed(1), WithRand(r))
	if last.rng != r {
		t.Error("WithRand after WithSeed: expected the explicit rng to win")
	}
}
