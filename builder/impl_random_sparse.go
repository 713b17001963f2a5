// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected graphs: iterate unordered pairs {i,j} with i<j.
//   - Directed graphs: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. For each accepted pair the sign
//     draw follows the inclusion draw on the same stream.

package builder

import (
	"fmt"

	"github.com/MRoblesR/signed-graphs/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// with independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodRandomSparse, g, minRandomSparseVertices)
		if err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		for i := 1; i <= n; i++ {
			start := i + 1
			if directed {
				start = 1
			}
			for j := start; j <= n; j++ {
				if i == j || !include() {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
