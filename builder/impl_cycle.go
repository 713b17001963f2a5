// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_cycle.go: Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i → i+1 for i=1..n-1, then n → 1 to close the ring.
//   • Complexity: O(n).

package builder

import "github.com/MRoblesR/signed-graphs/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodCycle, g, minCycleNodes)
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			if err = addEdge(methodCycle, g, cfg, i, i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}
