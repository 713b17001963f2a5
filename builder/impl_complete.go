// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_complete.go: Complete() constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits one edge per unordered pair {i,j}, i<j, in order i asc, j asc.
//   • Complexity: O(n²) edges.

package builder

import "github.com/MRoblesR/signed-graphs/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete signed graph K_n.
func Complete() Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodComplete, g, minCompleteNodes)
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err = addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
