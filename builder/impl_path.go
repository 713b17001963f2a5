// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_path.go: Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i → i+1 for i=1..n-1.

package builder

import "github.com/MRoblesR/signed-graphs/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path() Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodPath, g, minPathNodes)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
