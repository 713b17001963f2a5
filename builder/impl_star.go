// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_star.go: Star() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 1 is the center; emits 1 → i for i=2..n.

package builder

import "github.com/MRoblesR/signed-graphs/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	centerVertex = 1
)

// Star returns a Constructor that connects vertex 1 to every other vertex.
func Star() Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodStar, g, minStarNodes)
		if err != nil {
			return err
		}
		for i := centerVertex + 1; i <= n; i++ {
			if err = addEdge(methodStar, g, cfg, centerVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
