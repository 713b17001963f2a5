// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// impl_wheel.go: Wheel() constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Vertex 1 is the hub; vertices 2..n form a ring.
//   • Emission order: ring edges i → i+1 (closing n → 2), then spokes 1 → i.
//   • Complexity: O(n), 2(n-1) edges.

package builder

import "github.com/MRoblesR/signed-graphs/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a hub joined to every vertex
// of an (n-1)-cycle.
func Wheel() Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		n, err := requireVertices(methodWheel, g, minWheelNodes)
		if err != nil {
			return err
		}
		for i := centerVertex + 1; i <= n; i++ {
			next := i + 1
			if next > n {
				next = centerVertex + 1
			}
			if err = addEdge(methodWheel, g, cfg, i, next); err != nil {
				return err
			}
		}
		for i := centerVertex + 1; i <= n; i++ {
			if err = addEdge(methodWheel, g, cfg, centerVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
