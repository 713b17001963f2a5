// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(name, n, gopts, bopts, cons...). Declares
//     vertices 1..n, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/MRoblesR/signed-graphs/core"
)

// Constructor adds edges to g, whose vertices are already 1..n.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a core.Graph named name over the vertices 1..n with
// graph options gopts, resolves the builder configuration from bopts and
// applies all constructors in order. Constructors may be composed: a Cycle
// followed by RandomSparse overlays random chords on the ring.
//
// Errors:
//   - ErrTooFewVertices if n < 0.
//   - Constructor errors wrapped as "BuildGraph: %w".
func BuildGraph(name string, n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	vertices := make([]int, n)
	for i := range vertices {
		vertices[i] = i + 1
	}
	g, err := core.NewGraph(name, vertices, nil, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a weight and inserts u→v, wrapping failures with the method tag.
func addEdge(method string, g *core.Graph[int], cfg builderConfig, u, v int) error {
	w, err := cfg.weight()
	if err != nil {
		return fmt.Errorf("%s: edge %d→%d: %w", method, u, v, err)
	}
	if err = g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// requireVertices returns ErrTooFewVertices when g has fewer than min vertices.
func requireVertices(method string, g *core.Graph[int], min int) (int, error) {
	n := g.VertexCount()
	if n < min {
		return n, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return n, nil
}
