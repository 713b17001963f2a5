// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copying and combining graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graphs.

package core

import "github.com/emirpasic/gods/sets/linkedhashset"

// Clone returns a deep copy of the graph: name, mode, vertices, edges and a
// freshly derived adjacency index.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	return g.copyAs(g.name)
}

// WithName returns a deep copy of the graph carrying a different name.
func (g *Graph[V]) WithName(name string) *Graph[V] {
	return g.copyAs(name)
}

func (g *Graph[V]) copyAs(name string) *Graph[V] {
	edges := g.Edges()
	out := newGraph[V](name, g.cfg, len(g.vertices), len(edges))
	out.vertices = append(out.vertices, g.vertices...)
	out.edges = append(out.edges, edges...)
	_ = out.rebuildAdjacency()

	return out
}

// Union returns a new graph whose vertex and edge sequences are the
// concatenation of g's and other's, in that order. Nothing is deduplicated:
// shared vertices or edges appear twice. The result takes g's name and mode.
// Complexity: O(V + E) of both operands.
func (g *Graph[V]) Union(other *Graph[V]) *Graph[V] {
	if other == nil {
		return g.Clone()
	}
	left, right := g.Edges(), other.Edges()
	out := newGraph[V](g.name, g.cfg, len(g.vertices)+len(other.vertices), len(left)+len(right))
	out.vertices = append(out.vertices, g.vertices...)
	out.vertices = append(out.vertices, other.vertices...)
	out.edges = append(out.edges, left...)
	out.edges = append(out.edges, right...)
	// Both operands satisfy the endpoint invariant, so the union does too.
	_ = out.rebuildAdjacency()

	return out
}

// Compact returns a copy of g with repeated vertices and repeated edges
// (identical from, to and weight) removed, keeping first occurrences in order.
// Complexity: O(V + E).
func (g *Graph[V]) Compact() *Graph[V] {
	vertices := linkedhashset.New()
	for _, v := range g.vertices {
		vertices.Add(v)
	}
	edges := linkedhashset.New()
	for _, e := range g.Edges() {
		edges.Add(e)
	}

	out := newGraph[V](g.name, g.cfg, vertices.Size(), edges.Size())
	for _, v := range vertices.Values() {
		out.vertices = append(out.vertices, v.(V))
	}
	for _, e := range edges.Values() {
		out.edges = append(out.edges, e.(Edge[V]))
	}
	_ = out.rebuildAdjacency()

	return out
}
