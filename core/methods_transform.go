// SPDX-License-Identifier: MIT
//
// File: methods_transform.go
// Role: Transformations that derive a new Graph from an existing one
//       (numeric re-indexing and closed-neighbourhood subgraphs).
// Determinism:
//   - Output order is a pure function of the source vertex and edge order.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared Graph.
// AI-HINT (file):
//   - Transformations never mutate the receiver and never share slices or maps with it.

package core

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// GenerateNumericGraph re-indexes the graph with integer identifiers 1..n,
// assigned in vertex order. Edges are remapped in order. This is the
// anonymization step: no original label survives in the numeric graph.
//
// Returns the numeric graph, the label→index map and its inverse.
// A vertex listed more than once keeps the index of its first occurrence,
// so labelToIndex is always a bijection onto 1..n.
//
// Complexity: O(V + E).
func (g *Graph[V]) GenerateNumericGraph() (*Graph[int], map[V]int, map[int]V) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	labelToIndex := make(map[V]int, len(g.vertices))
	indexToLabel := make(map[int]V, len(g.vertices))
	numeric := newGraph[int](g.name, g.cfg, len(g.vertices), len(g.edges))
	for _, v := range g.vertices {
		if _, seen := labelToIndex[v]; seen {
			continue
		}
		idx := len(numeric.vertices) + 1
		labelToIndex[v] = idx
		indexToLabel[idx] = v
		numeric.vertices = append(numeric.vertices, idx)
	}
	for _, e := range g.edges {
		numeric.edges = append(numeric.edges, Edge[int]{
			From:   labelToIndex[e.From],
			To:     labelToIndex[e.To],
			Weight: e.Weight,
		})
	}
	// Every endpoint was declared in g, so every remapped endpoint is in 1..n.
	_ = numeric.rebuildAdjacency()

	return numeric, labelToIndex, indexToLabel
}

// Subgraph returns the subgraph induced by the closed neighbourhood of v:
// v, every vertex sharing an edge with v (in either direction), and every
// parent edge whose endpoints both lie in that set.
//
// Implementation:
//   - Pass 1: scan edges incident to v to collect the neighbourhood.
//   - Pass 2: re-scan all edges to keep those among neighbourhood members,
//     which also captures edges between two neighbours not touching v.
//
// Vertices and edges have set semantics; they are enumerated in order of
// first occurrence in the parent. Returns ErrVertexNotFound for an unknown v.
//
// Complexity: O(E).
func (g *Graph[V]) Subgraph(v V) (*Graph[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.adjacency[v]; !ok {
		return nil, vertexNotFound("Subgraph", v)
	}

	members := linkedhashset.New(v)
	for _, e := range g.edges {
		switch v {
		case e.From:
			members.Add(e.To)
		case e.To:
			members.Add(e.From)
		}
	}

	edges := linkedhashset.New()
	for _, e := range g.edges {
		if members.Contains(e.From) && members.Contains(e.To) {
			edges.Add(e)
		}
	}

	sub := newGraph[V](g.name, g.cfg, members.Size(), edges.Size())
	for _, m := range members.Values() {
		sub.vertices = append(sub.vertices, m.(V))
	}
	for _, e := range edges.Values() {
		sub.edges = append(sub.edges, e.(Edge[V]))
	}
	if err := sub.rebuildAdjacency(); err != nil {
		return nil, err
	}

	return sub, nil
}
