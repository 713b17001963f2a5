// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge mutation and adjacency index maintenance.
// Determinism:
//   - Adjacency lists follow edge insertion order.
// Concurrency:
//   - AddEdge takes the write lock; rebuildAdjacency runs only on graphs that
//     are not yet shared (constructors).

package core

import "fmt"

// AddEdge appends (u, v, weight) to the edge sequence and records it in the
// adjacency index: adj[u] gets (v, weight), and in undirected mode adj[v]
// gets (u, weight) too. A self-loop is mirrored only once.
//
// Returns ErrVertexNotFound if u or v was never declared; the graph is left
// untouched in that case.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		return vertexNotFound("AddEdge", u)
	}
	if _, ok := g.adjacency[v]; !ok {
		return vertexNotFound("AddEdge", v)
	}
	g.edges = append(g.edges, Edge[V]{From: u, To: v, Weight: weight})
	g.link(u, v, weight)

	return nil
}

// link inserts the adjacency entries of one edge. Caller holds the write lock
// (or owns the graph exclusively) and has validated both endpoints.
// An undirected self-loop gets a single entry, matching its degree of one.
func (g *Graph[V]) link(u, v V, weight int64) {
	g.adjacency[u] = append(g.adjacency[u], Neighbor[V]{Vertex: v, Weight: weight})
	if !g.cfg.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Neighbor[V]{Vertex: u, Weight: weight})
	}
}

// rebuildAdjacency derives the adjacency index from (vertices, edges).
// Returns ErrVertexNotFound on the first edge with an undeclared endpoint.
// Complexity: O(V + E).
func (g *Graph[V]) rebuildAdjacency() error {
	g.adjacency = make(map[V][]Neighbor[V], len(g.vertices))
	for _, v := range g.vertices {
		if _, ok := g.adjacency[v]; !ok {
			g.adjacency[v] = []Neighbor[V]{}
		}
	}
	for i, e := range g.edges {
		if _, ok := g.adjacency[e.From]; !ok {
			return fmt.Errorf("edge #%d (%s): %w", i, e, vertexNotFound("source", e.From))
		}
		if _, ok := g.adjacency[e.To]; !ok {
			return fmt.Errorf("edge #%d (%s): %w", i, e, vertexNotFound("destination", e.To))
		}
		g.link(e.From, e.To, e.Weight)
	}

	return nil
}

// vertexNotFound wraps ErrVertexNotFound with the method and vertex involved.
func vertexNotFound[V VertexID](method string, v V) error {
	return fmt.Errorf("%s: vertex %v: %w", method, v, ErrVertexNotFound)
}
