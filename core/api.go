// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over a Graph.
// Policy:
//   - Every accessor returns a copy; callers can never alias internal slices or maps.
//   - No accessor mutates state or fails, except AdjacentVertices on an unknown vertex.

package core

// Name returns the identifying name of the graph (used for file naming only).
func (g *Graph[V]) Name() string {
	return g.name
}

// Directed reports the adjacency mode fixed at construction time.
func (g *Graph[V]) Directed() bool {
	return g.cfg.directed
}

// Vertices returns the vertex sequence in insertion order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns |V| as stored, duplicates included. O(1).
func (g *Graph[V]) VertexCount() int {
	return len(g.vertices)
}

// HasVertex reports whether v was declared as a vertex. O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// Edges returns the edge sequence in insertion order.
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[V], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|, duplicates included. O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AdjacencyList returns a deep copy of the adjacency index.
// Every declared vertex has an entry, possibly empty.
// Complexity: O(V + E).
func (g *Graph[V]) AdjacencyList() map[V][]Neighbor[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[V][]Neighbor[V], len(g.adjacency))
	for v, nbrs := range g.adjacency {
		cp := make([]Neighbor[V], len(nbrs))
		copy(cp, nbrs)
		out[v] = cp
	}

	return out
}

// AdjacentVertices returns the (neighbor, weight) pairs recorded for v, in
// the order their edges were inserted.
// Returns ErrVertexNotFound if v was never declared.
// Complexity: O(deg v).
func (g *Graph[V]) AdjacentVertices(v V) ([]Neighbor[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, vertexNotFound("AdjacentVertices", v)
	}
	out := make([]Neighbor[V], len(nbrs))
	copy(out, nbrs)

	return out, nil
}
