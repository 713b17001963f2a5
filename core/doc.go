// SPDX-License-Identifier: MIT

// Package core provides the in-memory signed Graph used to canonicalize
// social-network interaction datasets (trust ratings, votes, co-sponsorship).
//
// A Graph G = (V, E) keeps three things:
//
//   - vertices: an ordered sequence of identifiers (all of one VertexID type)
//   - edges:    an ordered sequence of (from, to, weight) triples, weight ∈ ℤ
//   - adjacency index: vertex → ordered (neighbor, weight) pairs, derived from
//     (vertices, edges) and rebuilt by every constructor; never persisted
//
// Adjacency modes (GraphOption):
//
//	– WithDirected(false)  (default)
//	    Undirected: edge (u,v,w) inserts (v,w) into adj[u] and (u,w) into adj[v].
//	– WithDirected(true)
//	    Directed: only adj[u] receives (v,w).
//
// Degrees ignore the mode: an edge (u,v,w) counts towards both u and v.
// Derived graphs inherit the mode of the graph they were derived from.
//
// Core Methods:
//
//	// Construction
//	NewGraph(name, vertices, edges, opts...) (*Graph[V], error) // O(V+E)
//	AddEdge(u, v, w) error                                     // O(1) amortized
//
//	// Query
//	Vertices(), Edges(), AdjacencyList()                       // copies, O(V+E)
//	AdjacentVertices(v) ([]Neighbor[V], error)                 // O(deg v)
//
//	// Degrees & statistics
//	Degree / PositiveDegree / NegativeDegree (v)               // O(E)
//	MaxDegree / MaxPositiveDegree / MaxNegativeDegree ()       // O(V+E)
//	AverageDegree / AveragePositiveDegree / AverageNegativeDegree / AverageWeight
//	Density / PositiveDensity / NegativeDensity, IsComplete
//
//	// Transformations (always return a fresh Graph)
//	GenerateNumericGraph() (*Graph[int], map[V]int, map[int]V)
//	Subgraph(v), Union(other), Compact(), Clone(), WithName(name)
//
// Errors:
//
//	ErrVertexNotFound – an operation referenced a vertex that was never declared
//	ErrEmptyGraph     – a statistic divides by a vertex/edge count that is zero
//
// Edge order is insertion order and duplicates are kept unless Compact is
// called. Vertex order is significant: GenerateNumericGraph numbers vertices
// 1..n in that order.
package core
