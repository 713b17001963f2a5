// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Neighbor types, GraphOption set and the NewGraph constructor.
// Errors:
//   - ErrVertexNotFound: requested vertex does not exist.
//   - ErrEmptyGraph: statistic undefined on a graph without vertices/edges.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that was never declared.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyGraph indicates a statistic that divides by |V|, |V|-1 or |E| was
	// requested on a graph where that count is zero.
	ErrEmptyGraph = errors.New("core: statistic undefined on empty graph")
)

// VertexID is the set of identifier types a Graph may carry. Parsers produce
// integers or opaque strings; a single Graph never mixes the two.
type VertexID interface {
	~int | ~int32 | ~int64 | ~string
}

// Edge is a weighted relation between two vertices.
// Weight is commonly -1 or +1 but any signed integer is accepted.
type Edge[V VertexID] struct {
	From   V
	To     V
	Weight int64
}

// String renders the edge as "from to weight", the edge-list line format.
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v %v %d", e.From, e.To, e.Weight)
}

// Neighbor is one entry of the adjacency index: the vertex on the other end
// of an edge and the edge weight.
type Neighbor[V VertexID] struct {
	Vertex V
	Weight int64
}

// GraphOption configures a Graph before its adjacency index is built.
type GraphOption func(c *graphConfig)

// graphConfig carries construction-time flags. It is copied into every graph
// derived from the one it configured.
type graphConfig struct {
	directed bool
}

// WithDirected selects the adjacency mode: true stores only from→to entries,
// false (the default) mirrors every edge into the destination's list.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// Options returns the GraphOption set that reproduces g's configuration.
// Useful when a caller builds a new graph that must share g's mode.
func (g *Graph[V]) Options() []GraphOption {
	return []GraphOption{WithDirected(g.cfg.directed)}
}

// Graph is the canonical in-memory signed graph.
//
// vertices and edges keep insertion order; adjacency is derived from them.
// mu guards edges and adjacency so AddEdge may run alongside readers.
type Graph[V VertexID] struct {
	mu sync.RWMutex

	name string
	cfg  graphConfig

	vertices  []V
	edges     []Edge[V]
	adjacency map[V][]Neighbor[V]
}

// NewGraph creates a Graph named name over the given vertices and edges.
// Both slices are copied; the caller keeps ownership of its inputs.
// Returns ErrVertexNotFound if an edge references a vertex absent from vertices.
// Complexity: O(V + E).
func NewGraph[V VertexID](name string, vertices []V, edges []Edge[V], opts ...GraphOption) (*Graph[V], error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := newGraph[V](name, cfg, len(vertices), len(edges))
	g.vertices = append(g.vertices, vertices...)
	g.edges = append(g.edges, edges...)
	if err := g.rebuildAdjacency(); err != nil {
		return nil, fmt.Errorf("NewGraph(%q): %w", name, err)
	}

	return g, nil
}

// MustGraph is NewGraph for fixtures and examples; it panics on error.
func MustGraph[V VertexID](name string, vertices []V, edges []Edge[V], opts ...GraphOption) *Graph[V] {
	g, err := NewGraph(name, vertices, edges, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// newGraph allocates an empty graph with the given configuration and capacity hints.
func newGraph[V VertexID](name string, cfg graphConfig, nv, ne int) *Graph[V] {
	return &Graph[V]{
		name:      name,
		cfg:       cfg,
		vertices:  make([]V, 0, nv),
		edges:     make([]Edge[V], 0, ne),
		adjacency: make(map[V][]Neighbor[V], nv),
	}
}
