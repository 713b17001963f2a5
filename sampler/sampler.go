// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: Bounded-growth neighbourhood sampler.
// Determinism:
//   - Pool removals preserve order, so each draw depends only on the seed,
//     the parent vertex order and the draws before it.

package sampler

import (
	"errors"
	"fmt"

	"github.com/MRoblesR/signed-graphs/core"
)

// Sentinel errors for sampling.
var (
	// ErrInvalidSize indicates a negative target vertex count.
	ErrInvalidSize = errors.New("sampler: invalid target size")

	// ErrNilGraph indicates a nil parent graph.
	ErrNilGraph = errors.New("sampler: nil graph")
)

const methodSample = "Sample"

// Sampler draws representative subgraphs from signed graphs using its own
// random stream. Consecutive Sample calls continue that stream.
type Sampler[V core.VertexID] struct {
	cfg config
}

// New returns a Sampler configured by opts; without options it is seeded
// with DefaultSeed.
func New[V core.VertexID](opts ...Option) *Sampler[V] {
	return &Sampler[V]{cfg: newConfig(opts...)}
}

// GenerateSubgraph samples g with a fresh Sampler built from opts.
// Repeated calls with the same opts return identical graphs.
func GenerateSubgraph[V core.VertexID](g *core.Graph[V], minVertexCount int, opts ...Option) (*core.Graph[V], error) {
	return New[V](opts...).Sample(g, minVertexCount)
}

// Sample grows a subgraph of g until it holds at least minVertexCount
// distinct vertices or no candidate vertex remains. The result carries g's
// name and adjacency mode and contains no repeated vertices or edges.
// The accumulator is compacted after every union, so vertices shared by
// several neighbourhoods count once toward minVertexCount; results differ
// from growth over a plain, duplicate-keeping union.
//
// Returns ErrNilGraph for a nil g and ErrInvalidSize for a negative target.
// A zero target yields an empty graph.
//
// Complexity: O(k·E) for k absorbed neighbourhoods.
func (s *Sampler[V]) Sample(g *core.Graph[V], minVertexCount int) (*core.Graph[V], error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodSample, ErrNilGraph)
	}
	if minVertexCount < 0 {
		return nil, fmt.Errorf("%s: minVertexCount=%d: %w", methodSample, minVertexCount, ErrInvalidSize)
	}

	acc, err := core.NewGraph[V](g.Name(), nil, nil, g.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}
	pool := g.Vertices()
	for acc.VertexCount() < minVertexCount && len(pool) > 0 {
		i := s.cfg.rng.Intn(len(pool))
		v := pool[i]
		pool = append(pool[:i], pool[i+1:]...)

		sub, err := g.Subgraph(v)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %v: %w", methodSample, v, err)
		}
		acc = acc.Union(sub).Compact()
		pool = without(pool, sub.Vertices())
	}

	return acc, nil
}

// without removes every occurrence of the given vertices from pool in place,
// keeping the order of the survivors.
func without[V core.VertexID](pool []V, drop []V) []V {
	if len(drop) == 0 {
		return pool
	}
	gone := make(map[V]struct{}, len(drop))
	for _, v := range drop {
		gone[v] = struct{}{}
	}
	kept := pool[:0]
	for _, v := range pool {
		if _, ok := gone[v]; !ok {
			kept = append(kept, v)
		}
	}

	return kept
}
