// SPDX-License-Identifier: MIT

// Package sampler grows vertex-bounded representative subgraphs of a signed
// core.Graph by repeatedly absorbing closed neighbourhoods of randomly chosen
// vertices.
//
// Algorithm (GenerateSubgraph / Sampler.Sample):
//
//  1. acc = empty graph (parent name and mode); pool = parent vertex sequence.
//  2. While acc has fewer than minVertexCount distinct vertices and pool is
//     non-empty: draw i uniformly in [0, len(pool)), remove pool[i] = v,
//     absorb g.Subgraph(v) into acc and drop every neighbour of v still in pool.
//  3. Stop when the target is reached or the pool is exhausted; the result may
//     be smaller than requested on small or disconnected graphs, and may
//     overshoot it by at most one neighbourhood.
//
// Determinism:
//
//	The random source is injected (WithSeed / WithRand). The same seed, parent
//	graph and minVertexCount always yield identical vertex and edge sequences.
//	Seed 0 selects DefaultSeed.
//
// Concurrency:
//
//	A Sampler owns a *rand.Rand and is NOT safe for concurrent use. Create one
//	Sampler per goroutine, or call GenerateSubgraph which builds a fresh one.
//
// Errors:
//
//	ErrInvalidSize - minVertexCount < 0.
//	ErrNilGraph    - the parent graph is nil.
package sampler
