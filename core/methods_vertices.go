// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Per-vertex and graph-level degree queries.
//
// Degree policy:
//   - An edge (u,v,w) contributes 1 to the degree of u and 1 to the degree of v,
//     whatever the adjacency mode. A self-loop (u,u,w) contributes 1 to u.
//   - Positive/negative degrees count only edges with w > 0 / w < 0; zero-weight
//     edges count towards Degree alone.
//   - The graph-level degree is the maximum vertex degree, not the mean.

package core

// signFilter selects which edges a degree query counts.
type signFilter func(weight int64) bool

func anySign(int64) bool        { return true }
func positiveSign(w int64) bool { return w > 0 }
func negativeSign(w int64) bool { return w < 0 }

// Degree returns the number of edges incident to v.
// Returns ErrVertexNotFound if v was never declared.
// Complexity: O(E).
func (g *Graph[V]) Degree(v V) (int, error) {
	return g.vertexDegree("Degree", v, anySign)
}

// PositiveDegree returns the number of positive-weight edges incident to v.
// Returns ErrVertexNotFound if v was never declared.
// Complexity: O(E).
func (g *Graph[V]) PositiveDegree(v V) (int, error) {
	return g.vertexDegree("PositiveDegree", v, positiveSign)
}

// NegativeDegree returns the number of negative-weight edges incident to v.
// Returns ErrVertexNotFound if v was never declared.
// Complexity: O(E).
func (g *Graph[V]) NegativeDegree(v V) (int, error) {
	return g.vertexDegree("NegativeDegree", v, negativeSign)
}

// MaxDegree returns the largest vertex degree, 0 for a graph without vertices.
// Complexity: O(V + E).
func (g *Graph[V]) MaxDegree() int {
	return g.maxDegree(anySign)
}

// MaxPositiveDegree returns the largest positive degree over all vertices.
func (g *Graph[V]) MaxPositiveDegree() int {
	return g.maxDegree(positiveSign)
}

// MaxNegativeDegree returns the largest negative degree over all vertices.
func (g *Graph[V]) MaxNegativeDegree() int {
	return g.maxDegree(negativeSign)
}

func (g *Graph[V]) vertexDegree(method string, v V, keep signFilter) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.adjacency[v]; !ok {
		return 0, vertexNotFound(method, v)
	}
	degree := 0
	for _, e := range g.edges {
		if keep(e.Weight) && (e.From == v || e.To == v) {
			degree++
		}
	}

	return degree, nil
}

func (g *Graph[V]) maxDegree(keep signFilter) int {
	table := g.degreeTable(keep)
	best := 0
	for _, v := range g.vertices {
		if d := table[v]; d > best {
			best = d
		}
	}

	return best
}

// degreeTable counts, in one pass over the edges, the filtered degree of
// every vertex that has at least one matching edge.
func (g *Graph[V]) degreeTable(keep signFilter) map[V]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	table := make(map[V]int, len(g.adjacency))
	for _, e := range g.edges {
		if !keep(e.Weight) {
			continue
		}
		table[e.From]++
		if e.To != e.From {
			table[e.To]++
		}
	}

	return table
}
