// SPDX-License-Identifier: MIT
//
// File: statistics.go
// Role: Aggregate statistics over a Graph (averages, densities, completeness).
//
// Policy:
//   - Averages over vertices divide by the stored vertex count; averages over
//     edges divide by the stored edge count. A zero denominator is ErrEmptyGraph.
//   - Density follows the undirected simple-graph convention 2|E| / (|V|(|V|-1))
//     and is undefined (ErrEmptyGraph) below two vertices.

package core

import "fmt"

// Operation names used when wrapping ErrEmptyGraph.
const (
	opAverageDegree         = "AverageDegree"
	opAveragePositiveDegree = "AveragePositiveDegree"
	opAverageNegativeDegree = "AverageNegativeDegree"
	opAverageWeight         = "AverageWeight"
	opDensity               = "Density"
	opPositiveDensity       = "PositiveDensity"
	opNegativeDensity       = "NegativeDensity"
)

// AverageDegree returns the mean vertex degree.
func (g *Graph[V]) AverageDegree() (float64, error) {
	return g.averageDegree(opAverageDegree, anySign)
}

// AveragePositiveDegree returns the mean positive degree.
func (g *Graph[V]) AveragePositiveDegree() (float64, error) {
	return g.averageDegree(opAveragePositiveDegree, positiveSign)
}

// AverageNegativeDegree returns the mean negative degree.
func (g *Graph[V]) AverageNegativeDegree() (float64, error) {
	return g.averageDegree(opAverageNegativeDegree, negativeSign)
}

// AverageWeight returns the arithmetic mean of all edge weights.
// Returns ErrEmptyGraph when the graph has no edges.
// Complexity: O(E).
func (g *Graph[V]) AverageWeight() (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.edges) == 0 {
		return 0, emptyGraph(opAverageWeight, "no edges")
	}
	var sum int64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return float64(sum) / float64(len(g.edges)), nil
}

// PositiveEdgeCount returns the number of edges with weight > 0.
func (g *Graph[V]) PositiveEdgeCount() int {
	return g.countEdges(positiveSign)
}

// NegativeEdgeCount returns the number of edges with weight < 0.
func (g *Graph[V]) NegativeEdgeCount() int {
	return g.countEdges(negativeSign)
}

// Density returns 2|E| / (|V|(|V|-1)).
// Returns ErrEmptyGraph when |V| < 2.
func (g *Graph[V]) Density() (float64, error) {
	return g.density(opDensity, anySign)
}

// PositiveDensity is Density with only positive edges in the numerator.
func (g *Graph[V]) PositiveDensity() (float64, error) {
	return g.density(opPositiveDensity, positiveSign)
}

// NegativeDensity is Density with only negative edges in the numerator.
func (g *Graph[V]) NegativeDensity() (float64, error) {
	return g.density(opNegativeDensity, negativeSign)
}

// IsComplete reports whether every vertex has degree exactly |V|-1.
// A graph without vertices is vacuously complete.
// Complexity: O(V + E).
func (g *Graph[V]) IsComplete() bool {
	table := g.degreeTable(anySign)
	want := len(g.vertices) - 1
	for _, v := range g.vertices {
		if table[v] != want {
			return false
		}
	}

	return true
}

func (g *Graph[V]) averageDegree(op string, keep signFilter) (float64, error) {
	n := len(g.vertices)
	if n == 0 {
		return 0, emptyGraph(op, "no vertices")
	}
	table := g.degreeTable(keep)
	total := 0
	for _, v := range g.vertices {
		total += table[v]
	}

	return float64(total) / float64(n), nil
}

func (g *Graph[V]) density(op string, keep signFilter) (float64, error) {
	n := len(g.vertices)
	if n < 2 {
		return 0, emptyGraph(op, fmt.Sprintf("|V|=%d < 2", n))
	}
	m := g.countEdges(keep)

	return float64(2*m) / float64(n*(n-1)), nil
}

func (g *Graph[V]) countEdges(keep signFilter) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	count := 0
	for _, e := range g.edges {
		if keep(e.Weight) {
			count++
		}
	}

	return count
}

// emptyGraph wraps ErrEmptyGraph with the operation and the missing element.
func emptyGraph(op, detail string) error {
	return fmt.Errorf("%s: %s: %w", op, detail, ErrEmptyGraph)
}
