// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction, mutation and query contracts.

package core_test

import (
	"testing"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_CopiesInputs(t *testing.T) {
	vertices := []int{1, 2}
	edges := []core.Edge[int]{e(1, 2, Pos)}
	g, err := core.NewGraph("g", vertices, edges)
	require.NoError(t, err)

	// Mutating the caller's slices must not reach the graph.
	vertices[0] = 99
	edges[0].Weight = 7
	assert.Equal(t, []int{1, 2}, g.Vertices())
	assert.Equal(t, []core.Edge[int]{e(1, 2, Pos)}, g.Edges())

	// Mutating returned copies must not reach the graph either.
	g.Vertices()[0] = 42
	g.Edges()[0].Weight = 42
	g.AdjacencyList()[1][0].Weight = 42
	assert.Equal(t, []int{1, 2}, g.Vertices())
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
	nbrs, err := g.AdjacentVertices(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nbrs[0].Weight)
}

func TestNewGraph_UndeclaredEndpoint(t *testing.T) {
	_, err := core.NewGraph("g", []int{1, 2}, []core.Edge[int]{e(1, 3, Pos)})
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = core.NewGraph("g", []int{2, 3}, []core.Edge[int]{e(1, 3, Pos)})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph[string]("", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.AdjacencyList())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.Directed())
}

func TestAccessors(t *testing.T) {
	g := sampleGraph(t)
	assert.Equal(t, "sample", g.Name())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Vertices())
	assert.Equal(t, []core.Edge[int]{e(1, 2, Pos), e(1, 3, Pos), e(2, 3, Neg), e(4, 5, Neg)}, g.Edges())
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(6))
}

func TestAdjacency_Undirected(t *testing.T) {
	g := sampleGraph(t)

	adj := g.AdjacencyList()
	assert.Equal(t, []core.Neighbor[int]{{Vertex: 2, Weight: 1}, {Vertex: 3, Weight: 1}}, adj[1])
	assert.Equal(t, []core.Neighbor[int]{{Vertex: 4, Weight: -1}}, adj[5])

	nbrs, err := g.AdjacentVertices(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[int]{{Vertex: 1, Weight: 1}, {Vertex: 3, Weight: -1}}, nbrs)
}

func TestAdjacency_Directed(t *testing.T) {
	g := sampleGraph(t, core.WithDirected(true))
	assert.True(t, g.Directed())

	nbrs, err := g.AdjacentVertices(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[int]{{Vertex: 3, Weight: -1}}, nbrs)

	nbrs, err = g.AdjacentVertices(5)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestAdjacentVertices_Unknown(t *testing.T) {
	g := sampleGraph(t)
	_, err := g.AdjacentVertices(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge(t *testing.T) {
	g := sampleGraph(t)

	require.NoError(t, g.AddEdge(3, 4, Pos))
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, e(3, 4, Pos), g.Edges()[4])

	nbrs, err := g.AdjacentVertices(4)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[int]{{Vertex: 5, Weight: -1}, {Vertex: 3, Weight: 1}}, nbrs)

	// Duplicates are permitted.
	require.NoError(t, g.AddEdge(3, 4, Pos))
	assert.Equal(t, 6, g.EdgeCount())
}

func TestAddEdge_SelfLoopMirroredOnce(t *testing.T) {
	g := sampleGraph(t)
	require.NoError(t, g.AddEdge(1, 1, Neg))

	nbrs, err := g.AdjacentVertices(1)
	require.NoError(t, err)
	assert.Len(t, nbrs, 3)

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestSelfLoop_AdjacencyEntries(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.MustGraph("loop", []int{1, 2}, []core.Edge[int]{e(1, 1, Pos), e(1, 2, Neg)},
			core.WithDirected(directed))

		nbrs, err := g.AdjacentVertices(1)
		require.NoError(t, err)
		assert.Equal(t, []core.Neighbor[int]{{Vertex: 1, Weight: 1}, {Vertex: 2, Weight: -1}}, nbrs,
			"directed=%v", directed)

		d, err := g.Degree(1)
		require.NoError(t, err)
		assert.Equal(t, 2, d, "directed=%v", directed)
	}
}

func TestAddEdge_UndeclaredEndpoint(t *testing.T) {
	g := sampleGraph(t)

	err := g.AddEdge(1, 9, Pos)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	err = g.AddEdge(9, 1, Pos)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	// Nothing was recorded.
	assert.Equal(t, 4, g.EdgeCount())
	nbrs, err := g.AdjacentVertices(1)
	require.NoError(t, err)
	assert.Len(t, nbrs, 2)
	assert.False(t, g.HasVertex(9))
}

func TestDegrees(t *testing.T) {
	g := sampleGraph(t)

	cases := []struct {
		v             int
		deg, pos, neg int
	}{
		{1, 2, 2, 0},
		{2, 2, 1, 1},
		{3, 2, 1, 1},
		{4, 1, 0, 1},
		{5, 1, 0, 1},
	}
	for _, tc := range cases {
		d, err := g.Degree(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.deg, d, "Degree(%d)", tc.v)

		p, err := g.PositiveDegree(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.pos, p, "PositiveDegree(%d)", tc.v)

		n, err := g.NegativeDegree(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.neg, n, "NegativeDegree(%d)", tc.v)

		// Degree symmetry for non-zero weights.
		assert.Equal(t, d, p+n)
	}

	assert.Equal(t, 2, g.MaxDegree())
	assert.Equal(t, 2, g.MaxPositiveDegree())
	assert.Equal(t, 1, g.MaxNegativeDegree())
}

func TestDegrees_IgnoreAdjacencyMode(t *testing.T) {
	g := sampleGraph(t, core.WithDirected(true))
	d, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, 2, g.MaxDegree())
}

func TestDegrees_ZeroWeightEdge(t *testing.T) {
	g := core.MustGraph("z", []int{1, 2}, []core.Edge[int]{e(1, 2, 0)})
	d, _ := g.Degree(1)
	p, _ := g.PositiveDegree(1)
	n, _ := g.NegativeDegree(1)
	assert.Equal(t, 1, d)
	assert.Zero(t, p)
	assert.Zero(t, n)
}

func TestDegrees_Unknown(t *testing.T) {
	g := sampleGraph(t)
	_, err := g.Degree(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.PositiveDegree(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NegativeDegree(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMaxDegree_Empty(t *testing.T) {
	g := core.MustGraph[int]("", nil, nil)
	assert.Zero(t, g.MaxDegree())
}

func TestStringVertices(t *testing.T) {
	g := labelledGraph(t)
	d, err := g.Degree("carol")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	n, err := g.NegativeDegree("carol")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	nbrs, err := g.AdjacentVertices("dave")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[string]{{Vertex: "carol", Weight: -1}}, nbrs)
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "1 2 -1", e(1, 2, Neg).String())
	assert.Equal(t, "a b 3", core.Edge[string]{From: "a", To: "b", Weight: 3}.String())
}
