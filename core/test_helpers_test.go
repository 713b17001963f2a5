// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Pos = int64(1)
	Neg = int64(-1)
)

// e is a short constructor for integer edges.
func e(u, v int, w int64) core.Edge[int] {
	return core.Edge[int]{From: u, To: v, Weight: w}
}

// sampleGraph RETURNS the five-vertex reference graph
//
//	1 2 1
//	1 3 1
//	2 3 -1
//	4 5 -1
//
// in the requested adjacency mode.
func sampleGraph(t testing.TB, opts ...core.GraphOption) *core.Graph[int] {
	t.Helper()
	g, err := core.NewGraph("sample",
		[]int{1, 2, 3, 4, 5},
		[]core.Edge[int]{e(1, 2, Pos), e(1, 3, Pos), e(2, 3, Neg), e(4, 5, Neg)},
		opts...)
	require.NoError(t, err)

	return g
}

// labelledGraph RETURNS a string-labelled triangle with a pendant vertex.
func labelledGraph(t testing.TB) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph("trust.csv",
		[]string{"alice", "bob", "carol", "dave"},
		[]core.Edge[string]{
			{From: "alice", To: "bob", Weight: 1},
			{From: "bob", To: "carol", Weight: -1},
			{From: "carol", To: "alice", Weight: 1},
			{From: "dave", To: "carol", Weight: -1},
		})
	require.NoError(t, err)

	return g
}
