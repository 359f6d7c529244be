package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/graph"
)

func TestAddEdge_Errors(t *testing.T) {
	g := graph.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "a"), graph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("a", "a"), graph.ErrLoopNotAllowed)
	assert.Zero(t, g.VertexCount())

	loops := graph.NewGraph(graph.WithLoops())
	require.NoError(t, loops.AddEdge("a", "a"))
	assert.True(t, loops.HasEdge("a", "a"))
}

func TestUndirected(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("kh", "tc"))
	require.NoError(t, g.AddEdge("qp", "kh"))
	require.NoError(t, g.AddEdge("tc", "kh")) // duplicate in reverse

	assert.False(t, g.Directed())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("tc", "kh"))
	assert.True(t, g.HasEdge("kh", "tc"))
	assert.False(t, g.HasEdge("qp", "tc"))
	assert.Equal(t, []string{"kh", "qp", "tc"}, g.Vertices())

	ns, err := g.Neighbors("kh")
	require.NoError(t, err)
	assert.Equal(t, []string{"qp", "tc"}, ns)

	deg, err := g.Degree("kh")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestDirected(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddEdge("47", "53"))
	require.NoError(t, g.AddEdge("97", "47"))

	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("47", "53"))
	assert.False(t, g.HasEdge("53", "47"))

	ns, err := g.Neighbors("53")
	require.NoError(t, err)
	assert.Empty(t, ns)

	require.NoError(t, g.AddVertex("13"))
	assert.True(t, g.HasVertex("13"))
	assert.Equal(t, []string{"13", "47", "53", "97"}, g.Vertices())
}

func TestLookups_MissingVertex(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.Neighbors("x")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.Degree("x")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.NeighborSet("x")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.False(t, g.HasEdge("x", "y"))
}

func TestNeighborSet_IsACopy(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	set, err := g.NeighborSet("a")
	require.NoError(t, err)
	assert.True(t, set.Has("b"))

	set.Put("z")
	assert.False(t, g.HasEdge("a", "z"))
}
