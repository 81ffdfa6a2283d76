package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/rwa/topology"
)

func ids(nodes graph.Nodes) []int64 {
	var out []int64
	for nodes.Next() {
		out = append(out, nodes.Node().ID())
	}

	return out
}

func TestFiberGraph(t *testing.T) {
	in, err := topology.Uniform(3, 2)
	require.NoError(t, err)
	in.Pw[0][2][1] = 0

	g, err := in.FiberGraph(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, ids(g.Nodes()))
	// The self fiber 0→0 has capacity but is never an edge.
	assert.Equal(t, []int64{1}, ids(g.From(0)))
	assert.Equal(t, []int64{1}, ids(g.To(2)))
	assert.True(t, g.HasEdgeFromTo(2, 0))
	assert.False(t, g.HasEdgeFromTo(0, 2))
	assert.True(t, g.HasEdgeBetween(0, 2))
	assert.Nil(t, g.Edge(0, 2))
	assert.Nil(t, g.Edge(1, 1))
	assert.Nil(t, g.Node(3))
	require.NotNil(t, g.Edge(0, 1))
	assert.Equal(t, int64(1), g.Edge(0, 1).To().ID())

	_, err = in.FiberGraph(2)
	require.ErrorIs(t, err, topology.ErrWavelengthOutOfRange)
	in.TR = nil
	_, err = in.FiberGraph(0)
	require.ErrorIs(t, err, topology.ErrShapeMismatch)
}

func TestFiberGraph_Path(t *testing.T) {
	line, err := topology.Line(4, 1)
	require.NoError(t, err)
	g, err := line.FiberGraph(0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, g.Path(0, 3))
	assert.Equal(t, []int{3, 2}, g.Path(3, 2))
	assert.Nil(t, g.Path(1, 1))
	assert.Nil(t, g.Path(0, 4))

	line.Pw[1][2][0] = 0
	assert.Nil(t, g.Path(0, 3), "the graph reads the live tensor")
}

func TestFiberGraph_PathTies(t *testing.T) {
	// 0→1→3 and 0→2→3 tie on hops; the lower index wins every time.
	n := 4
	g := topology.NewFiberGraph(n, func(a, b int) bool {
		return (a == 0 && (b == 1 || b == 2)) || ((a == 1 || a == 2) && b == 3)
	})
	for range 10 {
		require.Equal(t, []int{0, 1, 3}, g.Path(0, 3))
	}
}
