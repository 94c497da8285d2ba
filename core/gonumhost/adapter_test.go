package gonumhost_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/core/gonumhost"
)

func buildTriangle() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 4})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(0), W: 6})

	return g
}

func TestFromWeightedDirectedProducesValidHost(t *testing.T) {
	g := buildTriangle()

	h, err := gonumhost.FromWeightedDirected(g, nil, false)
	require.NoError(t, err)
	require.NoError(t, core.ValidateHost(h))

	// 3 gonum nodes padded to 4 -> 8 balanced nodes; 3 edges -> 12 arcs.
	require.Equal(t, core.Node(8), h.NodeCount())
	require.Equal(t, core.Arc(12), h.ArcCount())
}

func TestToWeightedDirectedRoundTrips(t *testing.T) {
	g := buildTriangle()
	h, err := gonumhost.FromWeightedDirected(g, nil, false)
	require.NoError(t, err)

	out := gonumhost.ToWeightedDirected(h)
	require.Equal(t, 4, out.Nodes().Len())
}
