package primaldual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/primaldual"
)

func TestPrimalDual0FindsCheapestPath(t *testing.T) {
	h := core.NewMemHost(6)
	h.AddEdge(0, 2, 0, 2, 3)
	h.AddEdge(2, 4, 0, 2, 4)

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	flow, cost, err := primaldual.PrimalDual0(g, 0, 4, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(2), flow)
	assert.Equal(t, int64(14), cost)
}

func TestPrimalDual1MatchesPrimalDual0(t *testing.T) {
	build := func() (*core.MemHost, *core.SkewNetwork, *core.NestedFamily) {
		h := core.NewMemHost(6)
		h.AddEdge(0, 2, 0, 2, 3)
		h.AddEdge(2, 4, 0, 2, 4)
		net := core.NewSkewNetwork(h)
		nf := core.NewNestedFamily(h.NodeCount())

		return h, net, nf
	}

	_, net0, nf0 := build()
	g0 := primaldual.NewGraph(net0, nf0)
	flow0, cost0, err := primaldual.PrimalDual0(g0, 0, 4, core.DefaultConfig())
	require.NoError(t, err)

	_, net1, nf1 := build()
	g1 := primaldual.NewGraph(net1, nf1)
	flow1, cost1, err := primaldual.PrimalDual1(g1, 0, 4, core.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, flow0, flow1)
	assert.Equal(t, cost0, cost1)
}

func TestPrimalDual0ReturnsCleanZeroWhenSinkUnreachable(t *testing.T) {
	h := core.NewMemHost(4)
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	flow, cost, err := primaldual.PrimalDual0(g, 0, 2, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), flow)
	assert.Equal(t, int64(0), cost)
}

func TestPrimalDual0ZeroCostNetworkStillFindsMaxFlow(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 3, 0)

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	flow, cost, err := primaldual.PrimalDual0(g, 0, 2, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), flow)
	assert.Equal(t, int64(0), cost)
}

// TestPrimalDual0ShrinksBlossomAndStillAugments mirrors the bns/mv search
// topology where the sink is only reached after a petal arc forces an
// odd-cycle shrink: s has two direct branches (to node 2 and node 4), and
// an arc from node 2 into the complement of node 4 closes the bridge.
// PrimalDual0 must shrink that blossom, seed its dual, and still find the
// single augmenting path through to the sink.
func TestPrimalDual0ShrinksBlossomAndStillAugments(t *testing.T) {
	h := core.NewMemHost(8) // (0,1) (2,3) (4,5) (6,7); sink = 6
	h.AddEdge(0, 2, 0, 1, 0) // s -> a
	h.AddEdge(0, 4, 0, 1, 0) // s -> b
	h.AddEdge(2, 5, 0, 1, 0) // a -> b̄ : bridge, closes the odd cycle
	h.AddEdge(3, 6, 0, 1, 0) // ā -> t

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	flow, cost, err := primaldual.PrimalDual0(g, 0, 6, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), flow)
	assert.Equal(t, int64(0), cost)
}

// TestPrimalDual1ShrinksBlossomWithWeightedBridge runs the same bridge
// topology through the modified-length-table recipe, with a nonzero cost
// on the bridge arc the single augmenting path must cross. The blossom
// dual and node potentials have to coexist correctly for the reported
// cost to still equal the one path's own arc cost.
func TestPrimalDual1ShrinksBlossomWithWeightedBridge(t *testing.T) {
	h := core.NewMemHost(8) // (0,1) (2,3) (4,5) (6,7); sink = 6
	h.AddEdge(0, 2, 0, 1, 0) // s -> a
	h.AddEdge(0, 4, 0, 1, 0) // s -> b
	h.AddEdge(2, 5, 0, 1, 5) // a -> b̄ : bridge, cost 5
	h.AddEdge(3, 6, 0, 1, 0) // ā -> t

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	flow, cost, err := primaldual.PrimalDual1(g, 0, 6, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), flow)
	assert.Equal(t, int64(5), cost)
}

func TestCompatibleHoldsAtStart(t *testing.T) {
	h := core.NewMemHost(6)
	h.AddEdge(0, 2, 0, 2, 3)
	h.AddEdge(2, 4, 0, 2, 4)
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)

	assert.NoError(t, primaldual.Compatible(g))
}
