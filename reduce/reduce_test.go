package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/reduce"
)

func TestMaxBalancedFlowSimplePath(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 3, 0)

	flow, err := reduce.MaxBalancedFlow(h, 0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), flow)
}

func TestMaxBalancedFlowSecondCallFindsNothing(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 3, 0)
	cfg := core.DefaultConfig()

	first, err := reduce.MaxBalancedFlow(h, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first)

	second, err := reduce.MaxBalancedFlow(h, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestMaxBalancedFlowMicaliVaziraniMatchesDefault(t *testing.T) {
	build := func() *core.MemHost {
		h := core.NewMemHost(4)
		h.AddEdge(0, 2, 0, 3, 0)

		return h
	}

	h0 := build()
	flow0, err := reduce.MaxBalancedFlow(h0, 0, core.DefaultConfig())
	require.NoError(t, err)

	h1 := build()
	flow1, err := reduce.MaxBalancedFlow(h1, 0, core.DefaultConfig(core.WithAlgorithm(core.AlgoMicaliVazirani)))
	require.NoError(t, err)

	assert.Equal(t, flow0, flow1)
}

func TestMinCostBalancedFlowFindsCheapestPath(t *testing.T) {
	h := core.NewMemHost(6)
	h.AddEdge(0, 2, 0, 2, 3)
	h.AddEdge(2, 4, 0, 2, 4)

	flow, cost, err := reduce.MinCostBalancedFlow(h, 0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(2), flow)
	assert.Equal(t, int64(14), cost)
}

func TestBalancedScalingMatchesDefaultRecipe(t *testing.T) {
	build := func() *core.MemHost {
		h := core.NewMemHost(4)
		h.AddEdge(0, 2, 0, 7, 0)

		return h
	}

	h0 := build()
	flow0, err := reduce.MaxBalancedFlow(h0, 0, core.DefaultConfig())
	require.NoError(t, err)

	h1 := build()
	flow1, err := reduce.BalancedScaling(h1, 0, core.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, flow0, flow1)
}

func TestAnsteeProducesBalancedFlow(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 5, 0)

	flow, odd, err := reduce.Anstee(h, 0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(5), flow)
	assert.Empty(t, odd)

	for a := core.Arc(0); a < h.ArcCount(); a++ {
		assert.Equal(t, h.Flow(a), h.Flow(h.ComplementArc(a)), "arc %d not balanced after Anstee repair", a)
	}
}

func TestCancelEvenResolvesTwoArcCycle(t *testing.T) {
	h := core.NewMemHost(4)
	ab := h.AddEdge(0, 2, 0, 2, 0) // a0: 0->2, a1: 2->0, a2: 3->1 (complement), a3: 1->3
	ba := h.AddEdge(2, 0, 0, 2, 0) // a4: 2->0, a5: 0->2, a6: 1->3 (complement), a7: 3->1

	h.SetStartingFlow(ab, 1)   // f(0->2) = 1, f(complement 3->1) left at 0: discrepancy 1
	h.SetStartingFlow(ba, 1)   // f(2->0) = 1, f(complement 1->3) left at 0: discrepancy 1

	net := core.NewSkewNetwork(h)
	net.Relax()

	cancelled, odd := reduce.CancelEven(net)
	assert.Equal(t, 1, cancelled)
	assert.Empty(t, odd)
	assert.Equal(t, int64(0), h.Flow(ab))
	assert.Equal(t, int64(0), h.Flow(ba))
}

func TestGraphToBalancedProducesSkewSymmetricHost(t *testing.T) {
	h := reduce.GraphToBalanced(3, []reduce.Edge{
		{From: 0, To: 1, Capacity: 4},
		{From: 1, To: 2, Capacity: 4},
	})

	require.NoError(t, core.ValidateHost(h))
	assert.True(t, h.IsAlreadySkewSymmetric())

	flow, err := reduce.MaxBalancedFlow(h, 0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(4), flow)
}

func TestMaxBalancedFlowRespectsLowerBound(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 1, 3, 0) // lower bound of 1 on the bottleneck edge
	h.AddEdge(2, 1, 0, 5, 0)

	flow, err := reduce.MaxBalancedFlow(h, 0, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), flow)

	for a := core.Arc(0); a < h.ArcCount(); a++ {
		assert.GreaterOrEqual(t, h.Flow(a), h.Lower(a), "arc %d below its lower bound", a)
	}
}

func TestMaxBalancedFlowReportsInfeasibleOnDirectLowerBoundedSelfLoop(t *testing.T) {
	h := core.NewMemHost(2)
	h.AddEdge(0, 1, 2, 5, 0) // arc directly between the source and its own complement

	_, err := reduce.MaxBalancedFlow(h, 0, core.DefaultConfig())
	assert.ErrorIs(t, err, core.ErrInfeasible)
}

func TestMinCostBalancedFlowReportsInfeasibleOnDirectLowerBoundedSelfLoop(t *testing.T) {
	h := core.NewMemHost(2)
	h.AddEdge(0, 1, 2, 5, 3)

	_, _, err := reduce.MinCostBalancedFlow(h, 0, core.DefaultConfig())
	assert.ErrorIs(t, err, core.ErrInfeasible)
}

func TestBalancedToBalancedAddsAuxiliaryArcsPerCycle(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 3, 0)
	before := h.ArcCount()

	nh, auxSource := reduce.BalancedToBalanced(h, [][]core.Node{{0}, {2}})

	assert.Equal(t, h.NodeCount()+4, nh.NodeCount())
	assert.Equal(t, before+2*2*4, nh.ArcCount()) // 2 cycles * 2 edges (in, out) * 4 arcs/edge
	assert.Equal(t, h.NodeCount(), auxSource)
}
