package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balanced/core"
)

func twoNodeHost(t *testing.T, lower, upper, length int64) *core.MemHost {
	t.Helper()
	h := core.NewMemHost(2)
	h.AddEdge(0, 1, lower, upper, length)

	return h
}

func TestArcOrbit(t *testing.T) {
	var a core.Arc = 4
	assert.Equal(t, core.Arc(5), a.Reverse())
	assert.Equal(t, core.Arc(6), a.Complement())
	assert.Equal(t, core.Arc(7), a.ReverseComplement())
	assert.Equal(t, a, a.Reverse().Reverse())
	assert.Equal(t, a, a.Complement().Complement())
	assert.True(t, a.IsForward())
	assert.False(t, a.Reverse().IsForward())
}

func TestSkewNetworkBalancedPush(t *testing.T) {
	h := twoNodeHost(t, 0, 5, 1)
	net := core.NewSkewNetwork(h)

	require.Equal(t, int64(5), net.BalancedResidual(0))
	require.NoError(t, net.BalancedPush(0, 3))

	assert.Equal(t, int64(3), h.Flow(0))
	assert.Equal(t, int64(3), h.Flow(h.ComplementArc(0)))
	assert.Equal(t, int64(-3), h.Flow(core.Arc(0).Reverse()))
	assert.Equal(t, int64(-3), h.Flow(core.Arc(0).ReverseComplement()))
	assert.Equal(t, int64(2), net.Residual(0))
}

func TestSkewNetworkBalancedPushExceedsCapacity(t *testing.T) {
	h := twoNodeHost(t, 0, 2, 0)
	net := core.NewSkewNetwork(h)

	err := net.BalancedPush(0, 3)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestSkewNetworkBalancedPushRejectsNegative(t *testing.T) {
	h := twoNodeHost(t, 0, 2, 0)
	net := core.NewSkewNetwork(h)

	err := net.BalancedPush(0, -1)
	assert.ErrorIs(t, err, core.ErrRangeViolation)
}

func TestSkewNetworkSymmetrize(t *testing.T) {
	h := twoNodeHost(t, 0, 10, 0)
	// Simulate an ordinary (non-balanced) max-flow result: forward arc
	// carries 4, its complement carries 6.
	h.SetStartingFlow(0, 4)
	h.SetStartingFlow(h.ComplementArc(0), 6)

	net := core.NewSkewNetwork(h)
	net.Relax()
	assert.False(t, net.IsBalanced())

	hadHalfIntegral := net.Symmetrize()
	assert.True(t, net.IsBalanced())
	assert.Equal(t, h.Flow(0), h.Flow(h.ComplementArc(0)))
	assert.Equal(t, int64(5), h.Flow(0))
	assert.False(t, hadHalfIntegral)
}

func TestSkewNetworkHalfIntegral(t *testing.T) {
	h := twoNodeHost(t, 0, 10, 0)
	h.SetStartingFlow(0, 3)
	h.SetStartingFlow(h.ComplementArc(0), 6)

	net := core.NewSkewNetwork(h)
	assert.True(t, net.HalfIntegral(0))
}

func TestSkewNetworkSymmetrizeReportsHalfIntegral(t *testing.T) {
	h := twoNodeHost(t, 0, 10, 0)
	h.SetStartingFlow(0, 3)
	h.SetStartingFlow(h.ComplementArc(0), 6)

	net := core.NewSkewNetwork(h)
	require.True(t, net.HalfIntegral(0)) // must be checked before Symmetrize folds the arc

	hadHalfIntegral := net.Symmetrize()
	assert.True(t, hadHalfIntegral)
	assert.Equal(t, int64(4), h.Flow(0))
	assert.Equal(t, h.Flow(0), h.Flow(h.ComplementArc(0)))
	assert.False(t, net.HalfIntegral(0)) // the half unit is gone, not preserved, after folding
}

func TestValidateHostCatchesOddNodeCount(t *testing.T) {
	h := core.NewMemHost(3)
	err := core.ValidateHost(h)
	assert.ErrorIs(t, err, core.ErrRangeViolation)
}

func TestValidateHostAcceptsWellFormedHost(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 3, 1)
	h.AddEdge(2, 0, 0, 3, 1)

	require.NoError(t, core.ValidateHost(h))
}

func TestOutgoing(t *testing.T) {
	h := core.NewMemHost(4)
	h.AddEdge(0, 2, 0, 1, 0)
	h.AddEdge(0, 3, 0, 1, 0)

	out := core.Outgoing(h, 0)
	assert.Len(t, out, 2)
}
