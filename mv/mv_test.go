package mv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/mv"
)

func TestRunSimplePath(t *testing.T) {
	h := core.NewMemHost(6)
	h.AddEdge(0, 2, 0, 1, 0)
	h.AddEdge(2, 4, 0, 1, 0)

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	total, err := mv.Run(net, nf, 0, 4, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRunMultiplePhasesSaturatesCapacity(t *testing.T) {
	h := core.NewMemHost(6)
	h.AddEdge(0, 2, 0, 3, 0)
	h.AddEdge(2, 4, 0, 3, 0)

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	total, err := mv.Run(net, nf, 0, 4, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestRunShrinksBlossomAndStillAugments(t *testing.T) {
	h := core.NewMemHost(8) // (0,1) (2,3) (4,5) (6,7); sink = 6
	h.AddEdge(0, 2, 0, 1, 0) // s -> a
	h.AddEdge(0, 4, 0, 1, 0) // s -> b
	h.AddEdge(2, 5, 0, 1, 0) // a -> b̄ : bridge
	h.AddEdge(3, 6, 0, 1, 0) // ā -> t

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	total, err := mv.Run(net, nf, 0, 6, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRunNoPathReturnsZero(t *testing.T) {
	h := core.NewMemHost(4)
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	total, err := mv.Run(net, nf, 0, 2, core.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
