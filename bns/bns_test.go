package bns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/balanced/bns"
	"github.com/katalvlaran/balanced/core"
)

func TestSearchAndAugmentSimplePath(t *testing.T) {
	h := core.NewMemHost(6) // 3 complementary pairs: (0,1) (2,3) (4,5)
	arc1 := h.AddEdge(0, 2, 0, 1, 0)
	arc2 := h.AddEdge(2, 4, 0, 1, 0)

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	st, err := bns.Search(net, nf, 0, 4, core.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, st.Reached(4))

	pushed, err := bns.Augment(net, nf, st, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pushed)

	assert.Equal(t, int64(1), h.Flow(arc1))
	assert.Equal(t, int64(1), h.Flow(arc2))
}

func TestSearchReportsNoAugmentingWalk(t *testing.T) {
	h := core.NewMemHost(4) // (0,1) (2,3), no edges at all
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	st, err := bns.Search(net, nf, 0, 2, core.DefaultConfig())
	assert.ErrorIs(t, err, bns.ErrNoAugmentingWalk)
	assert.False(t, st.Reached(2))
}

// TestSearchShrinksBlossomAndStillAugments builds a network where the
// sink is only reached after a petal arc forces an odd-cycle shrink: s has
// two direct branches (to node 2 and node 4), and an arc from node 2 into
// the complement of node 4 closes the bridge. The shrink must still leave
// enough labelled nodes for a real augmenting walk to reach the sink.
func TestSearchShrinksBlossomAndStillAugments(t *testing.T) {
	h := core.NewMemHost(8) // (0,1) (2,3) (4,5) (6,7); sink = 6
	h.AddEdge(0, 2, 0, 1, 0) // s -> a
	h.AddEdge(0, 4, 0, 1, 0) // s -> b
	h.AddEdge(2, 5, 0, 1, 0) // a -> b̄ : bridge, closes the odd cycle
	h.AddEdge(3, 6, 0, 1, 0) // ā -> t

	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())

	st, err := bns.Search(net, nf, 0, 6, core.DefaultConfig())
	require.NoError(t, err)
	require.True(t, st.Reached(6))

	// The petal case must have merged node 2 and node 4 (and complements)
	// into a shared blossom rooted at the source.
	assert.Equal(t, nf.Find(2), nf.Find(4))

	pushed, err := bns.Augment(net, nf, st, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pushed)
}
