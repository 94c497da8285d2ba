package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/balanced/core"
)

func TestNestedFamilySingletons(t *testing.T) {
	nf := core.NewNestedFamily(4)
	for v := core.Node(0); v < 4; v++ {
		assert.True(t, nf.Top(v))
		assert.Equal(t, v, nf.Find(v))
	}
}

func TestNestedFamilyMergeAndSplit(t *testing.T) {
	nf := core.NewNestedFamily(6)
	rep := nf.Merge(0, 1, 0)
	rep = nf.Merge(rep, 2, 0)

	assert.Equal(t, nf.Find(0), nf.Find(1))
	assert.Equal(t, nf.Find(1), nf.Find(2))
	assert.False(t, nf.Top(1))
	assert.True(t, nf.Top(rep))
	assert.Equal(t, core.Node(0), nf.Base(1))

	// A disjoint node is unaffected.
	assert.True(t, nf.Top(3))

	children := nf.Split(rep)
	assert.NotEmpty(t, children)
	for v := core.Node(0); v < 3; v++ {
		assert.True(t, nf.Top(v))
	}
}

func TestNestedFamilyMergeIntoGrowsIncrementally(t *testing.T) {
	nf := core.NewNestedFamily(5)
	rep := nf.Merge(0, 1, 0)
	nf.MergeInto(rep, 2)

	assert.Equal(t, rep, nf.Find(2))
	assert.True(t, nf.Top(rep))
}

func TestNestedFamilyBlockUnblock(t *testing.T) {
	nf := core.NewNestedFamily(4)
	rep := nf.Merge(0, 1, 0)

	restore := nf.Block(0)
	assert.True(t, nf.IsBlocked(0))
	assert.Equal(t, core.Node(0), nf.Find(0))

	nf.Unblock(0, restore)
	assert.False(t, nf.IsBlocked(0))
	assert.Equal(t, rep, nf.Find(0))
}
