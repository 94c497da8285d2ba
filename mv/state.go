package mv

import (
	"math"

	"github.com/katalvlaran/balanced/core"
)

const infinite = int64(math.MaxInt64)

// searchState holds one phase's minlevel BFS labelling: distance and prop
// arc per node, plus the member sets of blossoms contracted so far this
// phase.
type searchState struct {
	dist    []int64
	prop    []core.Arc
	members map[core.Node][]core.Node
}

func newSearchState(n core.Node, s core.Node) *searchState {
	st := &searchState{
		dist:    make([]int64, n),
		prop:    make([]core.Arc, n),
		members: make(map[core.Node][]core.Node),
	}
	for v := core.Node(0); v < n; v++ {
		st.dist[v] = infinite
		st.prop[v] = core.NoArc
	}
	st.dist[s] = 0

	return st
}

func (st *searchState) reached(v core.Node) bool { return st.dist[v] != infinite }

func (st *searchState) recordBlossom(rep core.Node, nodes []core.Node) {
	st.members[rep] = append(st.members[rep], nodes...)
}
