package bns

import (
	"math"

	"github.com/katalvlaran/balanced/core"
)

// infinite marks a node that has not yet been reached by the search.
const infinite = int64(math.MaxInt64)

// SearchState holds the per-node labels a balanced network search assigns
// over the course of one BNS invocation: distance, prop (forward discovery arc), petal
// (bridge arc that triggered a blossom), and the members/base of every
// blossom formed along the way. It is owned exclusively by one Search call.
type SearchState struct {
	Source  core.Node
	Dist    []int64
	Prop    []core.Arc
	Petal   []core.Arc
	members map[core.Node][]core.Node // blossomRep -> all nodes merged into it
}

// NewSearchState allocates a SearchState for a network of n nodes, with
// every node unlabelled except Source at distance 0.
func NewSearchState(n core.Node, s core.Node) *SearchState {
	st := &SearchState{
		Source:  s,
		Dist:    make([]int64, n),
		Prop:    make([]core.Arc, n),
		Petal:   make([]core.Arc, n),
		members: make(map[core.Node][]core.Node),
	}
	for v := core.Node(0); v < n; v++ {
		st.Dist[v] = infinite
		st.Prop[v] = core.NoArc
		st.Petal[v] = core.NoArc
	}
	st.Dist[s] = 0

	return st
}

// Reached reports whether v has been assigned a finite distance.
func (st *SearchState) Reached(v core.Node) bool { return st.Dist[v] != infinite }

// Tenacity returns d(v) + d(v̄) + 1 for an interior blossom node v, given
// the complement distance dComplement.
func Tenacity(dv, dComplement int64) int64 { return dv + dComplement + 1 }

// recordBlossom remembers which original nodes were merged into the
// blossom represented by rep, so Expand can later re-derive an interior
// path for any node that was labelled by formula rather than direct BFS
// relaxation.
func (st *SearchState) recordBlossom(rep core.Node, nodes []core.Node) {
	st.members[rep] = append(st.members[rep], nodes...)
}

// BlossomMembers returns every node merged into the blossom represented by
// rep, or nil if rep names no blossom this search created.
func (st *SearchState) BlossomMembers(rep core.Node) []core.Node { return st.members[rep] }
