package reduce

import "github.com/katalvlaran/balanced/core"

// Edge is a single directed edge of a plain (non-balanced) digraph: the
// input GraphToBalanced doubles into a skew-symmetric host.
type Edge struct {
	From, To int64
	Lower    int64
	Capacity int64
	Cost     int64
}

// GraphToBalanced builds a balanced host over n plain nodes by node
// doubling: plain node v maps to real node 2v and its freshly-introduced
// complement 2v+1, and every plain edge (u, v) becomes one core.MemHost
// quartet between 2u and 2v (whose complement arcs run between 2v+1 and
// 2u+1, nodes that never appear in any caller-supplied edge). The result
// satisfies core.Host.IsAlreadySkewSymmetric by construction, so it can be
// handed directly to MaxBalancedFlow/MinCostBalancedFlow.
//
// This is the adapter a caller reaches for when the thing they actually
// have is an ordinary directed flow or transportation network rather than
// a balanced one to begin with -- the doubling discards no information
// since the added complement half of the network never carries any of the
// original problem's capacity or cost.
func GraphToBalanced(n int64, edges []Edge) *core.MemHost {
	h := core.NewMemHost(core.Node(n * 2))
	for _, e := range edges {
		h.AddEdge(core.Node(e.From*2), core.Node(e.To*2), e.Lower, e.Capacity, e.Cost)
	}

	return h
}
