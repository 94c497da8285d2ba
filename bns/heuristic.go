package bns

import "github.com/katalvlaran/balanced/core"

// HeuristicBF runs a simplified breadth-first pass that relaxes arcs like
// KocayStone but never forms a blossom: when it meets a petal case (w̄
// already reached while w is not) it simply skips the arc instead of
// shrinking an odd cycle. It is cheap and often sufficient on networks
// that happen not to need any blossom on the way to the sink, but it is
// not a certifying algorithm -- it can report failure on a network where a
// blossom-aware search would have found a walk.
//
// Search never dispatches to HeuristicBF on its own; it is reachable only
// through core.AlgoHeuristicFirstPass, which always runs a confirmatory
// KocayStone pass afterwards regardless of what HeuristicBF found.
func HeuristicBF(net *core.SkewNetwork, nf *core.NestedFamily, s core.Node) *SearchState {
	h := net.Host()
	st := NewSearchState(h.NodeCount(), s)
	queue := []core.Node{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, a := range core.Outgoing(h, u) {
			if net.BalancedResidual(a) <= 0 {
				continue
			}
			w := h.Head(a)
			if nf.Find(u) == nf.Find(w) {
				continue
			}
			if st.Reached(w) || st.Reached(h.ComplementNode(w)) {
				continue
			}

			st.Prop[w] = a
			st.Dist[w] = st.Dist[u] + 1
			queue = append(queue, w)
		}
	}

	return st
}
