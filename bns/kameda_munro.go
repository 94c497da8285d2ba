package bns

import "github.com/katalvlaran/balanced/core"

// KamedaMunro runs a depth-first variant of balanced network search: it
// dives along the first residual-positive arc from each node instead of
// exploring breadth-first, which tends to find short augmenting walks in
// sparse, shallow networks faster than KocayStone in practice but gives up
// its worst-case O(n*m) guarantee. If the sink remains unreached after the
// DFS frontier is exhausted, KamedaMunro falls back to a full KocayStone
// pass over the same network before reporting failure, so callers always
// get an exact answer.
func KamedaMunro(net *core.SkewNetwork, nf *core.NestedFamily, s, sink core.Node) *SearchState {
	h := net.Host()
	st := NewSearchState(h.NodeCount(), s)

	var dive func(u core.Node) bool
	dive = func(u core.Node) bool {
		if u == sink {
			return true
		}
		for _, a := range core.Outgoing(h, u) {
			if net.BalancedResidual(a) <= 0 {
				continue
			}
			w := h.Head(a)
			if nf.Find(u) == nf.Find(w) {
				continue
			}

			wReached := st.Reached(w)
			wbarReached := st.Reached(h.ComplementNode(w))
			switch {
			case !wReached && !wbarReached:
				st.Prop[w] = a
				st.Dist[w] = st.Dist[u] + 1
				if dive(w) {
					return true
				}
			case !wReached && wbarReached:
				newly := shrinkBlossom(net, nf, st, nil, u, w, a)
				if st.Reached(sink) {
					return true
				}
				for _, z := range newly {
					if dive(z) {
						return true
					}
				}
			}
		}

		return false
	}

	if dive(s) && st.Reached(sink) {
		return st
	}

	return KocayStone(net, nf, s)
}
