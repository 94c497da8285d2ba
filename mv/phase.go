package mv

import "github.com/katalvlaran/balanced/core"

// runPhase performs one minlevel BFS labelling from s over net's current
// residual network, resolving every bridge it meets via ddfs as it goes.
// It returns the resulting searchState whether or not sink was reached;
// st.reached(sink) tells the caller whether expand/augment can proceed.
func runPhase(net *core.SkewNetwork, nf *core.NestedFamily, s core.Node) *searchState {
	h := net.Host()
	st := newSearchState(h.NodeCount(), s)
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

			wReached := st.reached(w)
			wbarReached := st.reached(h.ComplementNode(w))

			switch {
			case !wReached && !wbarReached:
				st.prop[w] = a
				st.dist[w] = st.dist[u] + 1
				queue = append(queue, w)

			case !wReached && wbarReached:
				queue = resolveBridge(net, nf, st, queue, a)

			default:
				// both sides already labelled: nothing new to learn here.
			}
		}
	}

	return st
}

// resolveBridge runs ddfs on the just-discovered bridge arc, merges the
// returned half-chains (and their complements) into one blossom, and
// labels any newly-reachable complement nodes so the BFS can continue
// through them.
func resolveBridge(net *core.SkewNetwork, nf *core.NestedFamily, st *searchState, queue []core.Node, bridge core.Arc) []core.Node {
	h := net.Host()
	u := h.Tail(bridge)
	w := h.Head(bridge)
	wbar := h.ComplementNode(w)

	base, left, right, ok := ddfs(net, nf, st, bridge)
	if !ok {
		return queue
	}

	members := append(trimToBase(left, base), trimToBase(right, base)...)
	if len(members) == 0 {
		return queue
	}

	rep := nf.Find(base)
	for _, m := range members {
		mr := nf.Find(m)
		if mr != rep {
			rep = nf.Merge(rep, mr, base)
		}
		mc := h.ComplementNode(m)
		mcr := nf.Find(mc)
		if mcr != rep {
			rep = nf.Merge(rep, mcr, base)
		}
	}
	st.recordBlossom(rep, members)

	tenacity := st.dist[u] + st.dist[wbar] + 1
	for _, m := range members {
		z := h.ComplementNode(m)
		if st.reached(z) {
			continue
		}
		st.dist[z] = tenacity - st.dist[m]
		queue = append(queue, z)
	}

	return queue
}

// trimToBase returns chain with every node from base onward removed: ddfs
// reports chains inclusive of base, which is the blossom's anchor rather
// than a member to merge into it.
func trimToBase(chain []core.Node, base core.Node) []core.Node {
	out := make([]core.Node, 0, len(chain))
	for _, n := range chain {
		if n == base {
			break
		}
		out = append(out, n)
	}

	return out
}
