package bns

import (
	"github.com/katalvlaran/balanced/core"
)

// KocayStone runs the exact O(n*m) balanced network search from source s
// over net's current residual network, labelling every node it reaches and
// shrinking every odd blossom it discovers into nf. It returns the
// resulting SearchState whether or not the sink was reached; callers use
// Reached to test for success.
func KocayStone(net *core.SkewNetwork, nf *core.NestedFamily, s core.Node) *SearchState {
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
				continue // already the same blossom, arc is internal
			}

			wReached := st.Reached(w)
			wbarReached := st.Reached(h.ComplementNode(w))

			switch {
			case !wReached && !wbarReached:
				// prop: w is discovered for the first time.
				st.Prop[w] = a
				st.Dist[w] = st.Dist[u] + 1
				queue = append(queue, w)

			case !wReached && wbarReached:
				// petal: w's complement is already labelled, so arc a is a
				// bridge closing an odd cycle. Shrink it into a blossom.
				queue = shrinkBlossom(net, nf, st, queue, u, w, a)

			default:
				// both w and its complement are already reached: nothing
				// new to learn from this arc.
			}
		}
	}

	return st
}

// shrinkBlossom handles the petal case of KocayStone: arc a = (u, w) is a
// bridge because w̄ already carries a finite distance while w does not.
// It locates the blossom base via the nested-family climb described in
// DESIGN.md, merges every node on both half-chains (and their complements)
// into one blossom, and labels any newly reached complement nodes so the
// search can continue through the blossom's own outgoing arcs.
//
// This is a deliberate simplification of the textbook surface-graph
// scanning: newly labelled interior nodes are pushed onto the ordinary BFS
// queue rather than processed at blossom granularity. It remains correct
// for finding a single augmenting walk; it is not the asymptotically
// optimal linear-time construction.
func shrinkBlossom(
	net *core.SkewNetwork, nf *core.NestedFamily, st *SearchState,
	queue []core.Node, u, w core.Node, bridge core.Arc,
) []core.Node {
	h := net.Host()
	wbar := h.ComplementNode(w)

	chainU := climbChain(net, nf, st, u)
	chainW := climbChain(net, nf, st, wbar)

	x, ok := lowestCommonAncestor(chainU, chainW)
	if !ok {
		// No common ancestor: the two chains belong to disjoint search
		// trees (shouldn't happen once both are reachable through the
		// same BFS run), so there is nothing consistent to shrink.
		return queue
	}

	base := x
	for st.Prop[base] != core.NoArc && net.BalancedResidual(st.Prop[base]) > 1 {
		base = net.Host().Tail(st.Prop[base])
	}

	members := append(nodesUpTo(chainU, base), nodesUpTo(chainW, base)...)
	if len(members) == 0 {
		return queue
	}

	rep := nf.Find(base)
	for _, m := range members {
		mr := nf.Find(m)
		if mr == rep {
			continue
		}
		rep = nf.Merge(rep, mr, base)

		mc := h.ComplementNode(m)
		mcr := nf.Find(mc)
		if mcr != rep {
			rep = nf.Merge(rep, mcr, base)
		}
	}
	st.recordBlossom(rep, members)

	tenacity := st.Dist[u] + st.Dist[wbar] + 1
	for _, m := range members {
		z := h.ComplementNode(m)
		if st.Reached(z) {
			continue
		}
		st.Petal[z] = bridge
		st.Dist[z] = tenacity - st.Dist[m]
		queue = append(queue, z)
	}

	return queue
}

// climbChain walks prop arcs from v back towards the source, jumping to a
// blossom's recorded base whenever v's current nested-family group has
// already been shrunk, and returns every node visited in order (v first).
func climbChain(net *core.SkewNetwork, nf *core.NestedFamily, st *SearchState, v core.Node) []core.Node {
	var chain []core.Node
	cur := v
	seen := make(map[core.Node]bool)
	for {
		if seen[cur] {
			break
		}
		seen[cur] = true
		chain = append(chain, cur)

		rep := nf.Find(cur)
		base := nf.Base(rep)
		if base != cur {
			cur = base
			continue
		}
		if st.Prop[cur] == core.NoArc {
			break
		}
		cur = net.Host().Tail(st.Prop[cur])
	}

	return chain
}

// lowestCommonAncestor returns the first node in a that also occurs in b.
func lowestCommonAncestor(a, b []core.Node) (core.Node, bool) {
	inB := make(map[core.Node]bool, len(b))
	for _, n := range b {
		inB[n] = true
	}
	for _, n := range a {
		if inB[n] {
			return n, true
		}
	}

	return core.NoNode, false
}

// nodesUpTo returns the prefix of chain strictly before base's first
// occurrence (base itself excluded: it is the blossom's base, not a
// member to merge into it).
func nodesUpTo(chain []core.Node, base core.Node) []core.Node {
	var out []core.Node
	for _, n := range chain {
		if n == base {
			break
		}
		out = append(out, n)
	}

	return out
}
