package mv

import "github.com/katalvlaran/balanced/core"

// step advances one node towards the source: it jumps to a blossom's
// recorded base if cur's nested-family group has already been shrunk,
// otherwise follows cur's prop arc one hop. ok is false once cur is the
// phase's own source (no prop arc and already a top-level base).
func step(net *core.SkewNetwork, nf *core.NestedFamily, st *searchState, cur core.Node) (next core.Node, ok bool) {
	rep := nf.Find(cur)
	if base := nf.Base(rep); base != cur {
		return base, true
	}
	if st.prop[cur] == core.NoArc {
		return core.NoNode, false
	}

	return net.Host().Tail(st.prop[cur]), true
}

// ddfs resolves the bridge arc via a double depth-first search: it walks
// two support stacks, one rooted at the bridge's tail and one at the
// complement of its head, always advancing whichever side currently sits
// further from the source (larger dist), until the two sides' visited
// sets intersect at a common node -- the blossom's base -- or both sides
// run out of prop arcs to follow (the bridge does not close a consistent
// blossom, which ValidateHost's invariants should make unreachable in
// practice, but ddfs reports it rather than looping forever).
func ddfs(net *core.SkewNetwork, nf *core.NestedFamily, st *searchState, bridge core.Arc) (base core.Node, left, right []core.Node, ok bool) {
	h := net.Host()
	u := h.Tail(bridge)
	w := h.Head(bridge)
	wbar := h.ComplementNode(w)

	leftStack := newStack[core.Node]()
	rightStack := newStack[core.Node]()
	leftStack.Push(u)
	rightStack.Push(wbar)

	leftSeen := map[core.Node]bool{u: true}
	rightSeen := map[core.Node]bool{wbar: true}

	if rightSeen[u] {
		return u, []core.Node{u}, []core.Node{wbar}, true
	}
	if leftSeen[wbar] {
		return wbar, []core.Node{u}, []core.Node{wbar}, true
	}

	for {
		lTop, lOK := leftStack.Peek()
		rTop, rOK := rightStack.Peek()
		if !lOK && !rOK {
			return core.NoNode, nil, nil, false
		}

		advanceLeft := rOK == false
		if lOK && rOK {
			advanceLeft = st.dist[lTop] >= st.dist[rTop]
		}

		if advanceLeft {
			nxt, moved := step(net, nf, st, lTop)
			if !moved {
				if !rOK {
					return core.NoNode, nil, nil, false
				}
				// left side is stuck; force the right side to advance instead.
				nxt2, moved2 := step(net, nf, st, rTop)
				if !moved2 {
					return core.NoNode, nil, nil, false
				}
				rightStack.Push(nxt2)
				rightSeen[nxt2] = true
				if leftSeen[nxt2] {
					return nxt2, leftStack.Slice(), rightStack.Slice(), true
				}
				continue
			}
			leftStack.Push(nxt)
			leftSeen[nxt] = true
			if rightSeen[nxt] {
				return nxt, leftStack.Slice(), rightStack.Slice(), true
			}
			continue
		}

		nxt, moved := step(net, nf, st, rTop)
		if !moved {
			if !lOK {
				return core.NoNode, nil, nil, false
			}
			nxt2, moved2 := step(net, nf, st, lTop)
			if !moved2 {
				return core.NoNode, nil, nil, false
			}
			leftStack.Push(nxt2)
			leftSeen[nxt2] = true
			if rightSeen[nxt2] {
				return nxt2, leftStack.Slice(), rightStack.Slice(), true
			}
			continue
		}
		rightStack.Push(nxt)
		rightSeen[nxt] = true
		if leftSeen[nxt] {
			return nxt, leftStack.Slice(), rightStack.Slice(), true
		}
	}
}
