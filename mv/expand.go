package mv

import (
	"fmt"

	"github.com/katalvlaran/balanced/core"
)

// expand reconstructs the real arc sequence from st's source to target,
// resolving blossom-interior segments with the same bounded, capacity-
// respecting DFS bns.Expand uses: a node reached only through a shrunk
// blossom gets a fresh path search within that blossom's recorded member
// set, so every returned arc is augmentable at the moment of expansion.
func expand(net *core.SkewNetwork, nf *core.NestedFamily, st *searchState, source, target core.Node) ([]core.Arc, error) {
	if target == source {
		return nil, nil
	}

	if st.prop[target] != core.NoArc {
		prefix, err := expand(net, nf, st, source, net.Host().Tail(st.prop[target]))
		if err != nil {
			return nil, err
		}

		return append(prefix, st.prop[target]), nil
	}

	rep := nf.Find(target)
	base := nf.Base(rep)
	if base == target {
		return nil, fmt.Errorf("%w: node %d has no discovery label", core.ErrInternalInconsistency, target)
	}

	prefix, err := expand(net, nf, st, source, base)
	if err != nil {
		return nil, err
	}

	inner, err := interiorPath(net, st, rep, base, target)
	if err != nil {
		return nil, err
	}

	return append(prefix, inner...), nil
}

func interiorPath(net *core.SkewNetwork, st *searchState, rep, base, target core.Node) ([]core.Arc, error) {
	allowed := map[core.Node]bool{base: true, target: true}
	for _, m := range st.members[rep] {
		allowed[m] = true
		allowed[net.Host().ComplementNode(m)] = true
	}

	visited := map[core.Node]bool{}
	path, ok := dfsWithin(net, allowed, visited, base, target)
	if !ok {
		return nil, fmt.Errorf("%w: no interior path from %d to %d in blossom", core.ErrInternalInconsistency, base, target)
	}

	return path, nil
}

func dfsWithin(net *core.SkewNetwork, allowed, visited map[core.Node]bool, cur, target core.Node) ([]core.Arc, bool) {
	if cur == target {
		return nil, true
	}
	visited[cur] = true

	h := net.Host()
	for _, a := range core.Outgoing(h, cur) {
		w := h.Head(a)
		if !allowed[w] || visited[w] || net.BalancedResidual(a) <= 0 {
			continue
		}
		if rest, ok := dfsWithin(net, allowed, visited, w, target); ok {
			return append([]core.Arc{a}, rest...), true
		}
	}

	return nil, false
}

// augment pushes one balanced augmenting walk from s to sink, discovered
// by the given searchState, and reports how much flow it carried.
func augment(net *core.SkewNetwork, nf *core.NestedFamily, st *searchState, s, sink core.Node) (int64, error) {
	path, err := expand(net, nf, st, s, sink)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, ErrNoAugmentingWalk
	}

	bottleneck := int64(-1)
	for _, a := range path {
		r := net.BalancedResidual(a)
		if bottleneck == -1 || r < bottleneck {
			bottleneck = r
		}
	}
	if bottleneck <= 0 {
		return 0, fmt.Errorf("%w: non-positive bottleneck on discovered walk", core.ErrInternalInconsistency)
	}

	for _, a := range path {
		if err := net.BalancedPush(a, bottleneck); err != nil {
			return 0, err
		}
	}

	return bottleneck, nil
}
