package bns

import (
	"fmt"

	"github.com/katalvlaran/balanced/core"
)

// Expand reconstructs the real sequence of arcs forming an augmenting walk
// from st.Source to target, after a successful Search has labelled target.
// Nodes reached directly carry it in their Prop arc; nodes reached only as
// part of a blossom (via a Petal label) require re-deriving a real,
// capacity-respecting path through that blossom's recorded member set --
// see expandBlossomPath.
func Expand(net *core.SkewNetwork, nf *core.NestedFamily, st *SearchState, target core.Node) ([]core.Arc, error) {
	if target == st.Source {
		return nil, nil
	}

	if st.Prop[target] != core.NoArc {
		prefix, err := Expand(net, nf, st, net.Host().Tail(st.Prop[target]))
		if err != nil {
			return nil, err
		}

		return append(prefix, st.Prop[target]), nil
	}

	if st.Petal[target] != core.NoArc {
		rep := nf.Find(target)
		base := nf.Base(rep)

		prefix, err := Expand(net, nf, st, base)
		if err != nil {
			return nil, err
		}

		inner, err := expandBlossomPath(net, st, rep, base, target)
		if err != nil {
			return nil, err
		}

		return append(prefix, inner...), nil
	}

	return nil, fmt.Errorf("%w: node %d has no discovery label", core.ErrInternalInconsistency, target)
}

// expandBlossomPath finds an actual path from base to target using only
// residual-positive arcs between nodes that were merged into the blossom
// represented by rep (plus base itself), via a bounded simple-path DFS.
//
// This replaces the textbook recursive Expand/CoExpand walk with a direct
// re-search over the blossom's member set: it costs more than the
// constant-overhead recursive reconstruction, but it is trivially correct
// by construction -- every arc it returns has positive balanced residual
// capacity at the moment of the search, unlike any scheme that synthesizes
// a reverse-complement arc without checking its current capacity.
func expandBlossomPath(net *core.SkewNetwork, st *SearchState, rep, base, target core.Node) ([]core.Arc, error) {
	allowed := make(map[core.Node]bool)
	allowed[base] = true
	for _, m := range st.BlossomMembers(rep) {
		allowed[m] = true
		allowed[net.Host().ComplementNode(m)] = true
	}
	allowed[target] = true

	visited := make(map[core.Node]bool)
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
		if !allowed[w] || visited[w] {
			continue
		}
		if net.BalancedResidual(a) <= 0 {
			continue
		}
		if rest, ok := dfsWithin(net, allowed, visited, w, target); ok {
			return append([]core.Arc{a}, rest...), true
		}
	}

	return nil, false
}

// Augment pushes balanced flow along the walk from st.Source to
// target (inclusive), using Expand to materialize the arc sequence. It
// reports the augmenting value actually pushed, which is the minimum
// balanced residual capacity along the discovered walk.
func Augment(net *core.SkewNetwork, nf *core.NestedFamily, st *SearchState, target core.Node) (int64, error) {
	path, err := Expand(net, nf, st, target)
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
