package primaldual

import (
	"fmt"

	"github.com/katalvlaran/balanced/core"
)

// expandPD reconstructs the arc sequence from s to target out of a
// dijkstraRound's labelling, resolving blossom-interior segments with the
// same bounded capacity-respecting DFS bns.Expand and mv.expand use.
func expandPD(g *Graph, st *pdState, s, target core.Node) ([]core.Arc, error) {
	if target == s {
		return nil, nil
	}

	if st.prop[target] != core.NoArc && g.nf.Find(target) == target {
		prefix, err := expandPD(g, st, s, g.net.Host().Tail(st.prop[target]))
		if err != nil {
			return nil, err
		}

		return append(prefix, st.prop[target]), nil
	}

	rep := g.nf.Find(target)
	base := g.nf.Base(rep)
	if base == target {
		return nil, fmt.Errorf("%w: node %d has no discovery label", core.ErrInternalInconsistency, target)
	}

	prefix, err := expandPD(g, st, s, base)
	if err != nil {
		return nil, err
	}

	allowed := map[core.Node]bool{base: true, target: true}
	for _, m := range st.members[rep] {
		allowed[m] = true
		allowed[g.net.Host().ComplementNode(m)] = true
	}
	visited := map[core.Node]bool{}
	inner, ok := dfsWithinPD(g, allowed, visited, base, target)
	if !ok {
		return nil, fmt.Errorf("%w: no interior path from %d to %d in blossom", core.ErrInternalInconsistency, base, target)
	}

	return append(prefix, inner...), nil
}

func dfsWithinPD(g *Graph, allowed, visited map[core.Node]bool, cur, target core.Node) ([]core.Arc, bool) {
	if cur == target {
		return nil, true
	}
	visited[cur] = true

	h := g.net.Host()
	for _, a := range core.Outgoing(h, cur) {
		w := h.Head(a)
		if !allowed[w] || visited[w] || g.net.BalancedResidual(a) <= 0 {
			continue
		}
		if rest, ok := dfsWithinPD(g, allowed, visited, w, target); ok {
			return append([]core.Arc{a}, rest...), true
		}
	}

	return nil, false
}
