package primaldual

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/balanced/core"
)

// ShiftModLength applies an explicit modified-length table update: it
// increases modlength[a] and modlength[a^2] by epsilon, and decreases
// modlength[a^1] and modlength[a^3] by epsilon, keeping the explicit table
// synchronized the way PrimalDual0's ShiftPotential keeps the potential
// array synchronized.
func ShiftModLength(modlength []int64, a core.Arc, epsilon int64) {
	modlength[a] += epsilon
	modlength[a.Complement()] += epsilon
	modlength[a.Reverse()] -= epsilon
	modlength[a.ReverseComplement()] -= epsilon
}

// PrimalDual1 is the arc-oriented counterpart of PrimalDual0: instead of
// recomputing ModLength from the potential array on every relax, it keeps
// an explicit per-arc table seeded from g and advances it directly via
// ShiftModLength after each round's epsilon is found. The two recipes
// produce the same sequence of augmentations; PrimalDual1 trades g's
// O(1)-space potential array for an O(m) table that avoids a
// potential-difference subtraction on every arc scan.
func PrimalDual1(g *Graph, s, sink core.Node, cfg core.Config) (flow int64, cost int64, err error) {
	h := g.net.Host()
	modlength := make([]int64, h.ArcCount())
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		modlength[a] = g.ModLength(a)
	}

	for iter := 0; ; iter++ {
		if err := core.WrapCancelled(cfg.Ctx); err != nil {
			return flow, cost, err
		}
		if cfg.MaxIterations > 0 && iter >= cfg.MaxIterations {
			return flow, cost, nil
		}

		st := dijkstraRoundTable(g, modlength, s)

		epsilon1, sinkReached := infDist, st.reached(sink)
		if sinkReached {
			epsilon1 = st.dist[sink]
		}
		blossomRep, epsilon3, hasBlossom := g.TightestBlossomDual()

		if !sinkReached && !hasBlossom {
			return flow, cost, nil
		}

		if hasBlossom && epsilon3 <= epsilon1 {
			shiftDualsTable(g, st, modlength, epsilon3)
			g.ExpandBlossom(blossomRep)

			continue
		}

		shiftDualsTable(g, st, modlength, epsilon1)

		path, perr := expandPD(g, st, s, sink)
		if perr != nil {
			return flow, cost, perr
		}

		bottleneck := int64(-1)
		for _, a := range path {
			r := g.net.BalancedResidual(a)
			if bottleneck == -1 || r < bottleneck {
				bottleneck = r
			}
		}
		if bottleneck <= 0 {
			return flow, cost, fmt.Errorf("%w: non-positive bottleneck on discovered walk", core.ErrInternalInconsistency)
		}

		for _, a := range path {
			cost += bottleneck * h.Length(a)
			if err := g.net.BalancedPush(a, bottleneck); err != nil {
				return flow, cost, err
			}
		}
		flow += bottleneck
	}
}

// shiftDualsTable is shiftDuals's table-backed twin: it advances
// modlength's entries for every reached top-level node's outgoing arcs
// instead of a potential array, and drains every active blossom's dual by
// the same epsilon.
func shiftDualsTable(g *Graph, st *pdState, modlength []int64, epsilon int64) {
	if epsilon <= 0 {
		return
	}
	h := g.net.Host()
	processed := make(map[core.Node]bool)
	for v := core.Node(0); v < h.NodeCount(); v++ {
		rep := g.nf.Find(v)
		if rep != v || processed[rep] || !st.reached(rep) {
			continue
		}
		for _, a := range core.Outgoing(h, rep) {
			ShiftModLength(modlength, a, epsilon)
		}
		processed[rep] = true
		processed[g.nf.Find(h.ComplementNode(rep))] = true
	}
	g.ShiftBlossomDuals(epsilon)
}

// dijkstraRoundTable is dijkstraRound's twin, reading modified length from
// an explicit table instead of recomputing it from potentials.
func dijkstraRoundTable(g *Graph, modlength []int64, s core.Node) *pdState {
	h := g.net.Host()
	st := newPDState(h.NodeCount(), s)

	pq := &nodeQueue{{node: s, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(*nodeItem)
		u := top.node
		if st.finalized[u] || top.dist != st.dist[u] {
			continue
		}
		st.finalized[u] = true

		for _, a := range core.Outgoing(h, u) {
			if g.net.BalancedResidual(a) <= 0 {
				continue
			}
			w := h.Head(a)
			if g.nf.Find(u) == g.nf.Find(w) {
				continue
			}

			cand := st.dist[u] + modlength[a]

			wFinal := st.finalized[w]
			wbarFinal := st.finalized[h.ComplementNode(w)]

			switch {
			case !wFinal && !wbarFinal:
				if cand < st.dist[w] {
					st.dist[w] = cand
					st.prop[w] = a
					heap.Push(pq, &nodeItem{node: w, dist: cand})
				}

			case !wFinal && wbarFinal:
				shrinkPD(g, st, pq, u, w, a)
			}
		}
	}

	return st
}
