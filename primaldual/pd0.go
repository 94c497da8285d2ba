package primaldual

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/balanced/core"
)

const infDist = int64(math.MaxInt64)

// blossomInitialDual is the starting dual value y assigned to a blossom the
// moment shrinkPD forms it. Every round's dual update drains every active
// blossom's dual alongside the node potentials (see shiftDuals); once one
// reaches zero it is exhausted and PrimalDual0/PrimalDual1 expand it via
// ExpandBlossom rather than treating the round as an augmenting one.
const blossomInitialDual = int64(1)

// nodeItem is one entry in the Dijkstra priority queue: a candidate
// shortest modified-length distance to reach node from the source. Stale
// entries (superseded by a shorter later push) are left in the heap and
// skipped on pop via a lazy decrease-key, matching the dijkstra package's
// own approach to avoid a heap-internal index update on every relax.
type nodeItem struct {
	node core.Node
	dist int64
}

type nodeQueue []*nodeItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*nodeItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// pdState is the node-oriented Dijkstra labelling one PrimalDual0 round
// produces: shortest modified-length distance and discovery arc per node,
// finalized (popped from the heap and never relaxed again) flag per node.
type pdState struct {
	dist      []int64
	prop      []core.Arc
	finalized []bool
	members   map[core.Node][]core.Node
}

func newPDState(n core.Node, s core.Node) *pdState {
	st := &pdState{
		dist:      make([]int64, n),
		prop:      make([]core.Arc, n),
		finalized: make([]bool, n),
		members:   make(map[core.Node][]core.Node),
	}
	for v := core.Node(0); v < n; v++ {
		st.dist[v] = infDist
		st.prop[v] = core.NoArc
	}
	st.dist[s] = 0

	return st
}

func (st *pdState) reached(v core.Node) bool { return st.dist[v] != infDist }

// dijkstraRound runs one modified-length Dijkstra labelling pass from s
// over g, shrinking any odd blossom it meets exactly as bns.KocayStone
// does for the unweighted case (same petal condition: w̄ finalized while w
// is not), so the search remains correct inside blossoms formed by
// previous rounds. ModLength must be non-negative on every relaxed arc;
// CheckDual (see check.go) is the debug-mode assertion of that invariant.
func dijkstraRound(g *Graph, s core.Node) *pdState {
	h := g.net.Host()
	st := newPDState(h.NodeCount(), s)

	pq := &nodeQueue{{node: s, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(*nodeItem)
		u := top.node
		if st.finalized[u] || top.dist != st.dist[u] {
			continue // stale heap entry
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

			cand := st.dist[u] + g.ModLength(a)

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

// shrinkPD mirrors bns's blossom-shrink petal handling for the weighted
// Dijkstra labelling: the bridge arc a=(u,w) closes an odd cycle because
// w̄ is already finalized while w is not.
func shrinkPD(g *Graph, st *pdState, pq *nodeQueue, u, w core.Node, bridge core.Arc) {
	h := g.net.Host()
	wbar := h.ComplementNode(w)

	chainU := climbPD(g, st, u)
	chainW := climbPD(g, st, wbar)

	x, ok := lcaPD(chainU, chainW)
	if !ok {
		return
	}

	base := x
	for st.prop[base] != core.NoArc && g.net.BalancedResidual(st.prop[base]) > 1 {
		base = h.Tail(st.prop[base])
	}

	members := append(trimPD(chainU, base), trimPD(chainW, base)...)
	if len(members) == 0 {
		return
	}

	rep := g.nf.Find(base)
	for _, m := range members {
		mr := g.nf.Find(m)
		if mr != rep {
			rep = g.nf.Merge(rep, mr, base)
		}
		mc := h.ComplementNode(m)
		mcr := g.nf.Find(mc)
		if mcr != rep {
			rep = g.nf.Merge(rep, mcr, base)
		}
	}
	st.members[rep] = append(st.members[rep], members...)
	if _, exists := g.duals[rep]; !exists {
		g.duals[rep] = blossomInitialDual
	}

	for _, m := range members {
		z := h.ComplementNode(m)
		if st.reached(z) {
			continue
		}
		st.dist[z] = st.dist[m] // a member's complement takes that member's distance
		st.prop[z] = bridge
		heap.Push(pq, &nodeItem{node: z, dist: st.dist[z]})
	}
}

func climbPD(g *Graph, st *pdState, v core.Node) []core.Node {
	var chain []core.Node
	cur := v
	seen := make(map[core.Node]bool)
	for {
		if seen[cur] {
			break
		}
		seen[cur] = true
		chain = append(chain, cur)

		rep := g.nf.Find(cur)
		base := g.nf.Base(rep)
		if base != cur {
			cur = base
			continue
		}
		if st.prop[cur] == core.NoArc {
			break
		}
		cur = g.net.Host().Tail(st.prop[cur])
	}

	return chain
}

func lcaPD(a, b []core.Node) (core.Node, bool) {
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

func trimPD(chain []core.Node, base core.Node) []core.Node {
	var out []core.Node
	for _, n := range chain {
		if n == base {
			break
		}
		out = append(out, n)
	}

	return out
}

// shiftDuals applies one round's dual update of epsilon: every reached
// top-level node's potential rises (its complement's falls, by the skew
// convention), and every active blossom's dual falls by the same amount.
// epsilon==0 is a no-op but still cheap to call unconditionally.
func shiftDuals(g *Graph, st *pdState, epsilon int64) {
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
		g.ShiftPotential(rep, epsilon)
		processed[rep] = true
		processed[g.nf.Find(h.ComplementNode(rep))] = true
	}
	g.ShiftBlossomDuals(epsilon)
}

// PrimalDual0 runs the node-oriented recipe: repeated modified-length
// Dijkstra rounds, each followed by a dual shift. A round that reaches the
// sink (and has no cheaper blossom to open) augments along the discovered
// walk; a round whose tightest blossom dual is no larger than the sink
// distance expands that blossom instead. It stops when the sink is
// unreachable and no blossom remains, or when cfg.MaxIterations is spent,
// and returns the accumulated flow value and cost.
func PrimalDual0(g *Graph, s, sink core.Node, cfg core.Config) (flow int64, cost int64, err error) {
	for iter := 0; ; iter++ {
		if err := core.WrapCancelled(cfg.Ctx); err != nil {
			return flow, cost, err
		}
		if cfg.MaxIterations > 0 && iter >= cfg.MaxIterations {
			return flow, cost, nil
		}

		st := dijkstraRound(g, s)

		epsilon1, sinkReached := infDist, st.reached(sink)
		if sinkReached {
			epsilon1 = st.dist[sink]
		}
		blossomRep, epsilon3, hasBlossom := g.TightestBlossomDual()

		if !sinkReached && !hasBlossom {
			// Neither the sink nor any shrunk blossom has anywhere left to
			// give: no augmenting path exists and no further dual move is
			// possible. A disconnected or empty sink is a clean zero, not
			// ErrInfeasible -- that sentinel is reserved for a genuine
			// lower-bound constraint violation surfaced by the caller.
			return flow, cost, nil
		}

		if hasBlossom && epsilon3 <= epsilon1 {
			shiftDuals(g, st, epsilon3)
			g.ExpandBlossom(blossomRep)
			if cfg.Debug {
				if err := CheckDual(g); err != nil {
					return flow, cost, fmt.Errorf("%w: %w", core.ErrInternalInconsistency, err)
				}
			}

			continue // blossom opened up; re-run the labelling next round
		}

		shiftDuals(g, st, epsilon1)

		if cfg.Debug {
			if err := CheckDual(g); err != nil {
				return flow, cost, fmt.Errorf("%w: %w", core.ErrInternalInconsistency, err)
			}
		}

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

		h := g.net.Host()
		for _, a := range path {
			cost += bottleneck * h.Length(a)
			if err := g.net.BalancedPush(a, bottleneck); err != nil {
				return flow, cost, err
			}
		}
		flow += bottleneck
	}
}
