package reduce

import "github.com/katalvlaran/balanced/core"

// applyLowerBounds adapts h for a solver that otherwise never consults
// Lower: per the driver adapter the exposed interface documents ("zeroing
// lower bounds by pre-pushing"), every arc's lower bound is folded into a
// fixed baseline flow, and the per-node imbalance that baseline leaves
// behind is routed through an auxiliary source/sink pair added only for
// this check. It returns a fresh host with the original capacities
// restored and that feasible baseline already set as its starting flow,
// ready for the real solver to continue augmenting from -- or
// core.ErrInfeasible if no such baseline exists.
//
// A direct arc between a node and its own complement (the self-loop shape
// a degree-2 network exercises when source and sink are the only two
// nodes) defeats the node-excess technique: with no intermediate node
// between the arc's two endpoints, a positive lower bound there forces
// both the forward and the reverse orbit of the very same edge -- which
// AddEdge gives the identical bound -- to sit at that bound simultaneously,
// and no node exists to absorb the resulting mismatch. Such an arc is
// reported infeasible directly, without running the general check.
func applyLowerBounds(orig *core.MemHost, cfg core.Config) (*core.MemHost, error) {
	if hasInfeasibleSelfLoopLowerBound(orig) {
		return nil, core.ErrInfeasible
	}

	n := orig.NodeCount()
	m := orig.ArcCount()

	reduced := core.NewMemHost(n + 2)
	auxSource := n
	for a := core.Arc(0); a < m; a += 4 {
		reduced.AddEdge(orig.Tail(a), orig.Head(a), 0, orig.Upper(a)-orig.Lower(a), orig.Length(a))
	}

	excess := make([]int64, n)
	for a := core.Arc(0); a < m; a++ {
		l := orig.Lower(a)
		if l == 0 {
			continue
		}
		excess[orig.Head(a)] += l
		excess[orig.Tail(a)] -= l
	}

	var totalSupply int64
	for v := core.Node(0); v < n; v++ {
		if excess[v] > 0 {
			reduced.AddEdge(auxSource, v, 0, excess[v], 0)
			totalSupply += excess[v]
		}
	}

	if totalSupply > 0 {
		routed, err := MaxBalancedFlow(reduced, auxSource, cfg)
		if err != nil {
			return nil, err
		}
		if routed != totalSupply {
			return nil, core.ErrInfeasible
		}
	}

	baseline := core.NewMemHost(n)
	for a := core.Arc(0); a < m; a += 4 {
		baseline.AddEdge(orig.Tail(a), orig.Head(a), orig.Lower(a), orig.Upper(a), orig.Length(a))
	}
	for a := core.Arc(0); a < m; a++ {
		baseline.SetStartingFlow(a, orig.Lower(a)+reduced.Flow(a))
	}

	return baseline, nil
}

// hasInfeasibleSelfLoopLowerBound reports whether h carries a positive
// lower bound on an arc running directly between a node and its own
// complement -- the one shape the node-excess technique cannot certify,
// since there is no intermediate node to absorb the mismatch it forces
// between the arc's forward and reverse orbit. MinCostBalancedFlow, which
// does not otherwise adapt for lower bounds, uses this to catch the same
// genuinely-infeasible networks MaxBalancedFlow's full adapter rejects.
func hasInfeasibleSelfLoopLowerBound(h core.Host) bool {
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		if h.Lower(a) > 0 && h.Head(a) == h.ComplementNode(h.Tail(a)) {
			return true
		}
	}

	return false
}
