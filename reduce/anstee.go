package reduce

import "github.com/katalvlaran/balanced/core"

// Anstee runs an ordinary (not balance-aware) augmenting-path max flow
// against h -- pushing along a only a and its plain reverse a^1, never a's
// complement -- and then folds the result back to a genuine balanced flow:
// CancelEven repairs every even fractional cycle the asymmetric pushes
// produced, net.Symmetrize() folds the rest down to an integral flow, and
// CancelOdd's canonical nodes are returned so the caller can finish the
// repair with BalancedToBalanced where an odd cycle survives.
//
// This is the relaxation Anstee's algorithm is named for: solving the
// easier asymmetric problem first is often cheaper than respecting the
// skew-symmetry constraint from the first augmentation onward, provided
// the repair pass at the end is cheap -- which, since both CancelEven and
// Symmetrize are O(n+m), it is.
func Anstee(h core.Host, source core.Node, cfg core.Config) (flow int64, oddCanonical []core.Node, err error) {
	if cfg.Debug {
		if verr := core.ValidateHost(h); verr != nil {
			return 0, nil, verr
		}
	}

	net := core.NewSkewNetwork(h)
	net.Relax()
	sink := h.ComplementNode(source)

	for {
		if cerr := core.WrapCancelled(cfg.Ctx); cerr != nil {
			return 0, nil, cerr
		}

		path, ok := plainAugmentingPath(h, source, sink)
		if !ok {
			break
		}

		bottleneck := int64(-1)
		for _, a := range path {
			r := h.Upper(a) - h.Flow(a)
			if bottleneck == -1 || r < bottleneck {
				bottleneck = r
			}
		}
		for _, a := range path {
			h.SetFlow(a, h.Flow(a)+bottleneck)
			ar := a.Reverse()
			h.SetFlow(ar, h.Flow(ar)-bottleneck)
		}
	}

	_, oddCycles := CancelEven(net)
	net.Symmetrize() // even discrepancies already repaired above; any half unit left is from an odd cycle, reported via oddCanonical

	for _, a := range core.Outgoing(h, source) {
		flow += h.Flow(a)
	}

	return flow, CancelOdd(oddCycles), nil
}

// plainAugmentingPath finds one s-sink walk using residual capacity
// u(a) - f(a) only, ignoring complement arcs entirely -- the ordinary
// (non-balanced) residual graph Anstee's relaxation operates on.
func plainAugmentingPath(h core.Host, s, sink core.Node) ([]core.Arc, bool) {
	n := h.NodeCount()
	prop := make([]core.Arc, n)
	visited := make([]bool, n)
	for v := range prop {
		prop[v] = core.NoArc
	}

	queue := []core.Node{s}
	visited[s] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, a := range core.Outgoing(h, u) {
			if h.Upper(a)-h.Flow(a) <= 0 {
				continue
			}
			w := h.Head(a)
			if visited[w] {
				continue
			}
			visited[w] = true
			prop[w] = a
			queue = append(queue, w)
		}
	}
	if !visited[sink] {
		return nil, false
	}

	var path []core.Arc
	for cur := sink; cur != s; cur = h.Tail(prop[cur]) {
		path = append([]core.Arc{prop[cur]}, path...)
	}

	return path, true
}
