package reduce

import "github.com/katalvlaran/balanced/core"

// BalancedScaling is a capacity-scaling alternative to the default
// bns-driven MaxBalancedFlow recipe: it only ever augments along arcs whose
// balanced residual capacity is at least the current power-of-two
// threshold, halving the threshold once no such augmenting walk remains.
// This bounds the number of augmentations by O(m log U) instead of
// O(m * maxflow), at the cost of never shrinking a blossom -- the search
// below gives up on a petal arc exactly the way bns.HeuristicBF does,
// rather than contracting it. Callers whose network has odd structure
// (most weighted matching instances do) should use the default recipe or
// AlgoMicaliVazirani instead; BalancedScaling suits networks built to stay
// bipartite-like, e.g. ones produced by GraphToBalanced from a DAG.
func BalancedScaling(h core.Host, source core.Node, cfg core.Config) (int64, error) {
	if cfg.Debug {
		if err := core.ValidateHost(h); err != nil {
			return 0, err
		}
	}

	net := core.NewSkewNetwork(h)
	sink := h.ComplementNode(source)

	var maxCap int64
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		if u := h.Upper(a); u > maxCap {
			maxCap = u
		}
	}
	threshold := int64(1)
	for threshold*2 <= maxCap {
		threshold *= 2
	}

	var total int64
	for threshold > 0 {
		if err := core.WrapCancelled(cfg.Ctx); err != nil {
			return total, err
		}

		for {
			path, ok := scalingSearch(net, source, sink, threshold)
			if !ok {
				break
			}

			bottleneck := int64(-1)
			for _, a := range path {
				r := net.BalancedResidual(a)
				if bottleneck == -1 || r < bottleneck {
					bottleneck = r
				}
			}
			for _, a := range path {
				if err := net.BalancedPush(a, bottleneck); err != nil {
					return total, err
				}
			}
			total += bottleneck
		}

		threshold /= 2
	}

	return total, nil
}

// scalingSearch finds one s-sink walk using only arcs with balanced
// residual capacity at least threshold, via plain BFS -- no blossom
// shrinking, matching bns.HeuristicBF's simplification.
func scalingSearch(net *core.SkewNetwork, s, sink core.Node, threshold int64) ([]core.Arc, bool) {
	h := net.Host()
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
		if u == sink {
			break
		}

		for _, a := range core.Outgoing(h, u) {
			if net.BalancedResidual(a) < threshold {
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
