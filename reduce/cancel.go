package reduce

import "github.com/katalvlaran/balanced/core"

// discrepancy returns f(a) - f(a^2): how far arc a's flow leads its
// complement's. A SkewNetwork in Relax()'d (not-yet-Symmetrize'd) state can
// carry nonzero discrepancy on arcs an asymmetric max-flow touched without
// going through BalancedPush; discrepancy is zero everywhere once the flow
// is balanced.
func discrepancy(h core.Host, a core.Arc) int64 {
	return h.Flow(a) - h.Flow(h.ComplementArc(a))
}

// CancelEven decomposes the discrepancy graph (the arcs with
// discrepancy(a) > 0) into simple cycles and, for every cycle of even
// length, cancels it: it subtracts the cycle's minimum discrepancy from
// every arc in the cycle, which is exactly the unit of flow that must be
// rerouted to bring those arcs back toward f(a) == f(a^2). Odd-length
// cycles cannot be resolved this way -- routing a whole unit around an odd
// cycle still leaves one arc's parity flipped -- so they are left
// untouched and returned as oddCycles for BalancedToBalanced to eliminate
// structurally. Call net.Symmetrize() after CancelEven to fold any
// remaining (odd-cycle) discrepancy down to an integral flow.
func CancelEven(net *core.SkewNetwork) (cancelled int, oddCycles [][]core.Node) {
	h := net.Host()
	m := h.ArcCount()
	excluded := make([]bool, m)

	for {
		next := make(map[core.Node]core.Arc)
		for a := core.Arc(0); a < m; a++ {
			if excluded[a] {
				continue
			}
			if discrepancy(h, a) > 0 {
				next[h.Tail(a)] = a
			}
		}
		if len(next) == 0 {
			return cancelled, oddCycles
		}

		var start core.Node
		for v := range next {
			start = v
			break
		}

		visitedAt := make(map[core.Node]int)
		var order []core.Node
		cur := start
		for {
			if idx, ok := visitedAt[cur]; ok {
				cycleNodes := order[idx:]
				cycleArcs := make([]core.Arc, 0, len(cycleNodes))
				for _, node := range cycleNodes {
					cycleArcs = append(cycleArcs, next[node])
				}

				if len(cycleArcs)%2 == 0 {
					amt := int64(-1)
					for _, ca := range cycleArcs {
						d := discrepancy(h, ca)
						if amt == -1 || d < amt {
							amt = d
						}
					}
					for _, ca := range cycleArcs {
						h.SetFlow(ca, h.Flow(ca)-amt)
					}
					cancelled++
				} else {
					cycleNodesCopy := make([]core.Node, len(cycleNodes))
					copy(cycleNodesCopy, cycleNodes)
					oddCycles = append(oddCycles, cycleNodesCopy)
				}

				for _, ca := range cycleArcs {
					excluded[ca] = true
				}

				break
			}

			visitedAt[cur] = len(order)
			order = append(order, cur)
			a, ok := next[cur]
			if !ok {
				// Dead end: conservation at non-terminal nodes should make
				// this unreachable, but a malformed host must not hang.
				excluded[next[order[0]]] = true
				break
			}
			cur = h.Head(a)
		}
	}
}

// CancelOdd extracts the canonical representative node of every odd cycle
// CancelEven could not resolve, in the form BalancedToBalanced consumes.
func CancelOdd(oddCycles [][]core.Node) []core.Node {
	canonical := make([]core.Node, 0, len(oddCycles))
	for _, cycle := range oddCycles {
		if len(cycle) > 0 {
			canonical = append(canonical, cycle[0])
		}
	}

	return canonical
}
