package reduce

import "github.com/katalvlaran/balanced/core"

// BalancedToBalanced eliminates a set of odd cycles left behind by
// CancelEven by reducing the elimination itself to another balanced flow
// problem: it copies h's arcs into a fresh host with two extra
// complementary node pairs -- an auxiliary source pair and an auxiliary
// sink pair -- and, for every cycle, adds one unit-capacity arc from the
// auxiliary source to the cycle's canonical node and one from that node to
// the auxiliary sink. That is 2k new arcs for k odd cycles. Running
// MaxBalancedFlow from the returned auxiliary source on the returned host
// saturates those arcs exactly when every cycle can be broken by rerouting
// one unit through it, which is what finishes repairing the half-integral
// flow CancelEven could not fully resolve on its own.
//
// h must be a *core.MemHost: the copy walks h's arcs in the quartet layout
// AddEdge guarantees, which is not part of the general core.Host contract.
func BalancedToBalanced(h *core.MemHost, oddCycles [][]core.Node) (*core.MemHost, core.Node) {
	n := h.NodeCount()
	nh := core.NewMemHost(n + 4)

	for a := core.Arc(0); a < h.ArcCount(); a += 4 {
		u, v := h.Tail(a), h.Head(a)
		na := nh.AddEdge(u, v, h.Lower(a), h.Upper(a), h.Length(a))
		nh.SetStartingFlow(na, h.Flow(a))
		nh.SetStartingFlow(na+1, h.Flow(a+1))
		nh.SetStartingFlow(na+2, h.Flow(a+2))
		nh.SetStartingFlow(na+3, h.Flow(a+3))
	}

	auxSource := n
	auxSink := n + 2
	for _, cycle := range oddCycles {
		if len(cycle) == 0 {
			continue
		}
		canonical := cycle[0]
		nh.AddEdge(auxSource, canonical, 0, 1, 0)
		nh.AddEdge(canonical, auxSink, 0, 1, 0)
	}

	return nh, auxSource
}
