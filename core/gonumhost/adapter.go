package gonumhost

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/balanced/core"
)

// EdgeKey identifies a directed edge by gonum node IDs, used to key the
// optional lower-bound overrides passed to FromWeightedDirected.
type EdgeKey struct {
	From, To int64
}

// ErrDisconnectedComplement reports a node count that cannot be paired into
// complements. FromWeightedDirected does not return it: it pads an odd
// node count with one isolated node instead.
var ErrDisconnectedComplement = fmt.Errorf("gonumhost: node count must be even to pair complements")

// FromWeightedDirected builds a core.Host from g. Nodes are renumbered
// 0..2n-1: gonum node with iteration index i becomes core.Node(2*i), and a
// synthetic complement core.Node(2*i+1) is added for it, so every input node
// gets a partner the balanced-flow core can route through. lower optionally
// overrides the lower bound (default 0) for the edge keyed by the gonum
// endpoint IDs. Each edge weight is truncated to int64; when asCost is false
// it becomes the upper capacity (length 0), and when asCost is true it
// becomes the arc length instead, with upper capacity 1.
func FromWeightedDirected(g graph.WeightedDirected, lower map[EdgeKey]int64, asCost bool) (*core.MemHost, error) {
	nodes := g.Nodes()
	var order []int64
	for nodes.Next() {
		order = append(order, nodes.Node().ID())
	}
	if len(order)%2 != 0 {
		// Pad with one isolated node so every real node still gets a
		// distinct complement; the padding node has no incident edges.
		order = append(order, -1)
	}

	idx := make(map[int64]core.Node, len(order))
	for i, id := range order {
		if id == -1 {
			continue
		}
		idx[id] = core.Node(2 * i)
	}

	h := core.NewMemHost(core.Node(2 * len(order)))

	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		u, v := e.From().ID(), e.To().ID()
		uu, ok1 := idx[u]
		vv, ok2 := idx[v]
		if !ok1 || !ok2 {
			continue
		}
		w, ok := g.WeightedEdge(u, v).(graph.WeightedEdge)
		var weight float64
		if ok {
			weight = w.Weight()
		}
		upper := int64(weight)
		length := int64(0)
		if asCost {
			length = upper
			upper = 1
		}
		if lb, ok := lower[EdgeKey{From: u, To: v}]; ok {
			h.AddEdge(uu, vv, lb, upper, length)
		} else {
			h.AddEdge(uu, vv, 0, upper, length)
		}
	}

	return h, nil
}

// ToWeightedDirected renders the "real" half of h (nodes 0, 2, 4, ... --
// the original, non-complement nodes FromWeightedDirected produced) as a
// gonum simple.WeightedDirectedGraph of current residual capacities, for
// inspection with gonum's own traversal/analysis packages. Arc length is
// carried as edge weight when h.HasCosts(), otherwise residual capacity is.
func ToWeightedDirected(h core.Host) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, 0)
	n := h.NodeCount()
	for v := core.Node(0); v < n; v += 2 {
		g.AddNode(simple.Node(int64(v)))
	}

	net := core.NewSkewNetwork(h)
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		if !a.IsForward() {
			continue
		}
		u, v := h.Tail(a), h.Head(a)
		if u%2 != 0 || v%2 != 0 {
			continue // skip arcs touching the synthetic complement half
		}
		weight := float64(net.Residual(a))
		if h.HasCosts() {
			weight = float64(h.Length(a))
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(u)),
			T: simple.Node(int64(v)),
			W: weight,
		})
	}

	return g
}
