// Package gonumhost adapts a gonum graph (gonum.org/v1/gonum/graph) into a
// core.Host, and back again, so that callers who already model their network
// with gonum's graph.WeightedDirected do not have to hand-roll incidence
// storage to use this module's balanced-flow solvers.
//
// This is the concrete realisation of core's "consumed interface" contract:
// core itself never owns adjacency storage or an iteration helper, and
// gonum's graph.Nodes/graph.Edges iterator style is exactly the shape a
// host needs to supply.
//
// FromWeightedDirected doubles every gonum edge into the skew-symmetric
// 4-orbit {a, a^1, a^2, a^3} core.Host requires: for a gonum edge u->v with
// weight w (read as the arc's upper capacity, or as its length with upper
// capacity 1 when asCost is set; supply lower bounds separately via the
// lower map), it allocates the forward arc (u,v), its
// residual reverse (v,u), the complement (v̄,ū), and the complement's
// reverse (ū,v̄) -- the same quartet core.MemHost.AddEdge builds, so the
// result is usable anywhere a core.Host is accepted.
package gonumhost
