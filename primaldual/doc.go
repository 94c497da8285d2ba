// Package primaldual implements the weighted balanced augmenting-path
// algorithm: repeated shortest-modified-length augmentation with a node
// potential that is iterated by an epsilon update between augmentations,
// the standard generalization of Dijkstra-with-reduced-costs to
// non-bipartite weighted matching via skew-symmetric networks.
//
// # Modified length and potentials
//
// Every node carries a potential pi; a blossom's representative carries
// the potential for every node merged into it (core.NestedFamily.Find
// resolves to the representative, so Potential(v) always reads the right
// value whether v is currently top-level or shrunk). The modified length of
// an arc is w(a) + Potential(tail) - Potential(head): complementary
// slackness requires this to be non-negative on every residual arc, and
// ShiftPotential/ShiftModLength are the two ways callers restore that after
// a Dijkstra phase finds a shorter path.
//
// # PrimalDual0 vs PrimalDual1
//
// PrimalDual0 recomputes ModLength on demand from the potential array --
// simpler, and fine when arcs are scanned a bounded number of times per
// augmentation. PrimalDual1 instead keeps an explicit per-arc modlength
// table and applies ShiftModLength directly, avoiding a potential-difference
// recomputation on every relax; the two converge on the same sequence of
// augmentations and differ only in that bookkeeping.
//
// # Blossoms and the three-way epsilon
//
// shrinkPD contracts an odd blossom exactly as bns.KocayStone does, and
// gives it a dual variable y alongside the node potentials (Graph.duals).
// Each round therefore has two candidate step sizes: epsilon1, the shortest
// modified distance from source to sink (covering both the plain and the
// blossom-interior case, since a shrunk node's distance is already read
// through its representative), and epsilon3, the smallest dual value among
// currently-shrunk blossoms. When epsilon3 is the binding one, the round
// shifts every dual by it, expands the exhausted blossom via
// core.NestedFamily.Split, and re-labels rather than augmenting; the sink
// only ever gets a walk pushed through it once epsilon1 is what bound the
// step, so every augmenting path reconstructed by expandPD is already clear
// of any blossom whose dual ran out along the way.
package primaldual
