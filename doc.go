// Package balanced computes maximum and minimum-cost balanced s-t flows on
// skew-symmetric directed networks -- the standard encoding for general
// (non-bipartite) weighted matching, T-joins, shortest paths in undirected
// networks with arbitrary edge weights, and 2-commodity flow reductions.
//
// This is a library, not a CLI: it has no file format, no terminal UI, and
// no persisted state. Everything it needs from a caller's graph arrives
// through the core.Host interface (core/host.go); everything it produces is
// a flow value (and, for the weighted entry point, a cost) plus mutations to
// that same Host's flow field.
//
// # Packages
//
//	core        - node/arc model, Host contract, SkewNetwork (balanced push),
//	              NestedFamily (blossom union-find), Config, error taxonomy.
//	core/gonumhost - adapts a gonum.org/v1/gonum/graph graph into a core.Host.
//	bns         - balanced network search: single-path augmenting-path
//	              discovery in the unweighted residual network.
//	mv          - the Micali-Vazirani layered shrinking network: phased
//	              augmentation, one walk per phase, with double depth-first search.
//	primaldual  - the surface graph and primal-dual weighted augmenting-path
//	              algorithm.
//	reduce      - the reduction driver: MaxBalancedFlow, MinCostBalancedFlow,
//	              CancelEven/CancelOdd, and the balanced-to-balanced and
//	              graph-to-balanced adapters that let ordinary (non-balanced)
//	              inputs reach the balanced core.
//
// # Quick start
//
//	h := core.NewMemHost(6) // 3 complementary node pairs
//	h.AddEdge(0, 2, 0, 1, 0)
//	h.AddEdge(2, 4, 0, 1, 0)
//	h.AddEdge(4, 0, 0, 1, 0)
//
//	value, err := reduce.MaxBalancedFlow(h, 0, core.DefaultConfig())
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// requirements this module implements and the ledger of what each part is
// grounded on.
package balanced
