// Package reduce is the top-level driver: it dispatches MaxBalancedFlow and
// MinCostBalancedFlow to the unweighted and weighted solvers in bns, mv and
// primaldual, repairs half-integral flows produced by non-balance-aware
// augmentation (CancelEven/CancelOdd), and adapts inputs that do not start
// out in balanced form (GraphToBalanced, BalancedToBalanced) so they can
// reach those solvers at all.
//
// # Entry points
//
//	MaxBalancedFlow(h, s, cfg)       -> flow value
//	MinCostBalancedFlow(h, s, cfg)   -> flow value, cost
//
// Both read the sink as s's complement (core.Host.ComplementNode(s)),
// matching the convention that a balanced network's distinguished source
// and sink are always a complementary pair.
//
// # Recipes
//
// MaxBalancedFlow's default recipe is single-path balanced network search
// (bns.AugmentOne) repeated to exhaustion; core.WithAlgorithm(core.AlgoMicaliVazirani)
// switches it to mv.Run's phased search (one walk per phase) instead. BalancedScaling
// and Anstee are exported separately for callers who want those recipes
// explicitly -- neither is wired into the Algorithm-based dispatch, since
// core.Algorithm already serves a different purpose (selecting a bns search
// variant); see DESIGN.md.
//
// MinCostBalancedFlow always uses primaldual.PrimalDual1.
package reduce
