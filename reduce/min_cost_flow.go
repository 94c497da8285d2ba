package reduce

import (
	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/primaldual"
)

// MinCostBalancedFlow computes a minimum-cost maximum balanced s-s̄ flow on
// h, mutating h's flow field in place. As with MaxBalancedFlow, the sink is
// always source's complement.
//
// The weighted search always uses primaldual.PrimalDual1 (the explicit
// modified-length-table recipe); cfg.Algorithm is ignored here, since it
// only selects among the unweighted bns search variants.
//
// Unlike MaxBalancedFlow, this entry point does not run the full
// lower-bound pre-push adapter (the baseline it would need to inject also
// carries a cost contribution PrimalDual1's augmenting search does not
// account for). It does still reject the one lower-bound shape that is
// unconditionally infeasible regardless of cost -- see
// hasInfeasibleSelfLoopLowerBound -- so that genuine violation surfaces as
// core.ErrInfeasible rather than silently ignoring the bound.
func MinCostBalancedFlow(h core.Host, source core.Node, cfg core.Config) (flow int64, cost int64, err error) {
	if cfg.Debug {
		if verr := core.ValidateHost(h); verr != nil {
			return 0, 0, verr
		}
	}
	if h.HasLowerBounds() && hasInfeasibleSelfLoopLowerBound(h) {
		return 0, 0, core.ErrInfeasible
	}
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	g := primaldual.NewGraph(net, nf)
	sink := h.ComplementNode(source)

	return primaldual.PrimalDual1(g, source, sink, cfg)
}
