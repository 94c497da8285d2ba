package reduce

import (
	"errors"

	"github.com/katalvlaran/balanced/bns"
	"github.com/katalvlaran/balanced/core"
	"github.com/katalvlaran/balanced/mv"
)

// MaxBalancedFlow computes the value of a maximum balanced s-s̄ flow on h,
// mutating h's flow field in place via the underlying SkewNetwork. The sink
// is always source's complement: a balanced network's distinguished source
// and sink are a complementary pair by construction, so no separate sink
// argument is accepted.
//
// cfg.Algorithm selects the search used at each augmentation: the default
// (AlgoKocayStone, AlgoKamedaMunro, AlgoHeuristicFirstPass) drives repeated
// single-path bns.AugmentOne calls; AlgoMicaliVazirani switches to mv.Run's
// phased search (one walk per phase) instead.
//
// When h.HasLowerBounds(), h must be a *core.MemHost: applyLowerBounds
// builds the feasible baseline (lower bound plus routed excess) on a
// scratch host, runs the chosen search from there, and copies the
// resulting flow back onto h. core.ErrInfeasible is returned, with h left
// untouched, when no such baseline exists.
func MaxBalancedFlow(h core.Host, source core.Node, cfg core.Config) (int64, error) {
	if cfg.Debug {
		if err := core.ValidateHost(h); err != nil {
			return 0, err
		}
	}

	if h.HasLowerBounds() {
		mh, ok := h.(*core.MemHost)
		if !ok {
			return 0, core.ErrInternalInconsistency
		}

		baseline, err := applyLowerBounds(mh, cfg)
		if err != nil {
			return 0, err
		}

		if _, err := maxBalancedFlowNoLowerBounds(baseline, source, cfg); err != nil {
			return 0, err
		}

		for a := core.Arc(0); a < mh.ArcCount(); a++ {
			mh.SetFlow(a, baseline.Flow(a))
		}

		var total int64
		for _, a := range core.Outgoing(mh, source) {
			total += mh.Flow(a)
		}

		return total, nil
	}

	return maxBalancedFlowNoLowerBounds(h, source, cfg)
}

// maxBalancedFlowNoLowerBounds is MaxBalancedFlow's search body, run once
// any lower-bound baseline has already been folded into h's starting flow.
func maxBalancedFlowNoLowerBounds(h core.Host, source core.Node, cfg core.Config) (int64, error) {
	net := core.NewSkewNetwork(h)
	nf := core.NewNestedFamily(h.NodeCount())
	sink := h.ComplementNode(source)

	if cfg.Algorithm == core.AlgoMicaliVazirani {
		return mv.Run(net, nf, source, sink, cfg)
	}

	return bnsAndAugment(net, nf, source, sink, cfg)
}

// bnsAndAugment repeats bns.AugmentOne until no augmenting walk remains,
// accumulating the total flow pushed. This is the recipe behind
// MaxBalancedFlow's default (non-Micali-Vazirani) dispatch.
func bnsAndAugment(net *core.SkewNetwork, nf *core.NestedFamily, s, sink core.Node, cfg core.Config) (int64, error) {
	var total int64
	for iter := 0; ; iter++ {
		if err := core.WrapCancelled(cfg.Ctx); err != nil {
			return total, err
		}
		if cfg.MaxIterations > 0 && iter >= cfg.MaxIterations {
			return total, nil
		}

		pushed, err := bns.AugmentOne(net, nf, s, sink, cfg)
		if err != nil {
			if errors.Is(err, bns.ErrNoAugmentingWalk) {
				return total, nil
			}

			return total, err
		}
		total += pushed
	}
}
