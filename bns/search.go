package bns

import "github.com/katalvlaran/balanced/core"

// Search runs the balanced network search variant named by cfg.Algorithm
// from s, looking for sink. It returns the resulting SearchState along
// with ErrNoAugmentingWalk if sink was not reached -- the SearchState is
// still returned in that case so callers can inspect which side of the
// network was explored (useful for certifying infeasibility).
func Search(net *core.SkewNetwork, nf *core.NestedFamily, s, sink core.Node, cfg core.Config) (*SearchState, error) {
	if err := core.WrapCancelled(cfg.Ctx); err != nil {
		return nil, err
	}

	var st *SearchState
	switch cfg.Algorithm {
	case core.AlgoKamedaMunro:
		st = KamedaMunro(net, nf, s, sink)
	case core.AlgoHeuristicFirstPass:
		_ = HeuristicBF(net, nf, s) // fast first pass, result intentionally discarded
		st = KocayStone(net, nf, s) // confirmatory exact pass, always run
	default:
		st = KocayStone(net, nf, s)
	}

	if !st.Reached(sink) {
		return st, ErrNoAugmentingWalk
	}

	return st, nil
}

// AugmentOne runs Search from s to sink and, on success, pushes one
// balanced augmenting walk through the result. It returns the amount of
// flow pushed.
func AugmentOne(net *core.SkewNetwork, nf *core.NestedFamily, s, sink core.Node, cfg core.Config) (int64, error) {
	st, err := Search(net, nf, s, sink, cfg)
	if err != nil {
		return 0, err
	}

	return Augment(net, nf, st, sink)
}
