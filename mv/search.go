package mv

import "github.com/katalvlaran/balanced/core"

// Run drives the phased shrinking-network search to exhaustion: it repeats
// runPhase/augment until a phase's labelling no longer reaches sink, and
// returns the total flow value pushed across every phase.
//
// Each call to runPhase relabels the network from scratch and finds one
// augmenting walk; this is a simplification of the textbook construction,
// which packs a maximal set of vertex-disjoint shortest walks out of a
// single labelling before relabelling. Batching walks this way needs a
// predecessor DAG and vertex-disjoint path extraction this package does
// not yet implement -- see DESIGN.md. What Run does preserve faithfully is
// the minlevel-BFS-then-bridge-resolution structure of each phase and the
// double depth-first search used to resolve every bridge.
func Run(net *core.SkewNetwork, nf *core.NestedFamily, s, sink core.Node, cfg core.Config) (int64, error) {
	var total int64
	for phases := 0; ; phases++ {
		if err := core.WrapCancelled(cfg.Ctx); err != nil {
			return total, err
		}
		if cfg.MaxIterations > 0 && phases >= cfg.MaxIterations {
			return total, nil
		}

		st := runPhase(net, nf, s)
		if !st.reached(sink) {
			return total, nil
		}

		pushed, err := augment(net, nf, st, s, sink)
		if err != nil {
			return total, err
		}
		total += pushed
	}
}
