package primaldual

import (
	"fmt"

	"github.com/katalvlaran/balanced/core"
)

// Compatible verifies the complementary slackness conditions a feasible
// dual must satisfy: ModLength(a) must be non-negative on every arc with
// positive balanced residual capacity. It reports the first violation
// found, or nil if none exists.
func Compatible(g *Graph) error {
	h := g.net.Host()
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		if g.net.BalancedResidual(a) <= 0 {
			continue
		}
		if g.ModLength(a) < 0 {
			return fmt.Errorf("%w: arc %d has negative modified length %d on a residual-positive arc",
				core.ErrInternalInconsistency, a, g.ModLength(a))
		}
	}

	return nil
}

// CheckDual is Compatible plus a cross-check that RecursiveModLength agrees
// with ModLength for every arc. RecursiveModLength currently returns
// ModLength, so the cross-check cannot fail; CheckDual does not read
// PrimalDual1's modlength table.
func CheckDual(g *Graph) error {
	if err := Compatible(g); err != nil {
		return err
	}

	h := g.net.Host()
	for a := core.Arc(0); a < h.ArcCount(); a++ {
		if g.ModLength(a) != g.RecursiveModLength(a) {
			return fmt.Errorf("%w: arc %d modified length %d disagrees with recursive recomputation %d",
				core.ErrInternalInconsistency, a, g.ModLength(a), g.RecursiveModLength(a))
		}
	}

	return nil
}
