package core

// SkewNetwork is a thin view over a Host that exposes the skew-symmetric
// residual-network operations: residual capacity, balanced push, and the
// symmetrise/relax pair of annotations. It owns no storage of
// its own beyond a single "balanced" flag; all node/arc data lives in the
// wrapped Host.
type SkewNetwork struct {
	h        Host
	balanced bool
}

// NewSkewNetwork wraps h. The flow is assumed balanced on entry; call Relax
// explicitly if that is not the case (e.g. immediately after an external
// mutation that did not go through BalancedPush).
func NewSkewNetwork(h Host) *SkewNetwork {
	return &SkewNetwork{h: h, balanced: true}
}

// Host returns the wrapped Host, for components (bns, mv, primaldual) that
// need direct read access beyond SkewNetwork's own API.
func (s *SkewNetwork) Host() Host { return s.h }

// Tail, Head, Reverse, Complement delegate to the Host/Arc arithmetic; they
// exist on SkewNetwork purely so call sites that only hold a *SkewNetwork
// need not also thread the Host through.
func (s *SkewNetwork) Tail(a Arc) Node       { return s.h.Tail(a) }
func (s *SkewNetwork) Head(a Arc) Node       { return s.h.Head(a) }
func (s *SkewNetwork) Reverse(a Arc) Arc     { return a.Reverse() }
func (s *SkewNetwork) Complement(a Arc) Arc  { return s.h.ComplementArc(a) }

// Residual returns u(a) - f(a), the remaining forward capacity of a.
func (s *SkewNetwork) Residual(a Arc) int64 {
	return s.h.Upper(a) - s.h.Flow(a)
}

// BalancedResidual returns min(Residual(a), Residual(a^2)), the amount a
// single balanced_push on a could move without violating either arc's
// capacity or its complement's.
func (s *SkewNetwork) BalancedResidual(a Arc) int64 {
	r := s.Residual(a)
	rc := s.Residual(s.h.ComplementArc(a))
	if rc < r {
		return rc
	}

	return r
}

// BalancedPush increases f(a) and f(a^2) by delta and decreases f(a^1) and
// f(a^3) by delta, preserving both skew-symmetry (f(a)==f(a^2)) and flow
// conservation. Requires 0 <= delta <= BalancedResidual(a); returns
// ErrCapacityExceeded otherwise, and ErrRangeViolation for delta < 0.
func (s *SkewNetwork) BalancedPush(a Arc, delta int64) error {
	if delta < 0 {
		return ErrRangeViolation
	}
	if delta == 0 {
		return nil
	}
	if delta > s.BalancedResidual(a) {
		return ErrCapacityExceeded
	}

	ac := s.h.ComplementArc(a)
	ar := a.Reverse()
	acr := ac.Reverse()

	fa, err := checkOverflow(s.h.Flow(a), delta)
	if err != nil {
		return err
	}
	fac, err := checkOverflow(s.h.Flow(ac), delta)
	if err != nil {
		return err
	}
	far, err := checkOverflow(s.h.Flow(ar), -delta)
	if err != nil {
		return err
	}
	facr, err := checkOverflow(s.h.Flow(acr), -delta)
	if err != nil {
		return err
	}

	s.h.SetFlow(a, fa)
	s.h.SetFlow(ac, fac)
	s.h.SetFlow(ar, far)
	s.h.SetFlow(acr, facr)

	return nil
}

// IsBalanced reports the last value recorded by Symmetrize/Relax. It is an
// annotation only -- SkewNetwork never verifies it against the Host's actual
// flow field, since doing so on every call would defeat the purpose of an
// O(1) check. Callers that need the real answer compare f(a) against
// f(a^2) directly; core.ValidateHost checks structure only, not flow.
func (s *SkewNetwork) IsBalanced() bool { return s.balanced }

// Symmetrize converts a feasible but not-yet-balanced flow (e.g. one
// produced by an ordinary max-flow run against a doubled host, via
// reduce.GraphToBalanced) into a balanced one: f(a) <- (f(a) + f(a^2)) / 2.
// Only to be invoked between algorithm phases, never mid-augmentation.
//
// Folding always lands both a and a^2 on the same value, (f(a)+f(a^2))/2
// truncated toward zero, so the
// half unit f(a)+f(a^2) being odd implies is discarded by this call, not
// preserved on the arc: callers that care (reduce.CancelEven/CancelOdd)
// must inspect HalfIntegral before calling Symmetrize, not after. The
// returned bool reports whether any arc lost a half unit this way, so a
// caller that skipped the pre-pass at least learns it happened.
func (s *SkewNetwork) Symmetrize() bool {
	m := s.h.ArcCount()
	seen := make([]bool, m)
	var hadHalfIntegral bool
	for a := Arc(0); a < m; a++ {
		if seen[a] {
			continue
		}
		ac := s.h.ComplementArc(a)
		sum := s.h.Flow(a) + s.h.Flow(ac)
		if sum%2 != 0 {
			hadHalfIntegral = true
		}
		s.h.SetFlow(a, sum/2)
		s.h.SetFlow(ac, sum/2)
		seen[a], seen[ac] = true, true
	}
	s.balanced = true

	return hadHalfIntegral
}

// Relax marks the flow as no longer guaranteed balanced, e.g. right before
// an external caller mutates the Host outside of BalancedPush.
func (s *SkewNetwork) Relax() { s.balanced = false }

// HalfIntegral reports whether f(a)+f(a^2) is odd, i.e. whether a's pair
// is currently unbalanced by a half unit. Must be called before
// Symmetrize: Symmetrize folds both a and a^2 to the same truncated value,
// so the parity it would report is always even afterward. The repair
// pass (reduce.CancelEven/CancelOdd) reads this fractional state ahead of
// Symmetrize, not after.
func (s *SkewNetwork) HalfIntegral(a Arc) bool {
	ac := s.h.ComplementArc(a)
	return (s.h.Flow(a)+s.h.Flow(ac))%2 != 0
}
