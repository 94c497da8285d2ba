package core

// Host is the external graph object the balanced-flow core consumes. It owns
// all adjacency storage and incidence iteration; core never allocates a
// sparse adjacency list of its own. A Host is immutable during a solver
// invocation except through SetFlow, which SkewNetwork's balanced push and
// Symmetrize call, and which the reduce package also calls directly
// (Anstee's plain augmentation, CancelEven, the lower-bound baseline copy).
//
// Implementations are not required to be safe for concurrent use: this
// module follows a single-threaded, single-invocation-owns-the-network
// model throughout.
type Host interface {
	// NodeCount returns n, the number of nodes. n is always even.
	NodeCount() Node

	// ArcCount returns 2m, the number of directed arc slots.
	ArcCount() Arc

	// Head and Tail return the endpoints of arc a.
	Head(a Arc) Node
	Tail(a Arc) Node

	// Lower and Upper return the capacity bounds ℓ(a) <= f(a) <= u(a).
	Lower(a Arc) int64
	Upper(a Arc) int64

	// Length returns the integer cost w(a) of arc a.
	Length(a Arc) int64

	// Flow returns the current flow f(a).
	Flow(a Arc) int64

	// SetFlow assigns f(a) = v for the single arc a; it does not touch a^2.
	// SkewNetwork.BalancedPush updates a and a^2 together, while direct
	// callers in reduce may leave them unequal until a later Symmetrize. A
	// Host must not be mutated any other way while a solver holds it.
	SetFlow(a Arc, v int64)

	// FirstOut returns the first outgoing arc at v, or NoArc if v has none.
	FirstOut(v Node) Arc

	// NextOut returns the next outgoing arc at v after a (a must itself be
	// an outgoing arc of v), or NoArc if a was the last.
	NextOut(a Arc, v Node) Arc

	// ComplementNode returns v̄. Must be a fixed-point-free involution.
	ComplementNode(v Node) Node

	// ComplementArc returns a^2, consistent with ComplementNode: if
	// a = (u, v) then ComplementArc(a) = (ComplementNode(v), ComplementNode(u)).
	ComplementArc(a Arc) Arc

	// HasCosts reports whether Length carries meaningful data; when false,
	// weighted algorithms (primaldual) must not be invoked directly.
	HasCosts() bool

	// HasLowerBounds reports whether any arc has Lower(a) > 0.
	HasLowerBounds() bool

	// IsAlreadySkewSymmetric reports whether the host's capacities, costs
	// and starting flow already satisfy the skew-symmetry invariants
	// (ℓ(a^2)==ℓ(a), u(a^2)==u(a), w(a^2)==w(a), f(a)==f(a^2)).
	// When false, reduce.GraphToBalanced must be used to adapt the host
	// before any solver entry point is invoked.
	IsAlreadySkewSymmetric() bool
}

// Outgoing returns every outgoing arc of v, in the Host's stable but
// arbitrary iteration order. It is a thin convenience wrapper around
// FirstOut/NextOut for callers (tests, adapters) that do not need to avoid
// the allocation.
func Outgoing(h Host, v Node) []Arc {
	var arcs []Arc
	for a := h.FirstOut(v); a != NoArc; a = h.NextOut(a, v) {
		arcs = append(arcs, a)
	}

	return arcs
}

// ValidateHost performs the range and skew-symmetry checks a host must
// satisfy before any solver runs against it. It is cheap enough (O(n+m)) to
// run once per solver entry point when Config.Debug is set.
func ValidateHost(h Host) error {
	n := h.NodeCount()
	m := h.ArcCount()
	if n%2 != 0 {
		return ErrRangeViolation
	}
	for v := Node(0); v < n; v++ {
		if h.ComplementNode(h.ComplementNode(v)) != v {
			return ErrInternalInconsistency
		}
		if h.ComplementNode(v) == v {
			return ErrInternalInconsistency
		}
	}
	for a := Arc(0); a < m; a++ {
		if a.Reverse().Reverse() != a || a.Complement().Complement() != a {
			return ErrInternalInconsistency
		}
		if h.Head(a) < 0 || h.Head(a) >= n || h.Tail(a) < 0 || h.Tail(a) >= n {
			return ErrRangeViolation
		}
		if h.Lower(a) > h.Upper(a) {
			return ErrInternalInconsistency
		}
		ca := h.ComplementArc(a)
		if ca < 0 || ca >= m {
			return ErrRangeViolation
		}
		if h.Lower(ca) != h.Lower(a) || h.Upper(ca) != h.Upper(a) || h.Length(ca) != h.Length(a) {
			return ErrInternalInconsistency
		}
	}

	return nil
}
