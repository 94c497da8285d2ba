package core

// MemHost is a flat, slice-backed Host implementation. It is the reference
// Host used by this module's own tests and by callers who do not already
// have a gonum graph handy (see core/gonumhost for that path); production
// callers are free to implement Host directly over their own storage, which
// is the whole point of the interface: the core never owns a general-purpose
// adjacency representation.
//
// Arcs are allocated four at a time, one quartet per call to AddEdge: if
// AddEdge(u, v, ...) returns a, then a+1 is the reverse (v, u), a+2 is the
// complement (v̄, ū), and a+3 is the reverse-complement (ū, v̄) -- the 4-arc
// orbit a single underlying edge between two node-pairs forms.
type MemHost struct {
	n        Node
	head     []Node
	tail     []Node
	lower    []int64
	upper    []int64
	length   []int64
	flow     []int64
	outHead  []Arc // outHead[v]: first outgoing arc at v
	outNext  []Arc // outNext[a]: next outgoing arc at Tail(a) after a
	complF   func(Node) Node
	hasCosts bool
	hasLower bool
}

// NewMemHost returns an empty MemHost over n nodes (n must be even). The
// default complement is v^1; use NewMemHostWithComplement for any other
// fixed-point-free involution.
func NewMemHost(n Node) *MemHost {
	return NewMemHostWithComplement(n, defaultComplementNode)
}

// NewMemHostWithComplement is NewMemHost with a caller-supplied node
// complement function.
func NewMemHostWithComplement(n Node, compl func(Node) Node) *MemHost {
	h := &MemHost{
		n:       n,
		outHead: make([]Arc, n),
		complF:  compl,
	}
	for v := Node(0); v < n; v++ {
		h.outHead[v] = NoArc
	}

	return h
}

// AddEdge allocates a new quartet of arcs for an edge from u to v with the
// given bounds and length, returning the forward arc's index a (so a+1, a+2,
// a+3 are its reverse, complement, and reverse-complement). flow initialises
// every arc in the quartet to 0; use SetFlow afterwards for a non-default
// starting point.
func (h *MemHost) AddEdge(u, v Node, lower, upper, length int64) Arc {
	a := Arc(len(h.head))
	ubar, vbar := h.complF(u), h.complF(v)

	h.pushArc(u, v, lower, upper, length)     // a:   u -> v
	h.pushArc(v, u, lower, upper, length)     // a+1: v -> u  (reverse)
	h.pushArc(vbar, ubar, lower, upper, length) // a+2: v̄ -> ū  (complement)
	h.pushArc(ubar, vbar, lower, upper, length) // a+3: ū -> v̄  (reverse of complement)

	if lower != 0 {
		h.hasLower = true
	}
	if length != 0 {
		h.hasCosts = true
	}

	return a
}

func (h *MemHost) pushArc(tail, head Node, lower, upper, length int64) {
	idx := Arc(len(h.head))
	h.tail = append(h.tail, tail)
	h.head = append(h.head, head)
	h.lower = append(h.lower, lower)
	h.upper = append(h.upper, upper)
	h.length = append(h.length, length)
	h.flow = append(h.flow, 0)
	h.outNext = append(h.outNext, h.outHead[tail])
	h.outHead[tail] = idx
}

// SetStartingFlow overrides the initial flow of arc a (and leaves its
// complement/reverse untouched -- callers building a pre-balanced network
// should set all four members of a quartet themselves).
func (h *MemHost) SetStartingFlow(a Arc, v int64) { h.flow[a] = v }

func (h *MemHost) NodeCount() Node { return h.n }
func (h *MemHost) ArcCount() Arc   { return Arc(len(h.head)) }

func (h *MemHost) Head(a Arc) Node { return h.head[a] }
func (h *MemHost) Tail(a Arc) Node { return h.tail[a] }

func (h *MemHost) Lower(a Arc) int64 { return h.lower[a] }
func (h *MemHost) Upper(a Arc) int64 { return h.upper[a] }
func (h *MemHost) Length(a Arc) int64 { return h.length[a] }

func (h *MemHost) Flow(a Arc) int64     { return h.flow[a] }
func (h *MemHost) SetFlow(a Arc, v int64) { h.flow[a] = v }

func (h *MemHost) FirstOut(v Node) Arc     { return h.outHead[v] }
func (h *MemHost) NextOut(a Arc, v Node) Arc { return h.outNext[a] }

func (h *MemHost) ComplementNode(v Node) Node { return h.complF(v) }
func (h *MemHost) ComplementArc(a Arc) Arc    { return a.Complement() }

func (h *MemHost) HasCosts() bool       { return h.hasCosts }
func (h *MemHost) HasLowerBounds() bool { return h.hasLower }

// IsAlreadySkewSymmetric is always true for MemHost: AddEdge only ever
// allocates arcs in skew-symmetric quartets.
func (h *MemHost) IsAlreadySkewSymmetric() bool { return true }
