package primaldual

import "github.com/katalvlaran/balanced/core"

// Graph wraps a balanced skew-symmetric network with the node potentials
// the primal-dual recipes need: one int64 per node, indexed through the
// node's current blossom representative so a shrunk node's potential is
// always read from (and shifted on) its blossom's entry.
type Graph struct {
	net   *core.SkewNetwork
	nf    *core.NestedFamily
	pi    []int64
	duals map[core.Node]int64
}

// NewGraph wraps net for primal-dual use, sharing nf (the blossom family)
// with whatever search discovered it so potentials and blossom membership
// stay consistent across repeated augmentations.
func NewGraph(net *core.SkewNetwork, nf *core.NestedFamily) *Graph {
	return &Graph{
		net:   net,
		nf:    nf,
		pi:    make([]int64, net.Host().NodeCount()),
		duals: make(map[core.Node]int64),
	}
}

func (g *Graph) Net() *core.SkewNetwork   { return g.net }
func (g *Graph) Family() *core.NestedFamily { return g.nf }

// Potential returns the current potential of v's blossom representative.
func (g *Graph) Potential(v core.Node) int64 { return g.pi[g.nf.Find(v)] }

// ShiftPotential increases the potential of v's representative by epsilon
// and decreases its complement's representative potential by the same
// amount, preserving the skew-symmetric convention pi(v̄) == -pi(v).
func (g *Graph) ShiftPotential(v core.Node, epsilon int64) {
	rep := g.nf.Find(v)
	repC := g.nf.Find(g.net.Host().ComplementNode(v))
	g.pi[rep] += epsilon
	g.pi[repC] -= epsilon
}

// ModLength returns the modified length w(a) + pi(tail) - pi(head),
// recomputed directly from the current potential array. Complementary
// slackness requires this to be non-negative for every arc with positive
// balanced residual capacity.
func (g *Graph) ModLength(a core.Arc) int64 {
	h := g.net.Host()

	return h.Length(a) + g.Potential(h.Tail(a)) - g.Potential(h.Head(a))
}

// RecursiveModLength recomputes ModLength by walking up through any
// blossom nesting rather than trusting a cached value. In this
// implementation potentials already live at one level (a blossom
// representative directly carries the combined potential of everything
// merged into it, rather than a per-level stack of virtual-node
// potentials), so RecursiveModLength and ModLength coincide; it is kept as
// a distinct entry point, and CheckDual compares the two.
func (g *Graph) RecursiveModLength(a core.Arc) int64 { return g.ModLength(a) }

// BlossomDual returns the current dual value y for blossom representative
// rep, or 0 if rep does not carry one.
func (g *Graph) BlossomDual(rep core.Node) int64 { return g.duals[rep] }

// SetBlossomDual records y as rep's dual value. shrinkPD does not call it:
// it writes the initial entry into the dual table directly when a blossom
// forms.
func (g *Graph) SetBlossomDual(rep core.Node, y int64) { g.duals[rep] = y }

// TightestBlossomDual returns the representative and value of the smallest
// dual among blossoms still shrunk (top-level under nf), and whether any
// such blossom exists at all -- the epsilon3 candidate of a round's dual
// update.
func (g *Graph) TightestBlossomDual() (rep core.Node, value int64, found bool) {
	for r, y := range g.duals {
		if g.nf.Find(r) != r {
			continue // absorbed into a later blossom, no longer active
		}
		if !found || y < value {
			rep, value, found = r, y, true
		}
	}

	return rep, value, found
}

// ShiftBlossomDuals decreases every active blossom's dual by epsilon, the
// mirror image of ShiftPotential's increase on the node side: a dual only
// ever falls, until it reaches zero and the blossom expands.
func (g *Graph) ShiftBlossomDuals(epsilon int64) {
	for r := range g.duals {
		if g.nf.Find(r) != r {
			continue
		}
		g.duals[r] -= epsilon
	}
}

// ExpandBlossom re-exposes rep's immediate children through the nested
// family and forgets its dual, the epsilon3 counterpart to shrinkPD's
// contraction.
func (g *Graph) ExpandBlossom(rep core.Node) []core.Node {
	delete(g.duals, rep)

	return g.nf.Split(rep)
}
