package core

// Node indexes a vertex 0..n-1. n is always even: every node has a distinct
// complement, and NodeCount()/2 is the number of complementary pairs.
type Node int64

// Arc indexes a directed arc 0..2m-1. Every arc a has a reverse a^1 (the
// same edge, opposite direction) and a complement a^2 (the edge connecting
// Head(a)'s complement to Tail(a)'s complement); {a, a^1, a^2, a^3} is a
// 4-orbit under the group generated by reverse and complement.
type Arc int64

// NoNode is the sentinel for "no node" (e.g. an unset base or predecessor).
const NoNode Node = -1

// NoArc is the sentinel for "no arc" (e.g. an unset prop or petal).
const NoArc Arc = -1

// Reverse returns a^1: the same edge traversed in the opposite direction.
func (a Arc) Reverse() Arc { return a ^ 1 }

// Complement returns a^2: the arc connecting Tail(a)'s complement to
// Head(a)'s complement.
func (a Arc) Complement() Arc { return a ^ 2 }

// ReverseComplement returns a^3, the fourth member of a's 4-orbit.
func (a Arc) ReverseComplement() Arc { return a ^ 3 }

// IsForward reports whether a is the canonical (even-indexed) direction of
// its underlying edge. Arc indices are always allocated in forward/reverse
// pairs, so a is forward iff its low bit is 0.
func (a Arc) IsForward() bool { return a&1 == 0 }

// defaultComplementNode is the standard pairing v̄ = v xor 1, used unless a
// Host overrides it via ComplementNode.
func defaultComplementNode(v Node) Node { return v ^ 1 }
