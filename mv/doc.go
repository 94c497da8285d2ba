// Package mv implements the Micali-Vazirani layered shrinking network: a
// phased augmenting algorithm for balanced flow that resolves bridges
// discovered mid-phase with an explicit double depth-first search (DDFS).
// Each phase augments along one shortest augmenting walk; it does not
// extract a set of several vertex-disjoint walks from one labelling.
//
// # Phases
//
// Each phase runs a breadth-first minlevel labelling from the source. A
// "bridge" arc -- an arc whose head's complement is already labelled at the
// moment the arc is relaxed -- is resolved by DDFS on the spot, during the
// BFS: it closes an odd blossom, shrunk via core.NestedFamily exactly as
// bns does. When the labelling reaches the sink, Run augments along that
// one walk, then starts a fresh phase against the updated residual network,
// and stops once a phase does not reach the sink.
//
// # DDFS
//
// The DDFS subroutine (ddfs.go) advances two pointers -- one from each
// endpoint of a bridge -- one step at a time along prop chains, always
// stepping the pointer currently further from the source, using two
// support stacks (support_stack.go) to record each side's path so it can be
// replayed once a common ancestor (the blossom base, or a dead end)
// is found. This is the structural core the package is named for; bns's
// single-path search solves the same sub-problem with a simpler one-shot
// chain climb because it never needs to interleave multiple in-flight
// discoveries.
package mv
