// Package bns implements balanced network search (BNS): finding a single
// valid alternating walk from a source to a sink in the unweighted residual
// network of a skew-symmetric flow, or certifying that none exists.
//
// Three variants are offered, selected by core.Config.Algorithm:
//
//   - KocayStone: exact, O(n*m) breadth-first search. The default.
//   - KamedaMunro: depth-first, expected-fast variant that falls back to
//     KocayStone on failure.
//   - HeuristicBF: a simplified breadth-first first pass without explicit
//     blossom formation. Never chosen by Search automatically -- see
//     DESIGN.md's Open Question decision -- but exported for callers who
//     explicitly opt into core.AlgoHeuristicFirstPass, which always runs a
//     confirmatory KocayStone pass afterwards.
//
// A successful search leaves a SearchState with distance labels, prop/petal
// arcs, and blossom membership in the caller's core.NestedFamily; Expand
// turns that into the real arc sequence forming the augmenting walk, and
// Augment performs the corresponding balanced push.
package bns
