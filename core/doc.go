// Package core provides the foundational data model for the balanced
// (skew-symmetric) network flow solvers in this module: the node/arc index
// arithmetic, the Host contract a caller-supplied graph must satisfy, the
// SkewNetwork view that turns a Host into a balanced-push residual network,
// and the NestedFamily union-find structure the augmenting-path searches in
// bns, mv, and primaldual use to track blossoms.
//
// # Skew symmetry
//
// Every node v has a complement v̄ (v^1 by default — any fixed-point-free
// involution works, see NewMemHostWithComplement) and every arc a has a reverse
// a^1 and a complement a^2, so that {a, a^1, a^2, a^3} forms a 4-orbit.
// A flow is balanced when f(a) == f(a^2) for every arc; SkewNetwork.BalancedPush
// maintains that invariant by construction — it always updates a pair of
// complementary arcs by the same delta, so a caller cannot produce an
// unbalanced flow through this API short of calling Relax first.
//
// # Host
//
// core does not own adjacency storage. A Host is supplied by the caller —
// either hand-written, or adapted from a gonum graph via core/gonumhost —
// and core only ever reads head/tail/capacity/cost/flow through it and
// writes flow back through SetFlow. This keeps the package free of any
// adjacency-list or iterator implementation of its own.
//
// # Errors
//
// All failure modes funnel through the seven sentinels in errors.go
// (ErrRangeViolation, ErrCapacityExceeded, ErrNonBalancedState, ErrInfeasible,
// ErrNumericOverflow, ErrInternalInconsistency, ErrCancelled). Callers branch
// with errors.Is; see errors.go for the full taxonomy and propagation rules.
//
// # Configuration
//
// Config is built with functional options (Option), the same pattern
// dijkstra.Options/dijkstra.Option use in the sibling graph library this
// module's style is drawn from: WithAlgorithm selects the unweighted search
// variant, WithDebug turns on invariant checkpoints, WithContext supplies the cooperative cancellation token, and
// WithMaxIterations bounds runaway loops in production.
package core
