package core

import "context"

// Algorithm selects the unweighted balanced-search variant used by bns and,
// transitively, by reduce.MaxBalancedFlow's BNSAndAugment recipe.
type Algorithm int

const (
	// AlgoKocayStone is the exact, O(n*m) breadth-first variant. Default.
	AlgoKocayStone Algorithm = iota

	// AlgoKamedaMunro is the expected-fast depth-first variant; falls back
	// to AlgoKocayStone internally on failure.
	AlgoKamedaMunro

	// AlgoHeuristicFirstPass runs an unproven heuristic breadth-first pass
	// as a cheap first attempt, always followed by one confirmatory
	// AlgoKocayStone pass. See DESIGN.md for why this mode exists but is
	// never chosen automatically.
	AlgoHeuristicFirstPass

	// AlgoMicaliVazirani selects the phased layered shrinking search (mv
	// package), which augments along one walk per phase, instead of BNS.
	AlgoMicaliVazirani
)

// String renders the Algorithm name for debug output and error messages.
func (a Algorithm) String() string {
	switch a {
	case AlgoKocayStone:
		return "kocay-stone"
	case AlgoKamedaMunro:
		return "kameda-munro"
	case AlgoHeuristicFirstPass:
		return "heuristic-first-pass"
	case AlgoMicaliVazirani:
		return "micali-vazirani"
	default:
		return "unknown"
	}
}

// Config carries every knob a solver entry point accepts as an explicit
// value passed at each call, rather than a package-level default.
type Config struct {
	// Algorithm selects the unweighted search variant. Ignored by
	// min-cost entry points, which always use the primal-dual admissible
	// search.
	Algorithm Algorithm

	// Debug enables invariant checkpoints (ValidateHost, dual-feasibility
	// checks in primaldual). It produces no output of its own. Costs extra
	// O(n+m) work per call; never enable in production hot paths.
	Debug bool

	// Ctx is polled at well-defined checkpoints: between BFS layers,
	// between MV phases, between primal-dual iterations. A nil Ctx is
	// treated as context.Background().
	Ctx context.Context

	// MaxIterations bounds the number of augmentations/dual updates a
	// single entry point will perform, guarding against runaway loops from a
	// malformed Host. When the bound is hit the entry point stops and returns
	// the flow accumulated so far with a nil error. Zero means unbounded.
	MaxIterations int
}

// Option configures a Config via the functional-options pattern.
type Option func(*Config)

// WithAlgorithm selects the unweighted search variant.
func WithAlgorithm(a Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithDebug turns on invariant checkpoints.
func WithDebug() Option {
	return func(c *Config) { c.Debug = true }
}

// WithContext supplies the cooperative cancellation token.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.Ctx = ctx }
}

// WithMaxIterations bounds the number of augmentation/dual-update rounds.
func WithMaxIterations(n int) Option {
	return func(c *Config) { c.MaxIterations = n }
}

// DefaultConfig returns production-safe defaults: Kocay-Stone search, no
// debug checks, context.Background(), unbounded iterations.
func DefaultConfig(opts ...Option) Config {
	c := Config{
		Algorithm: AlgoKocayStone,
		Ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Ctx == nil {
		c.Ctx = context.Background()
	}

	return c
}
