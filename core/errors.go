package core

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared by every package in this module. Every failure path
// in the balanced-flow core maps onto exactly one of these seven.
var (
	// ErrRangeViolation indicates a node or arc index was out of bounds.
	// Only raised at API entry points, and only when core.Config.Debug is set.
	ErrRangeViolation = errors.New("core: index out of range")

	// ErrCapacityExceeded indicates a balanced push would exceed residual
	// capacity. This always indicates a bug in the calling search, not a
	// property of the input network, and is fatal.
	ErrCapacityExceeded = errors.New("core: balanced push exceeds residual capacity")

	// ErrNonBalancedState indicates an operation that requires a balanced
	// flow was invoked while the flow is half-integral or unsymmetrised.
	ErrNonBalancedState = errors.New("core: flow is not balanced")

	// ErrInfeasible indicates no s-t balanced flow exists given the lower
	// bound constraints. Returned cleanly; the host's flow field is left at
	// the largest feasible prefix found.
	ErrInfeasible = errors.New("core: no feasible balanced flow exists")

	// ErrNumericOverflow indicates a capacity, flow, potential, or cost
	// exceeded the representable range of int64.
	ErrNumericOverflow = errors.New("core: numeric overflow")

	// ErrInternalInconsistency indicates an invariant check failed (e.g. a
	// negative modified length, a missing prop ancestor). Only surfaces in
	// debug builds; production policy is fail-fast to preserve debuggability.
	ErrInternalInconsistency = errors.New("core: internal invariant violated")

	// ErrCancelled indicates the cancellation token (context.Context) was
	// observed during a natural checkpoint.
	ErrCancelled = errors.New("core: cancelled")
)

// WrapCancelled turns a context error into ErrCancelled, preserving it for
// errors.Is(err, context.Canceled) / errors.Is(err, context.DeadlineExceeded)
// via %w chaining. Returns nil if ctx carries no error.
func WrapCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return nil
}

// checkOverflow reports ErrNumericOverflow if adding b to a would overflow
// int64, otherwise returns a+b and a nil error. BalancedPush runs its flow
// updates through this helper.
func checkOverflow(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrNumericOverflow
	}

	return sum, nil
}
