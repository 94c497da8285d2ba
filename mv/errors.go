package mv

import "errors"

// ErrNoAugmentingWalk is returned once a phase's labelling fails to reach
// the sink: the flow is maximum with respect to this algorithm.
var ErrNoAugmentingWalk = errors.New("mv: no augmenting walk found")
