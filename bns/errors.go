package bns

import "errors"

// ErrNoAugmentingWalk is returned by Search when the sink is unreachable
// from the source in the current residual network: the flow is already
// maximum along every path this search variant can find.
var ErrNoAugmentingWalk = errors.New("bns: no augmenting walk found")
