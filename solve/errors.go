package solve

import "errors"

// ErrNoPlacements is returned by Setup when walk.GenerateAll produces an
// empty placement list: the resulting matrix could never yield a solution.
var ErrNoPlacements = errors.New("solve: no placements generated")
