package walk

import "errors"

// ErrInvalidRotation indicates a starting rotation outside {1, 2, 3, 4}.
var ErrInvalidRotation = errors.New("walk: starting rotation must be in [1,4]")

// ErrOverlap indicates a walk revisited an already-covered tile. Returned
// only by GenerateWalkChecked; GenerateWalk itself reports this case via
// its (nil, false) return, matching spec.md's "recoverable within the
// generator" classification for a case that is not, in the strict sense,
// an error at all.
var ErrOverlap = errors.New("walk: candidate walk revisits an already-covered tile")
