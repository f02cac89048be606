package dlx

import "errors"

// ErrInvalidColumnCount is returned by NewSolver when columnCount is not positive.
var ErrInvalidColumnCount = errors.New("dlx: column count must be positive")

// ErrRowWidthMismatch is returned by AddRow when the supplied bit vector's
// length does not equal the solver's column count.
var ErrRowWidthMismatch = errors.New("dlx: row width does not match column count")
