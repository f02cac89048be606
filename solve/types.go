package solve

import (
	"bufio"

	"github.com/katalvlaran/pentacube/walk"
)

// DefaultMaxPieceWeight is the constant upper bound CheckMax uses for a
// single remaining piece's weight. It is not derived from the weighting
// table; it is an empirical figure that happened to dominate every
// placement's weight in the original generator's output, exposed here as
// a field rather than baked into CheckMax so a caller regenerating
// placements under a different weighting can supply a value that still
// dominates.
const DefaultMaxPieceWeight = 29.0 / 6.0

// scoreEpsilon is how close current_score must be to best_score for a
// solution to be printed.
const scoreEpsilon = 0.001

// Data is the state threaded through every dlx extension point during one
// search: the fixed head of the weight-sorted placement list, the running
// score and best score, the set of covered tiles, and the count of pieces
// placed so far.
type Data struct {
	// Head is the permanent head of the full, weight-sorted placement
	// list produced by walk.GenerateAll. It is never reassigned, even
	// though individual placements are spliced out and back in by
	// Before/After — PrefixMaxSum always starts its scan here.
	Head *walk.Placement

	// BestScore is the highest current_score seen at a complete exact
	// cover so far.
	BestScore float64
	// CurrentScore is the summed weight of the placements on the active
	// DFS path.
	CurrentScore float64
	// Graph is the 60-bit set of tiles covered on the active DFS path.
	Graph uint64
	// K is the count of pieces placed on the active DFS path.
	K int

	// MaxPieceWeight bounds a single remaining piece's weight for
	// CheckMax. Defaults to DefaultMaxPieceWeight via Setup.
	MaxPieceWeight float64

	// Out receives each printed solution block. Setup wraps whatever
	// io.Writer it is given in a *bufio.Writer; SolutionCallback flushes
	// it after every block it writes.
	Out *bufio.Writer
}
