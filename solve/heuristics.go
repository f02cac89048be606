package solve

import (
	"math/bits"

	"github.com/katalvlaran/pentacube/cube"
)

// floodDirections is the fixed direction order flood walks each tile's
// neighbours in; order doesn't affect the result, only the number of
// recursive calls before a tile is already marked.
var floodDirections = [4]cube.Direction{cube.UP, cube.RIGHT, cube.DOWN, cube.LEFT}

// flood extends the 60-bit set graph with every tile reachable from t
// without crossing an already-set bit, i.e. the connected component of
// uncovered tiles containing t.
func flood(graph uint64, t cube.Tile) uint64 {
	bit := uint64(1) << uint(t)
	if graph&bit != 0 {
		return graph
	}
	graph |= bit
	for _, dir := range floodDirections {
		graph = flood(graph, cube.Neighbour(t, dir))
	}
	return graph
}

// firstClearTile returns the lowest-indexed tile not yet set in graph.
// Only ever called for k in [2,4], where at most 4*5=20 of 60 tiles can be
// covered, so some tile is always clear.
func firstClearTile(graph uint64) cube.Tile {
	for t := 0; t < cube.TileCount; t++ {
		if graph&(1<<uint(t)) == 0 {
			return cube.Tile(t)
		}
	}
	return cube.TileCount
}

// FloodFill prunes a branch whose remaining uncovered region can't
// possibly be tiled by whole pentominoes: only active for k in [2,4] (the
// original generator's own empirical window — outside it the check is
// either too cheap to matter or too expensive relative to the branching
// it prevents). It floods the complement graph from the lowest uncovered
// tile and rejects if that component's size isn't a multiple of 5.
//
// flood returns d.Graph unioned with the newly reached component, so its
// popcount is (covered tiles) + (new component size). Covered tiles are
// always a multiple of 5 (each placed piece covers exactly 5), so checking
// the union's popcount mod 5 is equivalent to checking the new component's
// size mod 5, without computing it separately.
func FloodFill(data any) bool {
	d := data.(*Data)
	if d.K < 2 || d.K > 4 {
		return false
	}
	start := firstClearTile(d.Graph)
	component := flood(d.Graph, start)
	return bits.OnesCount64(component)%5 != 0
}

// PrefixMaxSum prunes a branch whose current score, plus the best possible
// contribution of the remaining 12-K pieces, still falls short of the best
// score found so far. The bound sums the first 12-K weights reached from
// Head by following Next, the same list Before/After keep partially
// hidden. Hide repoints a hidden placement's neighbors past it, so the
// scan passes over placements hidden behind a linked neighbor. Head itself
// is always counted, hidden or not, and a scan starting at a hidden Head
// follows Head's own untouched Next; since the list is sorted by weight
// descending, either case can only raise the sum. If the list is shorter
// than 12-K, the missing entries contribute zero.
func PrefixMaxSum(data any) bool {
	d := data.(*Data)
	remaining := cube.PieceCount - d.K
	sum := d.CurrentScore
	p := d.Head
	for i := 0; i < remaining && p != nil; i++ {
		sum += p.Weight
		p = p.Next
	}
	return sum < d.BestScore
}

// CheckMax prunes a branch using a constant per-piece weight bound instead
// of the placement list: cheaper than PrefixMaxSum, useful as a fast first
// check before it.
func CheckMax(data any) bool {
	d := data.(*Data)
	remaining := float64(cube.PieceCount - d.K)
	return d.CurrentScore+d.MaxPieceWeight*remaining < d.BestScore
}
