package walk

import "github.com/katalvlaran/pentacube/cube"

// Placement is one candidate pentomino placement: a 72-bit characteristic
// vector (cube.ColumnCount positions, 0/1) split into a 60-bit tile mask
// ([0,60)) and a 12-bit piece-identity mask ([60,72), exactly one set).
//
// Placements are generated once by GenerateAll and form a doubly linked
// list ordered by Weight descending; Prev and Next are owned by that list
// and by the hide/show bookkeeping package solve performs during search —
// see Hide and Show.
type Placement struct {
	// Bits is the 72-element 0/1 characteristic vector: Bits[t] for tile
	// t in [0,60), Bits[60+p] for piece identity p in [0,12).
	Bits [cube.ColumnCount]int

	// Flags duplicates the tile-coverage half of Bits as a 60-bit set,
	// for O(1) union/intersection during search.
	Flags uint64

	// Weight is the maximum, over the six cube faces, of the summed
	// cube.Area of this placement's five covered tiles.
	Weight float64

	// PieceIndex is the piece identity (0..11) this placement covers.
	PieceIndex int

	// Prev and Next thread the weight-sorted placement list. Both are
	// nil at the list's ends.
	Prev, Next *Placement
}

// Tiles returns the covered tile indices in ascending order.
func (p *Placement) Tiles() []cube.Tile {
	tiles := make([]cube.Tile, 0, 5)
	for t := 0; t < cube.TileCount; t++ {
		if p.Bits[t] == 1 {
			tiles = append(tiles, cube.Tile(t))
		}
	}
	return tiles
}

// Equal reports whether p and q cover the same 72-bit row.
func (p *Placement) Equal(q *Placement) bool {
	return p.Bits == q.Bits
}
