package cube

// neighbour is the 4-regular adjacency table: neighbour[t][d-1] is the tile
// reached by stepping off tile t in direction d (UP, RIGHT, DOWN, LEFT).
// The graph is symmetric as an undirected graph. Some edges cross a face
// boundary ("portal" edges); at those edges the walker's local frame twists,
// recorded in rotation.
var neighbour = [TileCount][4]Tile{
	{55, 15, 4, 59}, {57, 2, 5, 56}, {58, 3, 6, 1}, {59, 4, 7, 2}, {0, 14, 8, 3},
	{1, 6, 9, 22}, {2, 7, 10, 5}, {3, 8, 11, 6}, {4, 13, 12, 7}, {5, 10, 16, 23},
	{6, 11, 16, 9}, {7, 12, 17, 10}, {8, 13, 18, 11}, {8, 14, 19, 12}, {4, 15, 20, 13},
	{0, 51, 21, 14}, {10, 17, 24, 9}, {11, 18, 25, 16}, {12, 19, 26, 17}, {13, 20, 27, 18},
	{14, 21, 34, 19}, {15, 47, 38, 20}, {5, 23, 28, 56}, {9, 24, 29, 22}, {16, 25, 30, 23},
	{17, 26, 31, 24}, {18, 27, 32, 25}, {19, 34, 33, 26}, {22, 29, 43, 52}, {23, 30, 39, 28},
	{24, 31, 35, 29}, {25, 32, 35, 30}, {26, 33, 36, 31}, {27, 34, 37, 32}, {27, 20, 38, 33},
	{31, 36, 39, 30}, {32, 37, 40, 35}, {33, 38, 41, 36}, {34, 21, 42, 37}, {35, 40, 43, 29},
	{36, 41, 44, 39}, {37, 42, 45, 40}, {38, 47, 46, 41}, {39, 44, 48, 28}, {40, 45, 48, 43},
	{41, 46, 49, 44}, {42, 47, 50, 45}, {42, 21, 51, 46}, {44, 49, 52, 43}, {45, 50, 53, 48},
	{46, 51, 54, 49}, {47, 15, 55, 50}, {48, 53, 56, 28}, {49, 54, 57, 52}, {50, 55, 58, 53},
	{51, 0, 59, 54}, {52, 57, 1, 22}, {53, 58, 1, 56}, {54, 59, 2, 57}, {55, 0, 3, 58},
}

// rotation is the per-edge frame twist applied when crossing that edge,
// indexed like neighbour: rotation[t][d-1] is the number of quarter-turns
// added to the walker's rotation when stepping off tile t in direction d.
var rotation = [TileCount][4]int{
	{3, 1, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 1, 0, 0},
	{0, 0, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 3, 3},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 0, 0, 0}, {3, 0, 0, 0},
	{3, 2, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 1, 0}, {0, 2, 1, 0}, {1, 0, 0, 2}, {1, 0, 0, 0}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 3, 2}, {0, 0, 3, 0},
	{0, 0, 3, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 3, 0, 0},
	{0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 0, 1},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 3, 1}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {3, 2, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 0},
	{0, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{0, 1, 0, 0}, {0, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
}

// Fractional face-area weights used by area below: a tile's area is
// partitioned across the faces it touches, summing to exactly one.
const (
	areaS = 1.0 / 6.0
	areaM = 1.0 / 2.0
	areaB = 5.0 / 6.0
	areaN = 1.0
)

// area maps each tile to its fractional area contribution to each of the
// six faces. At most two entries per row are non-zero and they sum to 1.
var area = [TileCount][FaceCount]float64{
	{areaS, 0, 0, areaB, 0, 0}, {areaB, areaS, 0, 0, 0, 0}, {areaN, 0, 0, 0, 0, 0}, {areaN, 0, 0, 0, 0, 0}, {areaM, 0, 0, areaM, 0, 0},
	{areaM, areaM, 0, 0, 0, 0}, {areaN, 0, 0, 0, 0, 0}, {areaN, 0, 0, 0, 0, 0}, {areaB, 0, 0, areaS, 0, 0}, {areaS, areaB, 0, 0, 0, 0},
	{areaB, 0, areaS, 0, 0, 0}, {areaM, 0, areaM, 0, 0, 0}, {areaS, 0, areaB, 0, 0, 0}, {0, 0, areaS, areaB, 0, 0}, {0, 0, 0, areaN, 0, 0},
	{0, 0, 0, areaN, 0, 0}, {0, areaS, areaB, 0, 0, 0}, {0, 0, areaN, 0, 0, 0}, {0, 0, areaN, 0, 0, 0}, {0, 0, areaM, areaM, 0, 0},
	{0, 0, 0, areaN, 0, 0}, {0, 0, 0, areaN, 0, 0}, {0, areaN, 0, 0, 0, 0}, {0, areaN, 0, 0, 0, 0}, {0, areaM, areaM, 0, 0, 0},
	{0, 0, areaN, 0, 0, 0}, {0, 0, areaN, 0, 0, 0}, {0, 0, areaB, areaS, 0, 0}, {0, areaN, 0, 0, 0, 0}, {0, areaN, 0, 0, 0, 0},
	{0, areaB, areaS, 0, 0, 0}, {0, 0, areaB, 0, areaS, 0}, {0, 0, areaM, 0, areaM, 0}, {0, 0, areaS, 0, areaB, 0}, {0, 0, 0, areaB, areaS, 0},
	{0, areaS, 0, 0, areaB, 0}, {0, 0, 0, 0, areaN, 0}, {0, 0, 0, 0, areaN, 0}, {0, 0, 0, areaM, areaM, 0}, {0, areaM, 0, 0, areaM, 0},
	{0, 0, 0, 0, areaN, 0}, {0, 0, 0, 0, areaN, 0}, {0, 0, 0, areaS, areaB, 0}, {0, areaB, 0, 0, areaS, 0}, {0, 0, 0, 0, areaB, areaS},
	{0, 0, 0, 0, areaM, areaM}, {0, 0, 0, 0, areaS, areaB}, {0, 0, 0, areaB, 0, areaS}, {0, areaS, 0, 0, 0, areaB}, {0, 0, 0, 0, 0, areaN},
	{0, 0, 0, 0, 0, areaN}, {0, 0, 0, areaM, 0, areaM}, {0, areaM, 0, 0, 0, areaM}, {0, 0, 0, 0, 0, areaN}, {0, 0, 0, 0, 0, areaN},
	{0, 0, 0, areaS, 0, areaB}, {0, areaB, 0, 0, 0, areaS}, {areaS, 0, 0, 0, 0, areaB}, {areaM, 0, 0, 0, 0, areaM}, {areaB, 0, 0, 0, 0, areaS},
}

// Neighbour returns the tile reached by stepping off t in direction dir
// (UP, RIGHT, DOWN, or LEFT). dir must not be NOP.
func Neighbour(t Tile, dir Direction) Tile {
	return neighbour[t][dir-1]
}

// Twist returns the rotation-table entry for stepping off t in direction
// dir: the number of quarter-turns added to a walker's frame by that edge.
func Twist(t Tile, dir Direction) int {
	return rotation[t][dir-1]
}

// Area returns tile t's fractional area contribution to face f.
func Area(t Tile, f int) float64 {
	return area[t][f]
}

// NeighbourChecked is Neighbour with bounds validation, for callers at a
// package boundary that cannot assume their (t, dir) pair was produced by
// this package's own trusted internal walk. Neighbour itself stays
// unchecked: it is on walk.GenerateWalk's hot path and every caller there
// already holds a Tile and Direction this package vouches for.
func NeighbourChecked(t Tile, dir Direction) (Tile, error) {
	if !t.Valid() {
		return 0, ErrTileOutOfRange
	}
	if dir == NOP || dir < UP || dir > LEFT {
		return 0, ErrDirectionOutOfRange
	}
	return Neighbour(t, dir), nil
}

// PieceAtChecked is PieceAt with bounds validation.
func PieceAtChecked(p int) (Piece, error) {
	if p < 0 || p >= PieceCount {
		return Piece{}, ErrPieceOutOfRange
	}
	return PieceAt(p), nil
}
