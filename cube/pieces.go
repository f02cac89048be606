package cube

// pieces holds the twelve baked-in pentomino shapes, each as up to four
// walk-steps of up to four directions. A zero-value Direction (NOP) pads
// unused slots and terminates its step early; see walk.GenerateWalk.
var pieces = [PieceCount]Piece{
	{{UP, UP, UP, UP}},
	{{UP, RIGHT}, {LEFT}, {DOWN}},
	{{DOWN, DOWN, DOWN, RIGHT}},
	{{UP, UP, RIGHT, DOWN}},
	{{UP, RIGHT, UP, UP}},
	{{LEFT}, {RIGHT}, {DOWN, DOWN}},
	{{DOWN, RIGHT, RIGHT, UP}},
	{{RIGHT, RIGHT, UP, UP}},
	{{RIGHT, UP, RIGHT, UP}},
	{{UP}, {RIGHT}, {DOWN}, {LEFT}},
	{{UP}, {LEFT}, {DOWN, DOWN}},
	{{RIGHT, UP, UP, RIGHT}},
}

// Pieces returns the twelve baked-in pentomino shapes, indexed 0..11.
// The returned array is a copy; callers may not mutate the
// package's tables through it.
func Pieces() [PieceCount]Piece {
	return pieces
}

// PieceAt returns the piece at index p (0..11).
func PieceAt(p int) Piece {
	return pieces[p]
}
