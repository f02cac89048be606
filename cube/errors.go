package cube

import "errors"

// Sentinel errors for cube package operations.
var (
	// ErrTileOutOfRange indicates a tile index outside [0, TileCount).
	ErrTileOutOfRange = errors.New("cube: tile index out of range")

	// ErrDirectionOutOfRange indicates a direction value outside the
	// enumerated set {NOP, UP, RIGHT, DOWN, LEFT}.
	ErrDirectionOutOfRange = errors.New("cube: direction out of range")

	// ErrPieceOutOfRange indicates a piece index outside [0, PieceCount).
	ErrPieceOutOfRange = errors.New("cube: piece index out of range")
)
