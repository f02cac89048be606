package walk

import (
	"sort"

	"github.com/katalvlaran/pentacube/cube"
)

// GenerateWalk traces one candidate placement of piece starting at tile s
// with initial rotation rot (1..4). Each of piece's up to four steps is an
// independent arm beginning back at s with rotation rot; within a step,
// directions are rotated by the walker's current frame and applied in
// sequence, each carrying forward the rotation twist picked up by the edge
// just crossed. A NOP direction ends its step early.
//
// GenerateWalk returns (nil, false) if any step revisits an already-covered
// tile — a pentomino's five tiles must be distinct — and (placement, true)
// otherwise, with placement covering the root tile plus every tile visited
// across all four arms.
func GenerateWalk(s cube.Tile, rot int, piece cube.Piece) (*Placement, bool) {
	p := &Placement{}
	p.Bits[s] = 1
	p.Flags |= 1 << uint(s)

	for _, step := range piece {
		currPos := s
		currRot := rot
		for _, dir := range step {
			if dir == cube.NOP {
				break
			}
			next := cube.Rotate(dir, currRot)
			currRot += cube.Twist(currPos, next)
			currPos = cube.Neighbour(currPos, next)

			if p.Bits[currPos] == 1 {
				return nil, false
			}
			p.Bits[currPos] = 1
			p.Flags |= 1 << uint(currPos)
		}
	}
	return p, true
}

// GenerateWalkChecked validates s and rot before delegating to
// GenerateWalk, for callers outside GenerateAll's own trusted sweep over
// every tile and rotation. rot must be in [1,4]; s must name an actual
// tile.
func GenerateWalkChecked(s cube.Tile, rot int, piece cube.Piece) (*Placement, error) {
	if !s.Valid() {
		return nil, cube.ErrTileOutOfRange
	}
	if rot < 1 || rot > 4 {
		return nil, ErrInvalidRotation
	}
	p, ok := GenerateWalk(s, rot, piece)
	if !ok {
		return nil, ErrOverlap
	}
	return p, nil
}

// Weight returns the maximum, over the six cube faces, of the summed
// cube.Area of p's covered tiles.
func Weight(p *Placement) float64 {
	var perFace [cube.FaceCount]float64
	for t := 0; t < cube.TileCount; t++ {
		if p.Bits[t] == 0 {
			continue
		}
		for f := 0; f < cube.FaceCount; f++ {
			perFace[f] += cube.Area(cube.Tile(t), f)
		}
	}
	max := perFace[0]
	for _, w := range perFace[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// GenerateAll expands every (piece, start tile, initial rotation,
// chirality) combination into a candidate Placement, discards
// self-overlapping walks, deduplicates placements with identical 72-bit
// rows, assigns each survivor its Weight and PieceIndex, and returns the
// head of the resulting list sorted by Weight descending.
//
// Returns nil if no placement survives (cannot happen for the baked-in
// cube.Pieces, but callers should not assume a non-nil result for
// arbitrary future piece sets).
func GenerateAll() *Placement {
	seen := make(map[[cube.ColumnCount]int]bool)
	var all []*Placement

	for pieceIdx := 0; pieceIdx < cube.PieceCount; pieceIdx++ {
		piece := cube.PieceAt(pieceIdx)
		flipped := piece.Flipped()

		for s := cube.Tile(0); int(s) < cube.TileCount; s++ {
			for rot := 1; rot <= 4; rot++ {
				for _, candidate := range [2]cube.Piece{piece, flipped} {
					placement, ok := GenerateWalk(s, rot, candidate)
					if !ok {
						continue
					}
					placement.Bits[cube.TileCount+pieceIdx] = 1
					placement.PieceIndex = pieceIdx
					if seen[placement.Bits] {
						continue
					}
					seen[placement.Bits] = true
					placement.Weight = Weight(placement)
					all = append(all, placement)
				}
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Weight > all[j].Weight
	})

	return link(all)
}

// link threads ps into a doubly linked list in slice order and returns its
// head, or nil if ps is empty.
func link(ps []*Placement) *Placement {
	for i, p := range ps {
		if i > 0 {
			p.Prev = ps[i-1]
		}
		if i+1 < len(ps) {
			p.Next = ps[i+1]
		}
	}
	if len(ps) == 0 {
		return nil
	}
	return ps[0]
}
