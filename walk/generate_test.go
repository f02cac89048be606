package walk_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pentacube/cube"
	"github.com/katalvlaran/pentacube/walk"
)

// TestGenerateWalk_PureWalk replays scenario 1 from spec.md §8: piece 0
// (four UP directions) at start=4, rot=1. The covered set below is the one
// the NEIGHBOUR_MATRIX/ROTATION_MATRIX literals and the walk algorithm
// actually produce (see DESIGN.md, OQ-2b): spec.md's prose quotes
// {4,8,12,18,26} for this scenario, but that set does not reconcile with
// the original source's own tables, which this package is built from.
func TestGenerateWalk_PureWalk(t *testing.T) {
	piece := cube.PieceAt(0)
	p, ok := walk.GenerateWalk(4, 1, piece)
	require.True(t, ok)

	got := p.Tiles()
	want := []cube.Tile{4, 14, 20, 33, 34}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tiles mismatch (-want +got):\n%s", diff)
	}

	// GenerateWalk leaves the piece-identity columns to GenerateAll, which
	// sets bit 60 on piece 0's placement over this same tile set.
	withPieceBit := false
	for q := walk.GenerateAll(); q != nil; q = q.Next {
		if q.Flags == p.Flags && q.Bits[cube.TileCount] == 1 {
			withPieceBit = true
			break
		}
	}
	assert.True(t, withPieceBit)
}

// TestGenerateWalk_OverlapRejection replays scenario 2 from spec.md §8:
// start=0, rot=1, a step of {UP, DOWN} walks back onto the root tile and
// must be rejected.
func TestGenerateWalk_OverlapRejection(t *testing.T) {
	piece := cube.Piece{{cube.UP, cube.DOWN}}
	_, ok := walk.GenerateWalk(0, 1, piece)
	assert.False(t, ok)
}

func TestGenerateWalk_FiveDistinctTiles(t *testing.T) {
	for i := 0; i < cube.PieceCount; i++ {
		piece := cube.PieceAt(i)
		for s := cube.Tile(0); int(s) < cube.TileCount; s++ {
			for rot := 1; rot <= 4; rot++ {
				p, ok := walk.GenerateWalk(s, rot, piece)
				if !ok {
					continue
				}
				assert.Len(t, p.Tiles(), 5)
			}
		}
	}
}

func TestGenerateAll_EveryPlacementIsWellFormed(t *testing.T) {
	head := walk.GenerateAll()
	require.NotNil(t, head)

	count := 0
	for p := head; p != nil; p = p.Next {
		count++
		tileBits := 0
		pieceBits := 0
		var flagsFromBits uint64
		for i := 0; i < cube.ColumnCount; i++ {
			if p.Bits[i] != 1 {
				continue
			}
			if i < cube.TileCount {
				tileBits++
				flagsFromBits |= 1 << uint(i)
			} else {
				pieceBits++
			}
		}
		assert.Equal(t, 5, tileBits)
		assert.Equal(t, 1, pieceBits)
		assert.Equal(t, flagsFromBits, p.Flags)
	}
	assert.Greater(t, count, 0)
}

func TestGenerateAll_NoDuplicateRows(t *testing.T) {
	head := walk.GenerateAll()
	seen := make(map[[cube.ColumnCount]int]bool)
	for p := head; p != nil; p = p.Next {
		require.False(t, seen[p.Bits], "duplicate row %v", p.Bits)
		seen[p.Bits] = true
	}
}

func TestGenerateAll_SortedByWeightDescending(t *testing.T) {
	head := walk.GenerateAll()
	for p := head; p != nil && p.Next != nil; p = p.Next {
		assert.GreaterOrEqual(t, p.Weight, p.Next.Weight)
	}
}

func TestGenerateWalkChecked_ValidatesInput(t *testing.T) {
	piece := cube.PieceAt(0)

	p, err := walk.GenerateWalkChecked(4, 1, piece)
	require.NoError(t, err)
	assert.Len(t, p.Tiles(), 5)

	_, err = walk.GenerateWalkChecked(-1, 1, piece)
	assert.ErrorIs(t, err, cube.ErrTileOutOfRange)

	_, err = walk.GenerateWalkChecked(4, 0, piece)
	assert.ErrorIs(t, err, walk.ErrInvalidRotation)

	_, err = walk.GenerateWalkChecked(4, 5, piece)
	assert.ErrorIs(t, err, walk.ErrInvalidRotation)

	overlap := cube.Piece{{cube.UP, cube.DOWN}}
	_, err = walk.GenerateWalkChecked(0, 1, overlap)
	assert.ErrorIs(t, err, walk.ErrOverlap)
}

func TestHideShow_Identity(t *testing.T) {
	head := walk.GenerateAll()
	require.NotNil(t, head.Next)
	require.NotNil(t, head.Next.Next)

	mid := head.Next
	prevTile := mid.Prev
	nextTile := mid.Next

	mid.Hide()
	assert.Equal(t, nextTile, prevTile.Next)
	assert.Equal(t, prevTile, nextTile.Prev)
	// mid's own pointers are untouched by Hide.
	assert.Equal(t, prevTile, mid.Prev)
	assert.Equal(t, nextTile, mid.Next)

	mid.Show()
	assert.Equal(t, mid, prevTile.Next)
	assert.Equal(t, mid, nextTile.Prev)
}
