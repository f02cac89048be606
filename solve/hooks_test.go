package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pentacube/dlx"
	"github.com/katalvlaran/pentacube/solve"
	"github.com/katalvlaran/pentacube/walk"
)

// isSpliced reports whether p has neighbors and none of them points back to
// p, i.e. whether p has been Hide()-n out of the placement list. A
// placement with no neighbors at all is not spliced.
func isSpliced(p *walk.Placement) bool {
	if p.Prev != nil && p.Prev.Next == p {
		return false
	}
	if p.Next != nil && p.Next.Prev == p {
		return false
	}
	return p.Prev != nil || p.Next != nil
}

// TestBeforeAfter_HidesOnlyConflictingSiblings builds a 2-column matrix
// with three rows: row0 covers both columns, row1 covers column 0 only,
// row2 covers column 1 only. Before(row0's column-0 cell) must hide row0's
// and row2's placements (they share column 1) from the placement list,
// leave row1's placement untouched (it shares no other column with row0),
// and fold row0's weight/flags/count into Data. After must undo all of it.
func TestBeforeAfter_HidesOnlyConflictingSiblings(t *testing.T) {
	s, err := dlx.NewSolver(2)
	require.NoError(t, err)

	p0 := &walk.Placement{Weight: 3, Flags: 0b01}
	p1 := &walk.Placement{Weight: 5, Flags: 0b10}
	p2 := &walk.Placement{Weight: 7, Flags: 0b100}
	p1.Next, p0.Prev = p0, p1
	p0.Next, p2.Prev = p2, p0

	row0, err := s.AddRow([]int{1, 1}, p0)
	require.NoError(t, err)
	_, err = s.AddRow([]int{1, 0}, p1)
	require.NoError(t, err)
	_, err = s.AddRow([]int{0, 1}, p2)
	require.NoError(t, err)

	// Column 0 has the smaller size (2 rows vs 2... both columns have
	// size 2 here), so choose_min picks column 0 first by tie-break;
	// row0 and row1 are column 0's rows, visited top (insertion order) to
	// bottom: row0 is visited first.
	var cellForRow0 *dlx.Node
	s.SetBeforeAfter(func(data any, cell *dlx.Node) {
		if cellForRow0 == nil && cell.Row == row0 {
			cellForRow0 = cell
		}
	}, nil)
	s.Solve(nil)
	require.NotNil(t, cellForRow0, "row0 must be chosen at least once during search")

	d := &solve.Data{}
	solve.Before(d, cellForRow0)

	assert.Equal(t, 3.0, d.CurrentScore)
	assert.Equal(t, uint64(0b01), d.Graph)
	assert.Equal(t, 1, d.K)
	assert.True(t, isSpliced(p0), "row0's own placement is hidden via its other column")
	assert.True(t, isSpliced(p2), "row2 shares column 1 with row0")
	assert.False(t, isSpliced(p1), "row1 shares no other column with row0")

	solve.After(d, cellForRow0)

	assert.Equal(t, 0.0, d.CurrentScore)
	assert.Equal(t, uint64(0), d.Graph)
	assert.Equal(t, 0, d.K)
	assert.False(t, isSpliced(p0))
	assert.False(t, isSpliced(p2))
	assert.False(t, isSpliced(p1))
}
