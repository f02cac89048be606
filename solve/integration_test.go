package solve_test

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pentacube/cube"
	"github.com/katalvlaran/pentacube/dlx"
	"github.com/katalvlaran/pentacube/solve"
	"github.com/katalvlaran/pentacube/walk"
)

// TestIntegration_SolveFindsAPartitionOfTheRealCube runs the real, full
// 60-tile/72-column search end to end — solve.Setup followed by
// (*dlx.Solver).Solve, the same instance cmd/pentacube runs — and asserts
// spec.md §8's core testable property against every solution the callback
// reports: the union of its rows' tile masks is {0..59} and their
// piece-id masks are a permutation of {0..11}. This mirrors the teacher's
// own tsp/integration_test.go convention of exercising the public API
// end to end on a real (if modest) instance instead of only synthetic
// matrices.
func TestIntegration_SolveFindsAPartitionOfTheRealCube(t *testing.T) {
	var buf bytes.Buffer
	solver, data, err := solve.Setup(&buf)
	require.NoError(t, err)

	const fullTileMask = uint64(1)<<uint(cube.TileCount) - 1

	var solutions [][]*walk.Placement
	solver.SetSolutionFunc(func(ctx *dlx.Context) {
		solve.SolutionCallback(ctx)

		var rows []*walk.Placement
		for f := ctx.Solution; f != nil; f = f.Next {
			rows = append(rows, f.Row.Data.(*walk.Placement))
		}
		solutions = append(solutions, rows)
	})

	solver.Solve(data)

	require.NotEmpty(t, solutions, "the real 60-tile instance must admit at least one exact cover")

	for i, rows := range solutions {
		require.Lenf(t, rows, cube.PieceCount, "solution %d: a complete tiling places every one of the twelve pieces exactly once", i)

		var tileUnion uint64
		var pieceSeen [cube.PieceCount]bool
		for _, p := range rows {
			assert.Zerof(t, tileUnion&p.Flags, "solution %d: two placements overlap on a covered tile", i)
			tileUnion |= p.Flags
			require.Falsef(t, pieceSeen[p.PieceIndex], "solution %d: piece %d placed twice", i, p.PieceIndex)
			pieceSeen[p.PieceIndex] = true
		}

		assert.Equalf(t, fullTileMask, tileUnion, "solution %d: covered tiles must partition {0..59}, got popcount %d", i, bits.OnesCount64(tileUnion))
		for p := 0; p < cube.PieceCount; p++ {
			assert.Truef(t, pieceSeen[p], "solution %d: piece %d missing", i, p)
		}
	}

	assert.Greater(t, buf.Len(), 0, "SolutionCallback must have printed the running-best solution block")
}
