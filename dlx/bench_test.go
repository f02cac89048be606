package dlx_test

import (
	"testing"

	"github.com/katalvlaran/pentacube/dlx"
)

// buildBenchMatrix tiles Knuth's 7-column exact-cover instance into a wider
// block-diagonal matrix of independent copies, giving Solve enough
// cover/uncover traffic to be worth timing without depending on the cube
// tables.
func buildBenchMatrix(b *testing.B, copies int) *dlx.Solver {
	b.Helper()
	const blockWidth = 7
	rows := [][]int{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 1},
	}

	s, err := dlx.NewSolver(blockWidth * copies)
	if err != nil {
		b.Fatal(err)
	}
	for block := 0; block < copies; block++ {
		for _, row := range rows {
			full := make([]int, blockWidth*copies)
			copy(full[block*blockWidth:(block+1)*blockWidth], row)
			if _, err := s.AddRow(full, nil); err != nil {
				b.Fatal(err)
			}
		}
	}
	return s
}

// BenchmarkSolve_BlockDiagonal exercises the cover/uncover hot path across
// several independent copies of a small exact-cover instance chained into
// one matrix.
func BenchmarkSolve_BlockDiagonal(b *testing.B) {
	const copies = 20
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		s := buildBenchMatrix(b, copies)
		found := 0
		s.SetSolutionFunc(func(ctx *dlx.Context) { found++ })
		s.Solve(nil)
	}
}
