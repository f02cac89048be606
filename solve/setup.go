package solve

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/pentacube/cube"
	"github.com/katalvlaran/pentacube/dlx"
	"github.com/katalvlaran/pentacube/walk"
)

// Setup generates every placement, loads them into a fresh dlx.Solver as
// rows over cube.ColumnCount columns, and registers the before/after
// hooks, the three heuristics (in the same registration order as the
// original driver: FloodFill, PrefixMaxSum, CheckMax — evaluated in
// reverse by dlx), and the solution callback. out receives printed
// solutions.
//
// The returned Data is the value callers pass to (*dlx.Solver).Solve.
func Setup(out io.Writer) (*dlx.Solver, *Data, error) {
	head := walk.GenerateAll()
	if head == nil {
		return nil, nil, ErrNoPlacements
	}

	solver, err := dlx.NewSolver(cube.ColumnCount)
	if err != nil {
		return nil, nil, fmt.Errorf("solve: building solver: %w", err)
	}

	for i, p := 0, head; p != nil; i, p = i+1, p.Next {
		if _, err := solver.AddRow(p.Bits[:], p); err != nil {
			return nil, nil, fmt.Errorf("solve: adding placement row %d: %w", i, err)
		}
	}

	data := &Data{
		Head:           head,
		MaxPieceWeight: DefaultMaxPieceWeight,
		Out:            bufio.NewWriter(out),
	}

	solver.SetBeforeAfter(Before, After)
	solver.SetSolutionFunc(SolutionCallback)
	solver.AddHeuristic(FloodFill)
	solver.AddHeuristic(PrefixMaxSum)
	solver.AddHeuristic(CheckMax)

	return solver, data, nil
}
