package solve

import (
	"github.com/katalvlaran/pentacube/dlx"
	"github.com/katalvlaran/pentacube/walk"
)

// placementOf recovers the walk.Placement a dlx row cell carries.
func placementOf(n *dlx.Node) *walk.Placement {
	return n.Row.Data.(*walk.Placement)
}

// Before is dlx's before hook: it folds cell's placement into the running
// score, graph, and piece count, then hides from the weight-sorted
// placement list every placement that still has a cell linked into the
// column of one of cell's other cells. During Solve, cell's own column is
// already covered when Before runs, so the rows of that column (cell's own
// row among them) have been unlinked from those columns and are not hidden
// here.
func Before(data any, cell *dlx.Node) {
	d := data.(*Data)
	p := placementOf(cell)
	d.CurrentScore += p.Weight
	d.Graph |= p.Flags
	d.K++

	for i := cell.R; i != cell; i = i.R {
		for j := i.Col.D; j != i.Col; j = j.D {
			placementOf(j).Hide()
		}
	}
}

// After reverses a single Before call in strict LIFO order: it first
// restores the placements Before had hidden, in exact mirror order (left
// instead of right, up instead of down), then undoes the score/graph/count
// bookkeeping.
func After(data any, cell *dlx.Node) {
	d := data.(*Data)
	p := placementOf(cell)

	for i := cell.L; i != cell; i = i.L {
		for j := i.Col.U; j != i.Col; j = j.U {
			placementOf(j).Show()
		}
	}

	d.K--
	d.Graph &^= p.Flags
	d.CurrentScore -= p.Weight
}
