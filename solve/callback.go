package solve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pentacube/dlx"
	"github.com/katalvlaran/pentacube/walk"
)

// SolutionCallback tracks the running best score and, whenever
// current_score is within scoreEpsilon of it, prints the solution stack:
// a "Score: <f>" line, one line per placement (most recently chosen
// first) listing its covered tile indices followed by its "[p]"
// piece-identity token, a trailing blank line, then a flush.
//
// Because DFS discovers improving scores top-down along a single path,
// this may print weaker solutions before the optimum is reached; the
// printed best score only ever increases across calls.
func SolutionCallback(ctx *dlx.Context) {
	d := ctx.Data.(*Data)
	if d.CurrentScore > d.BestScore {
		d.BestScore = d.CurrentScore
	}
	if abs(d.CurrentScore-d.BestScore) >= scoreEpsilon {
		return
	}

	fmt.Fprintf(d.Out, "Score: %f\n", d.CurrentScore)
	for f := ctx.Solution; f != nil; f = f.Next {
		p := f.Row.Data.(*walk.Placement)
		fmt.Fprintln(d.Out, rowLine(p))
	}
	fmt.Fprintln(d.Out)
	d.Out.Flush()
}

// rowLine renders one placement as "t0 t1 t2 t3 t4 [p]".
func rowLine(p *walk.Placement) string {
	tiles := p.Tiles()
	parts := make([]string, 0, len(tiles)+1)
	for _, t := range tiles {
		parts = append(parts, strconv.Itoa(int(t)))
	}
	parts = append(parts, fmt.Sprintf("[%d]", p.PieceIndex))
	return strings.Join(parts, " ")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
