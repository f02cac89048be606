package dlx

// Row is one row of the cover matrix: the opaque payload a caller attached
// via AddRow, recovered from a SolutionFrame when a solution is reported.
// dlx never interprets Data; it only threads the pointer through.
type Row struct {
	Data any
}

// SolutionFrame is one row of a reported exact cover, linked to the rest of
// that solution via Next. Frames are assembled innermost-row-first: the
// row chosen deepest in the search appears at the head of the list.
type SolutionFrame struct {
	Row  *Row
	Next *SolutionFrame
}

// Context is threaded through a single Solve call. Data is whatever the
// caller passed to Solve, available to Before, After, and every Heuristic.
// Solution is the in-progress (and, inside a SolutionFunc, complete)
// partial cover built up by Search.
type Context struct {
	Solution *SolutionFrame
	Data     any
}

// SolutionFunc is invoked once per exact cover found, with Solution holding
// every row in that cover. Frames are never modified after they are
// created, so the chain stays valid after the callback returns; solutions
// that share a search-path prefix share the frames for that prefix.
type SolutionFunc func(ctx *Context)

// DataFunc brackets a row's tentative selection: Before runs immediately
// after a row is chosen and its columns start being covered, After runs
// once those columns are uncovered again on backtrack. cell is the matrix
// node the row was reached through, giving the hook walking access to the
// row's other columns (cell.R/cell.L) and, from there, every other row
// sharing those columns (column.D/column.U) — the same access the
// before/after hooks need in the original C driver.
type DataFunc func(data any, cell *Node)

// Heuristic runs after a row's columns are covered and its siblings'
// columns are covered too, and reports whether the current branch should
// be abandoned without recursing further. Heuristics are consulted in
// reverse registration order (the most recently added runs first) and
// short-circuit on the first true.
type Heuristic func(data any) bool
