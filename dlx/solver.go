package dlx

// Solver holds a toroidal exact-cover matrix and the callbacks that drive
// Algorithm X over it. The zero value is not usable; construct with
// NewSolver.
type Solver struct {
	columnCount int
	rowCount    int

	// entry is the current traversal starting point into the circular
	// column header list (dlx->column in the original). It is nil once
	// every column has been covered, which Search takes as "found a
	// complete exact cover".
	entry *Node

	solutionFn   SolutionFunc
	before, after DataFunc
	heuristics   []Heuristic
}

// NewSolver builds an empty matrix with columnCount column headers, linked
// into a single circular list. No rows exist yet; add them with AddRow.
func NewSolver(columnCount int) (*Solver, error) {
	if columnCount <= 0 {
		return nil, ErrInvalidColumnCount
	}

	head := &Node{isHeader: true}
	head.U, head.D, head.R, head.L = head, head, head, head
	prev := head
	for i := 1; i < columnCount; i++ {
		c := newColumnNode(i, prev, head)
		showH(c)
		prev = c
	}

	return &Solver{
		columnCount: columnCount,
		entry:       head,
		solutionFn:  func(*Context) {},
		before:      func(any, *Node) {},
		after:       func(any, *Node) {},
	}, nil
}

// RowCount returns the number of rows inserted so far via AddRow.
func (s *Solver) RowCount() int { return s.rowCount }

// ColumnCount returns the column count the solver was constructed with.
func (s *Solver) ColumnCount() int { return s.columnCount }

// AddRow inserts one row into the matrix: bits must have exactly
// ColumnCount entries, with a non-zero entry marking a column this row
// covers. data is stored on the returned Row and handed back, unexamined,
// to every callback that later touches this row.
func (s *Solver) AddRow(bits []int, data any) (*Row, error) {
	if len(bits) != s.columnCount {
		return nil, ErrRowWidthMismatch
	}

	row := &Row{Data: data}
	column := s.entry
	var prev *Node
	for i := 0; i < s.columnCount; i++ {
		if bits[i] != 0 {
			n := newDataNode(row, prev, column)
			showV(n)
			showH(n)
			column.Size++
			prev = n
		}
		column = column.R
	}
	s.rowCount++
	return row, nil
}

// SetSolutionFunc registers the callback invoked for every exact cover
// Solve discovers.
func (s *Solver) SetSolutionFunc(fn SolutionFunc) {
	if fn == nil {
		fn = func(*Context) {}
	}
	s.solutionFn = fn
}

// SetBeforeAfter registers the hooks bracketing each row's tentative
// selection during search. Either may be nil to leave that hook a no-op.
func (s *Solver) SetBeforeAfter(before, after DataFunc) {
	if before == nil {
		before = func(any, *Node) {}
	}
	if after == nil {
		after = func(any, *Node) {}
	}
	s.before, s.after = before, after
}

// AddHeuristic registers a pruning heuristic. Heuristics run in reverse
// registration order: the one added last is consulted first.
func (s *Solver) AddHeuristic(h Heuristic) {
	s.heuristics = append([]Heuristic{h}, s.heuristics...)
}

// Solve runs Algorithm X to completion, invoking the solution callback
// once per exact cover found. data is threaded through Before, After, and
// every heuristic via Context.Data.
func (s *Solver) Solve(data any) {
	ctx := &Context{Data: data}
	s.search(ctx)
}

func chooseMin(start *Node) *Node {
	min := start
	for i := start.R; i != start; i = i.R {
		if i.Size < min.Size {
			min = i
		}
	}
	return min
}

// coverColumn unlinks column from the header row and, for every row that
// passes through it, hides that row's other cells from their own columns.
// If column is the current entry point, entry advances to its right
// neighbor, or becomes nil if column was the last one standing.
func (s *Solver) coverColumn(column *Node) {
	if column == s.entry {
		if column.R == column {
			s.entry = nil
		} else {
			s.entry = column.R
		}
	}
	hideH(column)
	for i := column.D; i != column; i = i.D {
		for j := i.R; j != i; j = j.R {
			hideV(j)
			j.Col.Size--
		}
	}
}

// uncoverColumn reverses a single coverColumn call, restoring column and
// every row cell it had hidden, and resets entry to column.
func (s *Solver) uncoverColumn(column *Node) {
	for i := column.U; i != column; i = i.U {
		for j := i.L; j != i; j = j.L {
			showV(j)
			j.Col.Size++
		}
	}
	showH(column)
	s.entry = column
}

func (s *Solver) callHeuristics(data any) bool {
	for _, h := range s.heuristics {
		if h(data) {
			return true
		}
	}
	return false
}

// search implements Algorithm X: choose the sparsest live column, try each
// row that covers it in turn, and recurse over whatever remains once that
// row's other columns are covered too. A nil entry means every column is
// covered, i.e. the current partial solution is a complete exact cover.
func (s *Solver) search(ctx *Context) {
	if s.entry == nil {
		s.solutionFn(ctx)
		return
	}

	column := chooseMin(s.entry)
	s.coverColumn(column)

	outerSolution := ctx.Solution
	for r := column.D; r != column; r = r.D {
		s.before(ctx.Data, r)

		ctx.Solution = &SolutionFrame{Row: r.Row, Next: outerSolution}
		for j := r.R; j != r; j = j.R {
			s.coverColumn(j.Col)
		}

		if !s.callHeuristics(ctx.Data) {
			s.search(ctx)
		}

		for j := r.L; j != r; j = j.L {
			s.uncoverColumn(j.Col)
		}

		s.after(ctx.Data, r)
	}
	ctx.Solution = outerSolution

	s.uncoverColumn(column)
}
