package dlx

// Node is the single tagged structure behind both column headers and data
// cells of the toroidal matrix. isHeader selects which half of the fields
// is meaningful, mirroring the anonymous union the original C nodes use to
// overlay {size, col_id} with {C, row} in the same storage.
//
// Node is exported, not opaque: Before and After hooks receive the matrix
// cell a row was chosen through and need to walk U/D/L/R/Col themselves to
// find conflicting rows, the same way the original before/after hooks walk
// dlx_node pointers directly.
type Node struct {
	U, D, L, R *Node

	isHeader bool

	// Size is the live row count of this column header. Meaningless on a
	// data cell.
	Size int
	// ColID is this column header's identity, i.e. its index as passed to
	// AddRow's bit vector. Meaningless on a data cell.
	ColID int

	// Col is the column header this data cell belongs to. Nil on a
	// column header itself.
	Col *Node
	// Row is the row this data cell belongs to. Nil on a column header.
	Row *Row
}

// newColumnNode allocates a column header, self-linked vertically (an
// empty column owns no rows yet) and splicing horizontally between prev
// and next. The caller is responsible for calling showH to commit the
// horizontal splice.
func newColumnNode(colID int, prev, next *Node) *Node {
	c := &Node{isHeader: true, ColID: colID}
	c.U, c.D = c, c
	c.R, c.L = next, prev
	return c
}

// newDataNode allocates a data cell belonging to column, splicing
// horizontally after left (or self-linked if left is nil, i.e. this is the
// row's first cell) and vertically just above column (appending to the
// bottom of the column). The caller commits both splices via showV/showH.
func newDataNode(row *Row, left, column *Node) *Node {
	n := &Node{Row: row, Col: column}
	if left != nil {
		n.R, n.L = left.R, left
	} else {
		n.R, n.L = n, n
	}
	n.U, n.D = column.U, column
	return n
}

func hideH(n *Node) { n.L.R, n.R.L = n.R, n.L }
func showH(n *Node) { n.R.L, n.L.R = n, n }
func hideV(n *Node) { n.U.D, n.D.U = n.D, n.U }
func showV(n *Node) { n.D.U, n.U.D = n, n }
