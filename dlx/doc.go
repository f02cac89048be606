// Package dlx implements Knuth's Dancing Links (Algorithm X) over a
// toroidal doubly linked exact-cover matrix, with callback-driven solution
// reporting, before/after hooks bracketing each trial row, and an ordered
// chain of pruning heuristics consulted after a row is tentatively chosen.
//
// What
//
//   - NewSolver builds an empty matrix with the given column count.
//   - AddRow inserts one row, given the set of columns it covers and an
//     opaque payload to associate with it.
//   - SetSolutionFunc / SetBeforeAfter / AddHeuristic register the three
//     extension points.
//   - Solve runs the recursive search to completion, invoking the solution
//     callback for every exact cover found.
//
// Why
//
//   - Cover/uncover are O(row width) and allocation-free, which is what
//     makes backtracking over a combinatorial search space like pentacube's
//     practical: the matrix never copies itself on recursion.
//
// Extension points
//
//	The solver's own recursion knows nothing about scores, graphs, or
//	pieces — that domain logic lives in package solve, wired through the
//	opaque Data value threaded through Context and the three callback
//	types (SolutionFunc, DataFunc, Heuristic). See solve's doc.go.
//
// Determinism
//
//	Row iteration within a column follows insertion order (U/D mirrors
//	AddRow call order). Column choice (chooseMin) breaks size ties by
//	first encounter from the current entry column. Solution order is DFS
//	discovery order.
//
// Complexity
//
//	AddRow: O(row width). Cover/Uncover: O(row width) per row touched.
//	Search: exponential in the worst case, bounded in practice by the
//	heuristics registered via AddHeuristic.
package dlx
