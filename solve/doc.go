// Package solve wires package walk's placements into a package dlx solver
// and drives the search that finds maximum-weight tilings of the cube
// surface: the domain-specific Data threaded through dlx's extension
// points, the Before/After bookkeeping that keeps a parallel
// weight-sorted placement list in sync with the matrix, the three
// pruning heuristics, and the solution callback that tracks and prints
// the running best score.
//
// What
//
//   - Setup builds a ready-to-run Solver and its Data from walk.GenerateAll.
//   - Before/After keep Data's score, covered-tile bitset, and piece count
//     in lockstep with the matrix, and hide/show matching entries in the
//     placement list that PrefixMaxSum scans.
//   - FloodFill, PrefixMaxSum, and CheckMax are admissible pruners,
//     composed in that registration order (dlx evaluates them in reverse).
//   - SolutionCallback tracks the running best score and prints any
//     solution within 1e-3 of it.
//
// Why
//
//	Splitting domain bookkeeping (this package) from the generic
//	backtracking engine (dlx) keeps the search reusable: dlx never knows
//	a tile, a face, or a pentomino exists.
//
// Determinism
//
//	Score comparisons use a fixed 1e-3 epsilon, matching the generator's
//	floating point weight sums; no other nondeterminism is introduced.
package solve
