// Package walk generates every distinct placement of the twelve cube
// pentominoes on the 60-tile graph defined by package cube, weights each
// by its best single-face coverage, and returns them as a weight-sorted
// doubly linked list.
//
// What
//
//   - GenerateWalk traces one candidate placement: a start tile, starting
//     rotation, and one piece's walk-steps.
//   - GenerateAll expands every (piece, start tile, rotation, chirality)
//     combination, discards self-overlapping walks, deduplicates identical
//     tile sets, assigns each surviving Placement a Weight, and returns the
//     result sorted by Weight descending.
//   - Placement.Hide / Placement.Show splice a node out of / back into the
//     list without disturbing the node's own Prev/Next pointers, which is
//     what lets Show relink it — see DESIGN.md for how package solve's
//     prefix-max-sum heuristic scans the list while placements are hidden.
//
// Why
//
//   - Generation is the expensive, combinatorial half of building the
//     exact-cover matrix; doing it once up front (rather than on demand
//     during search) keeps the dlx solver's hot path allocation-free.
//
// Determinism
//
//	GenerateAll iterates pieces, start tiles, and rotations in a fixed
//	order and sorts by Weight with ties left in that encounter order
//	(Go's sort.SliceStable), so repeated calls produce an identical list.
//
// Complexity
//
//	GenerateWalk: O(1), bounded by StepsPerPiece*DirectionsPerStep.
//	GenerateAll: O(PieceCount * TileCount * rotations * chiralities) walk
//	attempts, each O(1); dedup is an O(1)-amortized map lookup per
//	candidate, so the dominant cost is the final sort.SliceStable over the
//	survivors, O(n log n) in their count.
package walk
