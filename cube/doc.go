// Package cube defines the baked-in geometry of the tiled cube surface that
// pentacube tiles: sixty tiles arranged as a 4-regular graph (a cube whose
// six faces are each subdivided into ten tiles), the per-edge rotation
// twist a walker picks up when it crosses a face boundary, each tile's
// fractional area on each of the six faces, and the twelve pentomino shapes
// placed onto that graph.
//
// What
//
//   - Direction: a small enum {NOP, UP, RIGHT, DOWN, LEFT} with Rotate and
//     Flip transforms.
//   - Piece: up to four walk-steps of up to four directions, describing one
//     pentomino shape relative to an arbitrary root tile.
//   - Neighbour(t, d), Twist(t, d): the adjacency and rotation tables for
//     tile t in direction d.
//   - Area(t, f): tile t's fractional coverage of face f.
//   - Pieces(): the twelve baked-in pentomino shapes.
//
// Why
//
//   - Every other package (walk, dlx, solve) treats this table as opaque,
//     read-only, program-lifetime state; keeping it in one package that
//     imports none of the others makes it trivial to audit the geometry in
//     isolation from the search algorithm that consumes it.
//
// Determinism
//
//	All tables are package-level array literals; there is no construction
//	step and therefore no ordering or initialization-order hazard.
//
// Complexity
//
//	Every accessor in this package is O(1); there is no package-level state
//	beyond the constant tables.
package cube
