// Package universe implements the CDT triangulation itself: its
// invariants, the three local ergodic moves (add/(2,4), delete/(4,2),
// flip/(2,2)), the incremental candidate-bag bookkeeping those moves
// require, the derived-adjacency rebuild consumed by observables, and
// the checkpoint (geometry file) format.
//
// A *Universe owns three pool.Pool slabs (vertices, triangles, an
// internal transient link pool rebuilt on demand) and three
// bag.Bag candidate sets (trianglesAll, verticesFour, trianglesFlip)
// that the moves keep consistent incrementally rather than
// recomputing from scratch. It is the single mutable owner of one
// triangulation; package simulation holds it uniquely and is the only
// caller that invokes moves.
package universe
