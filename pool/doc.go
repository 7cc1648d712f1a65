// Package pool implements a fixed-capacity slab allocator that hands out
// stable integer labels instead of language references.
//
// A Pool[T] owns a single contiguous slice of T and a free-list
// threaded through a parallel slice of per-slot next words, so Create and
// Destroy are both O(1) with no extra bookkeeping structure. Labels
// stay valid for the lifetime of the slot they name and are reused
// once freed, which is exactly what lets the triangulation in package
// universe express its densely cyclic simplex graph as plain integers.
//
// Errors:
//
//	ErrCapacityExhausted - Create called with every slot live.
//	ErrLabelOutOfRange    - At/Destroy given a label outside [0, capacity).
//	ErrLabelNotLive       - Destroy given a label that is already free.
package pool
