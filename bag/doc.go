// Package bag implements a fixed-universe random-access set: an
// unordered subset of integer labels drawn from [0, N) supporting
// O(1) Add, Remove, Contains, and uniform Pick.
//
// A Bag is the move-candidate index Universe maintains incrementally
// (trianglesAll, verticesFour, trianglesFlip): the dense/sparse array
// pair lets the Metropolis driver pick a uniformly random candidate in
// O(1) without ever scanning the live set.
//
// Errors:
//
//	ErrAlreadyPresent - Add called with a label already in the Bag.
//	ErrNotPresent      - Remove called on an absent label.
//	ErrEmpty           - UniformPick called on an empty Bag.
package bag
