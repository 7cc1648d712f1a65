// Package simplex defines the plain value types that make up a 2D CDT
// triangulation — Vertex, Triangle, and Link — plus the triangle
// orientation rule that derives UP/DOWN from vertex times.
//
// Every inter-simplex reference is a pool.Label, never a language
// reference: simplices live in slabs owned by package universe, and
// universe is the only package that mutates the graph of labels these
// types hold. That keeps the densely cyclic triangle/vertex/link
// adjacency trivially safe to mutate and to serialize, per the
// pointer-as-label design note the original C++ implementation
// (Brunekreef & Görlich, 2020) follows.
package simplex
