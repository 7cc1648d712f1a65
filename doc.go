// Package cdt2d is a Markov chain Monte Carlo sampler for 2D Causal
// Dynamical Triangulations: simplicial spacetimes built from
// equilateral triangles glued along a discrete proper-time foliation,
// evolved under three local ergodic moves and measured through an
// opaque Observable interface.
//
// Under the hood, the module is organized as:
//
//	pool/       — slab-allocated object pools addressed by stable integer labels
//	bag/        — O(1) random-access set, used for uniform move-candidate selection
//	simplex/    — the Vertex/Triangle/Link value types and their orientation rules
//	universe/   — the mutable triangulation: construction, the three moves, checkpoint I/O
//	adjacency/  — the read-only post-move view (vertex neighbor graph, BFS distance/ball queries)
//	simulation/ — the Metropolis driver: move acceptance, sweeps, grow/thermalize, Observables
//	config/     — YAML + flag configuration loading for a run
//	cmd/cdtmc/  — the runnable entrypoint
//
//	go get github.com/katalvlaran/cdt2d
package cdt2d
