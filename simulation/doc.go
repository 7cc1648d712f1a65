// Package simulation drives the Markov chain: it owns one
// universe.Universe, runs the Metropolis-accepted add/delete/flip
// moves in the frequencies and acceptance ratios of the 2D CDT
// action, grows a fresh triangulation to its target volume and lets
// it thermalize, and periodically rebuilds adjacency and hands the
// resulting snapshot to every registered Observable.
//
// Simulation holds its own RNG stream, independent of any stream
// universe-internal randomness might need, following the seed
// schedule baseSeed+0 for the driver and baseSeed+1 reserved for
// Universe-internal use (see DeriveRNG).
package simulation
