package simulation

import "github.com/katalvlaran/cdt2d/adjacency"

// Observable is the opaque measurement hook the driver calls after
// each measurement sweep's adjacency rebuild (the rebuilds thermalize
// makes for its own degree check are not measured). It deliberately knows nothing about how or
// where its output ends up: package simulation owns the sweep loop
// and calls Clear once per run and Measure once per sweep, but never
// inspects what an Observable does with a Snapshot.
type Observable interface {
	// Name identifies the observable, used to derive its output
	// filename in the reference FileObservable implementation.
	Name() string

	// Clear resets any accumulated output at the start of a run. It is
	// called exactly once, before the grow/thermalize phase (or
	// immediately, on an imported geometry).
	Clear() error

	// Measure computes and records one data point from snap. It is
	// called once per measurement sweep.
	Measure(snap *adjacency.Snapshot) error
}
