package simulation

import "github.com/pkg/errors"

// ErrNoObservables is returned by Run if called with zero registered
// observables and measurements > 0: a measurement phase that measures
// nothing is almost certainly a configuration mistake, not silently
// accepted.
var ErrNoObservables = errors.New("simulation: measurements requested with no registered observables")
