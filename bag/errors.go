package bag

import "errors"

// Sentinel errors for Bag operations. Per spec these are all
// programming errors: callers (package universe) are expected to
// check Contains before Add/Remove, so hitting any of these means an
// invariant was already broken upstream.
var (
	// ErrAlreadyPresent indicates Add was called with a label already present.
	ErrAlreadyPresent = errors.New("bag: label already present")

	// ErrNotPresent indicates Remove was called with a label not present.
	ErrNotPresent = errors.New("bag: label not present")

	// ErrEmpty indicates UniformPick was called on an empty Bag.
	ErrEmpty = errors.New("bag: pick on empty bag")
)
