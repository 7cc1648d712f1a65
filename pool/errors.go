package pool

import "errors"

// Sentinel errors for Pool operations. Per spec, a Pool is sized to a
// worst-case capacity ahead of time; hitting any of these during a
// normal run is a programming error, not an expected outcome.
var (
	// ErrCapacityExhausted indicates Create was called with no free slots left.
	ErrCapacityExhausted = errors.New("pool: capacity exhausted")

	// ErrLabelOutOfRange indicates a label outside [0, capacity) was used.
	ErrLabelOutOfRange = errors.New("pool: label out of range")

	// ErrLabelNotLive indicates Destroy or At was given a label that is not
	// (or is no longer) live.
	ErrLabelNotLive = errors.New("pool: label not live")
)
