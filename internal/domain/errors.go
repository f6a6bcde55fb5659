package domain

import "errors"

// Precondition errors. The core rejects invalid input with these and never clamps.
var (
	// ErrOutOfRangeParameter is returned when a probability lies outside [0,1].
	ErrOutOfRangeParameter = errors.New("probability out of range [0,1]")

	// ErrInvalidTrialCount is returned when the number of trials is not positive.
	ErrInvalidTrialCount = errors.New("number of trials must be a positive integer")

	// ErrInvalidClock is returned when the initial game clock is negative.
	ErrInvalidClock = errors.New("game clock must not be negative")
)
