package sample

import "errors"

// Package-specific errors
var (
	// ErrInvalidCount is returned for a negative record count.
	ErrInvalidCount = errors.New("record count cannot be negative")

	// ErrInvalidRatio is returned for an error ratio outside [0,1].
	ErrInvalidRatio = errors.New("error ratio must be between 0 and 1")
)
