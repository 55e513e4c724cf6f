package fir

import "errors"

var (
	// ErrEmptyCoefficients reports an empty coefficient vector.
	ErrEmptyCoefficients = errors.New("fir: coefficients must not be empty")
	// ErrLengthChange reports an attempt to swap in a coefficient vector of
	// a different length.
	ErrLengthChange = errors.New("fir: coefficient count cannot change, create a new filter")
	// ErrLengthMismatch reports src/dst slices of different lengths.
	ErrLengthMismatch = errors.New("fir: buffer length mismatch")
)
