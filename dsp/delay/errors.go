package delay

import "errors"

var (
	// ErrInvalidSize reports a non-positive line capacity.
	ErrInvalidSize = errors.New("delay: line size must be greater than zero")
	// ErrInvalidReaderCount reports a non-positive read pointer count.
	ErrInvalidReaderCount = errors.New("delay: reader count must be greater than zero")
	// ErrInvalidMode reports an unrecognized interpolation mode.
	ErrInvalidMode = errors.New("delay: unrecognized interpolation mode")
	// ErrDelayCount reports a delays slice whose length does not match the
	// reader count.
	ErrDelayCount = errors.New("delay: delays length must match reader count")
	// ErrNonPositiveDelay reports a requested delay of zero or less.
	ErrNonPositiveDelay = errors.New("delay: delays must be greater than zero")
	// ErrDelayTooLong reports a delay the line is too short to hold.
	ErrDelayTooLong = errors.New("delay: delay exceeds line length, use a longer line")
	// ErrOutputLength reports a destination slice whose length does not
	// match the reader count.
	ErrOutputLength = errors.New("delay: output length must match reader count")
)
