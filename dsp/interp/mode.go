package interp

import "fmt"

// Mode selects the fractional-delay interpolation algorithm.
type Mode int

const (
	// Linear blends the two samples around the read position. Cheapest,
	// exact for piecewise-linear signals.
	Linear Mode = iota
	// Lagrange uses 5th-order Lagrange polynomial interpolation (6 taps),
	// maximally flat near zero fractional offset.
	Lagrange
	// Sinc uses an 11-tap Hann-windowed sinc kernel. Best stopband
	// rejection for smoothly varying delays.
	Sinc
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case Lagrange:
		return "Lagrange"
	case Sinc:
		return "Sinc"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a recognized interpolation mode.
func (m Mode) Valid() bool {
	switch m {
	case Linear, Lagrange, Sinc:
		return true
	default:
		return false
	}
}
