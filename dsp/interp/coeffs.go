package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Linear2 blends two neighbouring samples at fractional offset frac in [0,1).
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// LagrangeCoeffs returns the order+1 Lagrange fractional-delay FIR
// coefficients evaluated at fractional offset frac. The kernel is the
// Lagrange basis over the integer nodes 0..order, so it reproduces
// polynomials up to the given degree exactly; at frac == 0 it is one-hot at
// tap 0.
func LagrangeCoeffs(order int, frac float64) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("interp: lagrange order must be >= 1: %d", order)
	}

	h := make([]float64, order+1)
	if err := LagrangeCoeffsTo(h, frac); err != nil {
		return nil, err
	}

	return h, nil
}

// LagrangeCoeffsTo fills dst with Lagrange coefficients of order
// len(dst)-1 evaluated at frac. It is the allocation-free variant of
// [LagrangeCoeffs].
func LagrangeCoeffsTo(dst []float64, frac float64) error {
	if len(dst) < 2 {
		return fmt.Errorf("interp: lagrange kernel needs at least 2 taps: %d", len(dst))
	}

	for j := range dst {
		h := 1.0
		for m := range dst {
			if m == j {
				continue
			}

			h *= (frac - float64(m)) / float64(j-m)
		}
		dst[j] = h
	}

	return nil
}

// SincCoeffs returns the windowed-sinc fractional-delay FIR coefficients
//
//	h[j] = win[j] * sinc(j - (taps-1)/2 - frac)
//
// for a fractional offset frac. The window is supplied by the caller and
// must have exactly taps entries; with an odd tap count and frac == 0 the
// center coefficient is win[(taps-1)/2] and all others vanish, so the
// kernel is one-hot when the window is 1 at its midpoint (as Hann is).
func SincCoeffs(taps int, win []float64, frac float64) ([]float64, error) {
	if taps <= 0 {
		return nil, fmt.Errorf("interp: sinc taps must be > 0: %d", taps)
	}

	h := make([]float64, taps)
	if err := SincCoeffsTo(h, win, frac); err != nil {
		return nil, err
	}

	return h, nil
}

// SincCoeffsTo fills dst with windowed-sinc coefficients evaluated at frac.
// It is the allocation-free variant of [SincCoeffs]; dst and win must have
// the same length.
func SincCoeffsTo(dst, win []float64, frac float64) error {
	if len(dst) == 0 {
		return fmt.Errorf("interp: sinc kernel must not be empty")
	}

	if len(win) != len(dst) {
		return fmt.Errorf("interp: window length must match taps: %d != %d", len(win), len(dst))
	}

	center := float64(len(dst)-1) / 2
	for j := range dst {
		dst[j] = sinc(float64(j) - center - frac)
	}

	vecmath.MulBlockInPlace(dst, win)

	return nil
}

// sinc is the normalized sinc function sin(pi x)/(pi x), with
// sinc(0) == 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
