// Package signal generates deterministic test signals. All generators are
// sample-index based: frequencies are given in cycles per sample, so the
// package stays sample-rate free like the delay core it feeds.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Impulse returns a length-sample signal with a single unit sample at pos.
func Impulse(length, pos int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal: impulse length must be > 0: %d", length)
	}

	if pos < 0 || pos >= length {
		return nil, fmt.Errorf("signal: impulse position must be in [0,%d): %d", length, pos)
	}

	out := make([]float64, length)
	out[pos] = 1

	return out, nil
}

// ImpulseTrain returns unit impulses at 0, period, 2*period, ...
func ImpulseTrain(length, period int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal: impulse train length must be > 0: %d", length)
	}

	if period <= 0 {
		return nil, fmt.Errorf("signal: impulse train period must be > 0: %d", period)
	}

	out := make([]float64, length)
	for i := 0; i < length; i += period {
		out[i] = 1
	}

	return out, nil
}

// Sine returns amplitude * sin(2*pi*cyclesPerSample*i) for i in [0, length).
func Sine(length int, cyclesPerSample, amplitude float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal: sine length must be > 0: %d", length)
	}

	step := 2 * math.Pi * cyclesPerSample

	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Ramp returns the integer ramp 0, 1, ..., length-1.
func Ramp(length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal: ramp length must be > 0: %d", length)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}

	return out, nil
}

// WhiteNoise returns deterministic white noise in [-amplitude, amplitude]
// from the given seed.
func WhiteNoise(length int, amplitude float64, seed int64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal: noise length must be > 0: %d", length)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new
// slice. All-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
