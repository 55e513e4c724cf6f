package interp

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response returns the complex frequency response of kernel h evaluated on
// an nfft-point FFT grid. Bins 0..nfft/2 (DC to Nyquist) are returned.
// nfft must be a power of two no smaller than len(h).
func Response(h []float64, nfft int) ([]complex128, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("interp: response kernel must not be empty")
	}

	if nfft < len(h) || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("interp: response nfft must be a power of two >= kernel length: %d", nfft)
	}

	in := make([]complex128, nfft)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	return out[:nfft/2+1], nil
}

// MagnitudeResponse returns |H| of kernel h on an nfft-point FFT grid,
// bins 0..nfft/2.
func MagnitudeResponse(h []float64, nfft int) ([]float64, error) {
	bins, err := Response(h, nfft)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// MagnitudeAt evaluates |H(freq)| of kernel h at a normalized frequency in
// [0, 0.5] cycles per sample via direct DFT evaluation.
func MagnitudeAt(h []float64, freq float64) float64 {
	re, im := dftAt(h, freq)

	return mathSqrt(re*re + im*im)
}

// PhaseDelayAt evaluates the phase delay -arg(H(freq)) / (2*pi*freq) in
// samples at a normalized frequency. freq must be in (0, 0.5] and small
// enough that the kernel's phase stays inside the principal branch.
func PhaseDelayAt(h []float64, freq float64) float64 {
	re, im := dftAt(h, freq)

	return -math.Atan2(im, re) / (2 * math.Pi * freq)
}

// dftAt evaluates H(freq) at a normalized frequency in [0, 0.5].
func dftAt(h []float64, freq float64) (re, im float64) {
	w := 2 * math.Pi * freq
	for k, c := range h {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re, im
}

// Analysis holds numerically evaluated properties of a fractional-delay
// FIR kernel.
type Analysis struct {
	// DCGain is H(0), the coefficient sum.
	DCGain float64
	// PhaseDelay is the low-frequency phase delay in samples.
	PhaseDelay float64
	// Bandwidth3dB is the one-sided half-power bandwidth in cycles per sample.
	Bandwidth3dB float64
	// PeakRippleDB is the largest magnitude deviation from DC gain inside
	// the passband, in dB.
	PeakRippleDB float64
}

// lowFreq is the normalized frequency used for the low-frequency phase
// delay estimate. Small enough that kernels up to a few hundred taps stay
// inside the principal phase branch.
const lowFreq = 1.0 / 4096

// Analyze numerically evaluates a fractional-delay kernel: DC gain,
// low-frequency phase delay, half-power bandwidth and peak passband ripple.
func Analyze(h []float64) Analysis {
	if len(h) == 0 {
		return Analysis{}
	}

	dc := 0.0
	for _, c := range h {
		dc += c
	}

	dcMag := math.Abs(dc)
	if dcMag == 0 {
		return Analysis{DCGain: dc}
	}

	bw := searchBandwidth3dB(h, dcMag)

	return Analysis{
		DCGain:       dc,
		PhaseDelay:   PhaseDelayAt(h, lowFreq),
		Bandwidth3dB: bw,
		PeakRippleDB: scanPeakRipple(h, dcMag, bw),
	}
}

// searchBandwidth3dB bisects for the first frequency where |H| falls below
// |H(0)|/sqrt(2). Returns 0.5 (Nyquist) when the response never drops that
// far.
func searchBandwidth3dB(h []float64, dcMag float64) float64 {
	target := dcMag / math.Sqrt2
	if MagnitudeAt(h, 0.5) >= target {
		return 0.5
	}

	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if MagnitudeAt(h, mid) >= target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

// scanPeakRipple scans the passband for the largest deviation from DC gain.
func scanPeakRipple(h []float64, dcMag, bw float64) float64 {
	const steps = 512

	peak := 0.0
	for i := 1; i <= steps; i++ {
		f := bw * float64(i) / steps

		dev := math.Abs(20 * mathLog10(MagnitudeAt(h, f)/dcMag))
		if dev > peak {
			peak = dev
		}
	}

	return peak
}
