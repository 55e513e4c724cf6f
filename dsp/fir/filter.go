package fir

import "math"

// Filter is a direct-form FIR filter with a circular tap delay line.
type Filter struct {
	coeffs []float64
	state  []float64
	pos    int
}

// New creates a FIR filter from the given coefficient vector. The
// coefficients are copied; the filter order is len(coeffs)-1.
func New(coeffs []float64) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	return &Filter{
		coeffs: append([]float64(nil), coeffs...),
		state:  make([]float64, len(coeffs)),
	}, nil
}

// SetCoefficients swaps in a same-length coefficient vector without
// clearing the tap state, so a slowly varying response (a moving-source
// reflection path, say) can be retuned mid-stream without a click from
// lost history.
func (f *Filter) SetCoefficients(coeffs []float64) error {
	if len(coeffs) == 0 {
		return ErrEmptyCoefficients
	}

	if len(coeffs) != len(f.coeffs) {
		return ErrLengthChange
	}

	copy(f.coeffs, coeffs)

	return nil
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.state[f.pos] = x

	y := 0.0
	p := f.pos

	for _, c := range f.coeffs {
		y += c * f.state[p]

		p--
		if p < 0 {
			p = len(f.state) - 1
		}
	}

	f.pos++
	if f.pos >= len(f.state) {
		f.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length.
func (f *Filter) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}

	return nil
}

// Reset clears the tap delay line.
func (f *Filter) Reset() {
	for i := range f.state {
		f.state[i] = 0
	}

	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the current coefficient vector.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.coeffs...)
}

// Response computes the complex frequency response at a normalized
// frequency in [0, 0.5] cycles per sample.
func (f *Filter) Response(freq float64) complex128 {
	w := 2 * math.Pi * freq

	re, im := 0.0, 0.0
	for k, c := range f.coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return complex(re, im)
}

// MagnitudeDB returns the magnitude response in dB at a normalized
// frequency in [0, 0.5] cycles per sample.
func (f *Filter) MagnitudeDB(freq float64) float64 {
	h := f.Response(freq)

	return 20 * math.Log10(math.Hypot(real(h), imag(h)))
}
