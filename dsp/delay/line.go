package delay

import (
	"math"

	"github.com/cwbudde/algo-delay/dsp/interp"
)

const (
	// lagrangeOrder is the polynomial order used by interp.Lagrange mode.
	lagrangeOrder = 5
	// sincTaps is the kernel length used by interp.Sinc mode.
	sincTaps = 11
)

// Line is a variable-length fractional delay line. It owns a fixed-size
// circular sample buffer, a single write pointer and a fixed number of
// fractional read pointers. All pointers stay in [0, Len()) at all times.
type Line struct {
	buffer   []float64
	writePos int
	readPos  []float64
	mode     interp.Mode

	kernel []float64 // per-step coefficient scratch (Lagrange/Sinc)
	window []float64 // fixed Hann window for Sinc mode
}

// Option configures a Line.
type Option func(*Line)

// WithMode selects the interpolation method. The default is interp.Linear.
func WithMode(m interp.Mode) Option {
	return func(l *Line) {
		l.mode = m
	}
}

// New creates a delay line of fixed size with the given number of read
// pointers. The buffer starts zero-filled, the write pointer at zero and
// every read pointer at position zero; call SetDelays before stepping.
func New(size, readers int, opts ...Option) (*Line, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	if readers <= 0 {
		return nil, ErrInvalidReaderCount
	}

	l := &Line{
		buffer:  make([]float64, size),
		readPos: make([]float64, readers),
		mode:    interp.Linear,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	if !l.mode.Valid() {
		return nil, ErrInvalidMode
	}

	switch l.mode {
	case interp.Lagrange:
		l.kernel = make([]float64, lagrangeOrder+1)
	case interp.Sinc:
		l.kernel = make([]float64, sincTaps)
		l.window = hannWindow(sincTaps)
	}

	return l, nil
}

// SetDelays positions each read pointer delays[i] samples behind the write
// pointer. Each delay must satisfy 0 < delays[i] < Len(). No state is
// mutated when any delay is rejected.
func (l *Line) SetDelays(delays []float64) error {
	if len(delays) != len(l.readPos) {
		return ErrDelayCount
	}

	n := float64(len(l.buffer))
	for _, d := range delays {
		if d <= 0 {
			return ErrNonPositiveDelay
		}

		if d >= n {
			return ErrDelayTooLong
		}
	}

	for i, d := range delays {
		pos := float64(l.writePos) - d
		if pos < 0 {
			pos += n
		}
		l.readPos[i] = pos
	}

	return nil
}

// Step writes x into the line, produces one interpolated output per read
// pointer at its current position, and then retargets every read pointer
// delays[i] samples behind the advanced write pointer. It must be called
// exactly once per sampling instant.
//
// Delay magnitudes are not re-validated here, a tradeoff favoring
// per-sample cost: callers must keep them non-negative, below Len(), and
// changing by less than Len() between consecutive calls. The delays slice
// length is the only per-call check.
func (l *Line) Step(x float64, delays []float64) ([]float64, error) {
	out := make([]float64, len(l.readPos))
	if err := l.StepTo(out, x, delays); err != nil {
		return nil, err
	}

	return out, nil
}

// StepTo is the allocation-free variant of Step, writing one output per
// read pointer into dst.
func (l *Line) StepTo(dst []float64, x float64, delays []float64) error {
	if len(delays) != len(l.readPos) {
		return ErrDelayCount
	}

	if len(dst) != len(l.readPos) {
		return ErrOutputLength
	}

	n := len(l.buffer)

	l.buffer[l.writePos] = x
	l.writePos++

	for i, pos := range l.readPos {
		k := int(math.Floor(pos))
		frac := pos - float64(k)

		dst[i] = l.readAt(k, frac)

		// Retarget behind the advanced write pointer. The wrap assumes the
		// delay changed by less than one line length since the last step.
		next := float64(l.writePos) - delays[i]
		for next < 0 {
			next += float64(n)
		}

		for next >= float64(n) {
			next -= float64(n)
		}
		l.readPos[i] = next
	}

	if l.writePos >= n {
		l.writePos -= n
	}

	return nil
}

// readAt produces one interpolated sample around integer position k with
// fractional offset frac in [0,1).
func (l *Line) readAt(k int, frac float64) float64 {
	n := len(l.buffer)

	switch l.mode {
	case interp.Linear:
		next := k + 1
		if next >= n {
			next -= n
		}

		return interp.Linear2(frac, l.buffer[k], l.buffer[next])
	case interp.Lagrange:
		// Kernel length is fixed at construction, the fill cannot fail.
		_ = interp.LagrangeCoeffsTo(l.kernel, frac)

		return l.convolveAt(k - lagrangeOrder/2)
	case interp.Sinc:
		_ = interp.SincCoeffsTo(l.kernel, l.window, frac)

		return l.convolveAt(k - sincTaps/2)
	default:
		// Unreachable: the mode is validated at construction.
		return 0
	}
}

// convolveAt convolves the kernel scratch against the buffer starting at
// the (possibly negative) index start, wrapping modulo the line length.
func (l *Line) convolveAt(start int) float64 {
	n := len(l.buffer)

	idx := start % n
	if idx < 0 {
		idx += n
	}

	out := 0.0
	for _, c := range l.kernel {
		out += c * l.buffer[idx]

		idx++
		if idx >= n {
			idx = 0
		}
	}

	return out
}

// Len returns the line capacity in samples.
func (l *Line) Len() int {
	return len(l.buffer)
}

// Readers returns the number of read pointers.
func (l *Line) Readers() int {
	return len(l.readPos)
}

// Mode returns the interpolation mode fixed at construction.
func (l *Line) Mode() interp.Mode {
	return l.mode
}

// WritePosition returns the current write pointer position.
func (l *Line) WritePosition() int {
	return l.writePos
}

// ReadPositions copies the current read pointer positions into dst.
func (l *Line) ReadPositions(dst []float64) error {
	if len(dst) != len(l.readPos) {
		return ErrOutputLength
	}

	copy(dst, l.readPos)

	return nil
}

// History returns the last Len() written samples in chronological order,
// oldest first. Entries never written are zero.
func (l *Line) History() []float64 {
	out := make([]float64, 0, len(l.buffer))
	out = append(out, l.buffer[l.writePos:]...)

	return append(out, l.buffer[:l.writePos]...)
}

// Reset zeroes the buffer and returns all pointers to position zero.
func (l *Line) Reset() {
	for i := range l.buffer {
		l.buffer[i] = 0
	}

	for i := range l.readPos {
		l.readPos[i] = 0
	}

	l.writePos = 0
}

// hannWindow returns a symmetric n-point Hann window.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}
