// Package interp provides fractional-delay interpolation primitives used by
// variable-length delay lines.
//
// Three methods are available, from cheapest to highest quality:
//
//   - [Linear]:   2-point linear interpolation
//   - [Lagrange]: 5th-order Lagrange polynomial interpolation (6 taps)
//   - [Sinc]:     11-tap Hann-windowed sinc interpolation
//
// The coefficient generators [LagrangeCoeffs] and [SincCoeffs] are pure
// functions of the fractional offset; they can be tested and reused
// independently of any delay-line state. The response helpers ([Response],
// [MagnitudeAt], [PhaseDelayAt], [Analyze]) evaluate the resulting FIR
// kernels in the frequency domain.
//
// Kernels are cheap enough to recompute per sample. Callers that need more
// speed may precompute a table indexed by quantized fractional offset; the
// quantization error is bounded by half a table step in the effective delay,
// so the table size must be chosen against the caller's own tolerance.
package interp
