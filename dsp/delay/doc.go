// Package delay implements a variable-length fractional delay line: a
// circular buffer with one write pointer and an arbitrary number of
// independently delayed read pointers producing interpolated output.
//
// The line is driven once per sampling instant by [Line.Step], which writes
// the new input sample and returns one interpolated output per read
// pointer. Because the per-reader delay is re-supplied on every call, the
// delay may vary continuously over time; this is the basis for simulating
// moving propagation paths (Doppler-style pitch change from an approaching
// source). Delay values are plain sample counts; how they were derived
// (distance, speed of sound) is the caller's business.
//
// The interpolation method is fixed at construction, see
// [github.com/cwbudde/algo-delay/dsp/interp].
//
// A Line is not safe for concurrent use and calls to Step must be strictly
// sequential: each call's output and next state depend on all prior calls.
// Readers within one step are mutually independent, so their processing
// order does not matter.
package delay
