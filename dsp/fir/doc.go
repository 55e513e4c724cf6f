// Package fir applies externally designed FIR coefficient vectors to a
// sample stream. In an acoustic propagation chain these are the auxiliary
// absorption and reflection responses applied to the output of a delay-line
// reader; this package only runs the convolution, it never designs the
// coefficients.
package fir
