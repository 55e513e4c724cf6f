package interp

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponseValidation(t *testing.T) {
	if _, err := Response(nil, 16); err == nil {
		t.Fatal("expected error for empty kernel")
	}

	if _, err := Response(make([]float64, 4), 100); err == nil {
		t.Fatal("expected error for non-power-of-two nfft")
	}

	if _, err := Response(make([]float64, 32), 16); err == nil {
		t.Fatal("expected error for nfft shorter than the kernel")
	}
}

func TestResponseDelta(t *testing.T) {
	bins, err := Response([]float64{1}, 16)
	if err != nil {
		t.Fatal(err)
	}

	if len(bins) != 9 {
		t.Fatalf("bin count: got %d want 9", len(bins))
	}

	for i, c := range bins {
		if !approxEqual(cmplx.Abs(c), 1, 1e-12) {
			t.Fatalf("bin %d: |H| = %v want 1", i, cmplx.Abs(c))
		}
	}
}

func TestMagnitudeResponseAverager(t *testing.T) {
	// Two-tap averager: |H(f)| = |cos(pi f)|, unity at DC, null at Nyquist.
	mags, err := MagnitudeResponse([]float64{0.5, 0.5}, 64)
	if err != nil {
		t.Fatal(err)
	}

	if len(mags) != 33 {
		t.Fatalf("bin count: got %d want 33", len(mags))
	}

	if !approxEqual(mags[0], 1, 1e-12) {
		t.Fatalf("DC: got %v want 1", mags[0])
	}

	if !approxEqual(mags[len(mags)-1], 0, 1e-12) {
		t.Fatalf("Nyquist: got %v want 0", mags[len(mags)-1])
	}

	for i, m := range mags {
		f := float64(i) / 64
		if want := math.Abs(math.Cos(math.Pi * f)); !approxEqual(m, want, 1e-9) {
			t.Fatalf("bin %d: got %v want %v", i, m, want)
		}
	}
}

func TestMagnitudeAt(t *testing.T) {
	h := []float64{0.5, 0.5}

	if got := MagnitudeAt(h, 0); !approxEqual(got, 1, 1e-12) {
		t.Fatalf("DC: got %v want 1", got)
	}

	if got := MagnitudeAt(h, 0.5); !approxEqual(got, 0, 1e-12) {
		t.Fatalf("Nyquist: got %v want 0", got)
	}

	if got, want := MagnitudeAt(h, 0.25), math.Cos(math.Pi/4); !approxEqual(got, want, 1e-12) {
		t.Fatalf("quarter band: got %v want %v", got, want)
	}
}

func TestPhaseDelayPureDelay(t *testing.T) {
	// A one-hot kernel at index k is a pure delay of k samples.
	for _, k := range []int{0, 1, 3, 7} {
		h := make([]float64, 8)
		h[k] = 1

		if got := PhaseDelayAt(h, 0.01); !approxEqual(got, float64(k), 1e-9) {
			t.Fatalf("delay %d: got %v", k, got)
		}
	}
}

func TestPhaseDelayLagrangeKernel(t *testing.T) {
	// As a standalone FIR, the Lagrange kernel delays by its fractional
	// offset: the basis evaluates the polynomial through x[n-0..n-order]
	// at offset frac.
	for _, frac := range []float64{0.1, 0.5, 0.9} {
		h, err := LagrangeCoeffs(5, frac)
		if err != nil {
			t.Fatal(err)
		}

		if got := PhaseDelayAt(h, lowFreq); !approxEqual(got, frac, 1e-6) {
			t.Fatalf("frac=%v: phase delay %v", frac, got)
		}
	}
}

func TestPhaseDelaySincKernel(t *testing.T) {
	// An 11-tap fractional-delay sinc kernel delays by 5 + frac samples.
	const frac = 0.3

	h, err := SincCoeffs(11, hannTest(11), frac)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := PhaseDelayAt(h, lowFreq), 5+frac; !approxEqual(got, want, 0.05) {
		t.Fatalf("phase delay: got %v want about %v", got, want)
	}
}

func TestAnalyzeDelta(t *testing.T) {
	h := make([]float64, 8)
	h[3] = 1

	a := Analyze(h)

	if !approxEqual(a.DCGain, 1, 1e-12) {
		t.Fatalf("DCGain: got %v want 1", a.DCGain)
	}

	if !approxEqual(a.PhaseDelay, 3, 1e-9) {
		t.Fatalf("PhaseDelay: got %v want 3", a.PhaseDelay)
	}

	if !approxEqual(a.Bandwidth3dB, 0.5, 1e-12) {
		t.Fatalf("Bandwidth3dB: got %v want 0.5", a.Bandwidth3dB)
	}

	if a.PeakRippleDB > 1e-9 {
		t.Fatalf("PeakRippleDB: got %v want 0", a.PeakRippleDB)
	}
}

func TestAnalyzeAverager(t *testing.T) {
	// |H(f)| = cos(pi f) crosses 1/sqrt(2) at f = 0.25 cycles per sample.
	a := Analyze([]float64{0.5, 0.5})

	if !approxEqual(a.DCGain, 1, 1e-12) {
		t.Fatalf("DCGain: got %v want 1", a.DCGain)
	}

	if !approxEqual(a.Bandwidth3dB, 0.25, 1e-3) {
		t.Fatalf("Bandwidth3dB: got %v want 0.25", a.Bandwidth3dB)
	}

	if !approxEqual(a.PhaseDelay, 0.5, 1e-6) {
		t.Fatalf("PhaseDelay: got %v want 0.5", a.PhaseDelay)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)
	if a != (Analysis{}) {
		t.Fatalf("got %+v want zero value", a)
	}
}
