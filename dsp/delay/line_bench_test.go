package delay

import (
	"testing"

	"github.com/cwbudde/algo-delay/dsp/interp"
)

func benchmarkStep(b *testing.B, mode interp.Mode) {
	l, err := New(1024, 1, WithMode(mode))
	if err != nil {
		b.Fatal(err)
	}

	if err := l.SetDelays([]float64{100.37}); err != nil {
		b.Fatal(err)
	}

	delays := []float64{100.37}
	dst := make([]float64, 1)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.StepTo(dst, float64(i&255), delays)
	}
}

func BenchmarkStepLinear(b *testing.B) {
	benchmarkStep(b, interp.Linear)
}

func BenchmarkStepLagrange(b *testing.B) {
	benchmarkStep(b, interp.Lagrange)
}

func BenchmarkStepSinc(b *testing.B) {
	benchmarkStep(b, interp.Sinc)
}

func BenchmarkStepLinearEightReaders(b *testing.B) {
	l, err := New(1024, 8, WithMode(interp.Linear))
	if err != nil {
		b.Fatal(err)
	}

	delays := make([]float64, 8)
	for i := range delays {
		delays[i] = 50 + 10*float64(i) + 0.37
	}

	if err := l.SetDelays(delays); err != nil {
		b.Fatal(err)
	}

	dst := make([]float64, 8)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.StepTo(dst, float64(i&255), delays)
	}
}
