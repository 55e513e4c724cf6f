package delay_test

import (
	"fmt"

	"github.com/cwbudde/algo-delay/dsp/delay"
)

func ExampleLine() {
	line, err := delay.New(8, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	// One reader, two samples behind the write pointer.
	if err := line.SetDelays([]float64{2}); err != nil {
		fmt.Println(err)
		return
	}

	delays := []float64{2}

	var outs []float64
	for i := 1; i <= 5; i++ {
		out, _ := line.Step(float64(i), delays)
		outs = append(outs, out[0])
	}

	fmt.Println(outs)

	// Output:
	// [0 0 1 2 3]
}

func ExampleLine_multipleReaders() {
	line, err := delay.New(16, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Two readers at different distances behind the write pointer.
	delays := []float64{1, 4}
	if err := line.SetDelays(delays); err != nil {
		fmt.Println(err)
		return
	}

	for i := 1; i <= 6; i++ {
		out, _ := line.Step(float64(i), delays)
		fmt.Println(out)
	}

	// Output:
	// [0 0]
	// [1 0]
	// [2 0]
	// [3 0]
	// [4 1]
	// [5 2]
}
