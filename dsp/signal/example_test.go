package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-delay/dsp/signal"
)

func ExampleImpulseTrain() {
	train, err := signal.ImpulseTrain(8, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(train)

	// Output:
	// [1 0 0 0 1 0 0 0]
}

func ExampleNormalize() {
	out, err := signal.Normalize([]float64{1, -4, 2}, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out)

	// Output:
	// [0.25 -1 0.5]
}
