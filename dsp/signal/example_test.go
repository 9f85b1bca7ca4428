package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(8))

	out, err := g.Sine(2, 1, 4)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %.0f %.0f %.0f\n", out[0], out[1], out[2], out[3])
	// Output: 0 1 0 -1
}

func ExampleGenerator_Impulse() {
	g := signal.NewGenerator()

	out, err := g.Impulse(1, 0, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: [1 0 0 0]
}
