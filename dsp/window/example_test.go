package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/window"
)

func ExampleGenerate() {
	w, _ := window.Generate(window.Hann, 8, window.WithPeriodic())
	fmt.Printf("%.3f %.3f %.3f\n", w[0], w[2], w[4])
	// Output:
	// 0.000 0.500 1.000
}

func ExampleTable() {
	tbl, _ := window.NewTable(window.Boxcar, 4, false, false)
	fmt.Println(tbl.At(0), tbl.At(3), tbl.Function())
	// Output:
	// 1 1 Boxcar
}

func ExampleCoherentGain() {
	cg, _ := window.CoherentGain(window.Hann)
	fmt.Printf("%.2f\n", cg)
	// Output:
	// 0.50
}
