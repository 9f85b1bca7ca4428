package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

func ExampleMagnitude() {
	mags := spectrum.Magnitude([]complex128{3 + 4i, 1i, -2})

	for _, m := range mags {
		fmt.Printf("%.0f ", m)
	}
	// Output: 5 1 2
}

func ExampleSmoothOctave() {
	// A flat spectrum stays flat regardless of band width.
	flat := []float64{1, 1, 1, 1, 1}

	smoothed, err := spectrum.SmoothOctave(flat, 1, 8)
	if err != nil {
		panic(err)
	}

	for _, v := range smoothed {
		fmt.Printf("%.0f ", v)
	}
	// Output: 1 1 1 1 1
}
