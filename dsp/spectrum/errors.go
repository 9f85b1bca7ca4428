package spectrum

import "fmt"

func errLengthMismatch(got, want int) error {
	return fmt.Errorf("spectrum length mismatch: %d, want %d", got, want)
}

func errSampleRate(sr float64) error {
	return fmt.Errorf("spectrum sample rate must be > 0: %g", sr)
}

func errFraction(fraction float64) error {
	return fmt.Errorf("spectrum octave fraction must be >= 0: %g", fraction)
}

func errBounds(minHz, maxHz float64) error {
	return fmt.Errorf("spectrum frequency bounds invalid: [%g, %g]", minHz, maxHz)
}

func errTooShort(n int) error {
	return fmt.Errorf("spectrum requires at least 2 bins: %d", n)
}
