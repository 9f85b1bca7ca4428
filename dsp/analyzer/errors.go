package analyzer

import "fmt"

func errWindowLength(n int) error {
	return fmt.Errorf("analyzer window length must be a power of two >= 4: %d", n)
}

func errHopLength(hop, windowLen int) error {
	return fmt.Errorf("analyzer hop length must be in [1, %d]: %d", windowLen, hop)
}

func errSampleRate(sr float64) error {
	return fmt.Errorf("analyzer sample rate must be > 0: %g", sr)
}

func errSmoothingTime(seconds float64) error {
	return fmt.Errorf("analyzer smoothing time must be >= 0: %g", seconds)
}

func errInputGain(gain float64) error {
	return fmt.Errorf("analyzer input gain must be finite: %g", gain)
}
