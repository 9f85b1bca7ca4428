package fft

import "fmt"

func errNotPowerOfTwo(n int) error {
	return fmt.Errorf("fft length must be a power of two: %d", n)
}

func errLengthMismatch(got, want int) error {
	return fmt.Errorf("fft buffer length mismatch: %d, want %d", got, want)
}
