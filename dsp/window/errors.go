package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

func errLength(size int) error {
	return fmt.Errorf("window size must be > 0: %d", size)
}

func errUnsupported(f Function) error {
	return fmt.Errorf("unsupported window function: %d", int(f))
}
