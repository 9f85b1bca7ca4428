package fft

import "math/cmplx"

// Transform computes one-shot block transforms over the same iterative
// radix-2 kernel the incremental engine uses. One instance can be reused
// across blocks without allocating.
type Transform struct {
	engine  OnTheFly
	scratch []complex128
}

// NewTransform returns a one-shot transform for n-point blocks.
func NewTransform(n int) (*Transform, error) {
	t := &Transform{}
	if err := t.Resize(n); err != nil {
		return nil, err
	}
	return t, nil
}

// Resize reallocates the transform for a new block length. n must be a
// power of two.
func (t *Transform) Resize(n int) error {
	if err := t.engine.Resize(n); err != nil {
		return err
	}

	if cap(t.scratch) >= n {
		t.scratch = t.scratch[:n]
	} else {
		t.scratch = make([]complex128, n)
	}

	return nil
}

// Size returns the block length N.
func (t *Transform) Size() int {
	return t.engine.Size()
}

// Forward computes the discrete Fourier transform of src into dst. Both
// slices must have length N; dst and src may alias.
func (t *Transform) Forward(dst, src []complex128) error {
	if len(dst) != t.engine.Size() {
		return errLengthMismatch(len(dst), t.engine.Size())
	}
	if err := t.engine.BufferComplex(src); err != nil {
		return err
	}

	t.engine.Compute()
	copy(dst, t.engine.Coefficients())

	return nil
}

// Inverse computes the inverse transform of src into dst, normalized by
// 1/N. Both slices must have length N; dst and src may alias. The inverse
// is run as a forward transform over the conjugated input.
func (t *Transform) Inverse(dst, src []complex128) error {
	n := t.engine.Size()
	if len(src) != n {
		return errLengthMismatch(len(src), n)
	}
	if len(dst) != n {
		return errLengthMismatch(len(dst), n)
	}

	for i, v := range src {
		t.scratch[i] = cmplx.Conj(v)
	}
	if err := t.engine.BufferComplex(t.scratch); err != nil {
		return err
	}
	t.engine.Compute()

	scale := complex(1/float64(n), 0)
	for i, v := range t.engine.Coefficients() {
		dst[i] = cmplx.Conj(v) * scale
	}

	return nil
}

// Forward computes the discrete Fourier transform of src and returns a
// freshly allocated result. Convenience wrapper for one-off use; allocate
// a Transform to amortize table setup across blocks.
func Forward(src []complex128) ([]complex128, error) {
	t, err := NewTransform(len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]complex128, len(src))
	if err := t.Forward(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// Inverse computes the normalized inverse transform of src and returns a
// freshly allocated result.
func Inverse(src []complex128) ([]complex128, error) {
	t, err := NewTransform(len(src))
	if err != nil {
		return nil, err
	}

	dst := make([]complex128, len(src))
	if err := t.Inverse(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}
