package fft

import (
	"math/cmplx"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// RealOnTheFly wraps an OnTheFly engine of half the length to transform
// real-valued blocks: consecutive sample pairs are packed into the real
// and imaginary parts of one complex slot, the half-length transform runs
// incrementally, and the full Hermitian spectrum is unpacked once the
// inner transform completes.
type RealOnTheFly struct {
	half         OnTheFly
	twiddles     Twiddles
	coefficients []complex128
	packed       []complex128
	finalized    bool
}

// NewRealOnTheFly returns an incremental real-input transform engine for
// n-point blocks. The engine starts in the completed state.
func NewRealOnTheFly(n int) (*RealOnTheFly, error) {
	r := &RealOnTheFly{}
	if err := r.Resize(n); err != nil {
		return nil, err
	}
	return r, nil
}

// Resize reallocates the engine for a new transform length and marks any
// in-flight transform complete. n must be a power of two of at least 2.
func (r *RealOnTheFly) Resize(n int) error {
	if !core.IsPowerOfTwo(n) || n < 2 {
		return errNotPowerOfTwo(n)
	}

	if err := r.half.Resize(n / 2); err != nil {
		return err
	}
	if err := r.twiddles.Resize(n); err != nil {
		return err
	}

	if cap(r.coefficients) >= n {
		r.coefficients = r.coefficients[:n]
	} else {
		r.coefficients = make([]complex128, n)
	}
	for i := range r.coefficients {
		r.coefficients[i] = 0
	}

	if cap(r.packed) >= n/2 {
		r.packed = r.packed[:n/2]
	} else {
		r.packed = make([]complex128, n/2)
	}

	r.finalized = true

	return nil
}

// Size returns the transform length N.
func (r *RealOnTheFly) Size() int {
	return len(r.coefficients)
}

// TotalSteps returns the number of Step calls needed to complete one
// transform, which is the half-length engine's schedule.
func (r *RealOnTheFly) TotalSteps() int {
	return r.half.TotalSteps()
}

// Done reports whether the current transform has run to completion and
// the spectrum has been unpacked.
func (r *RealOnTheFly) Done() bool {
	return r.finalized
}

// Buffer loads a real block of windowed samples and restarts the schedule.
// samples and coeffs must both have length N; coeffs holds the window to
// apply point-wise during loading.
func (r *RealOnTheFly) Buffer(samples []float64, coeffs []float64) error {
	n := len(r.coefficients)
	if len(samples) != n {
		return errLengthMismatch(len(samples), n)
	}
	if len(coeffs) != n {
		return errLengthMismatch(len(coeffs), n)
	}

	for k := range r.packed {
		r.packed[k] = complex(samples[2*k]*coeffs[2*k], samples[2*k+1]*coeffs[2*k+1])
	}
	if err := r.half.BufferComplex(r.packed); err != nil {
		return err
	}

	r.finalized = false
	if r.half.Done() {
		r.finalize()
	}

	return nil
}

// Step executes one butterfly of the inner transform; on the step that
// completes it, the Hermitian spectrum is unpacked. Calling Step on a
// completed transform is a no-op.
func (r *RealOnTheFly) Step() {
	if r.finalized {
		return
	}

	r.half.Step()
	if r.half.Done() {
		r.finalize()
	}
}

// StepHop executes the slice of butterflies owed for one arriving sample
// when the schedule is spread across hop samples.
func (r *RealOnTheFly) StepHop(hop int) {
	if hop <= 0 || r.finalized {
		return
	}

	steps := (r.TotalSteps() + hop - 1) / hop
	for i := 0; i < steps && !r.finalized; i++ {
		r.Step()
	}
}

// Compute runs the remaining schedule to completion in one call.
func (r *RealOnTheFly) Compute() {
	for !r.finalized {
		r.Step()
	}
}

// Coefficients returns the live coefficient slice holding the full N-bin
// Hermitian spectrum. The contents are only meaningful once Done reports
// true.
func (r *RealOnTheFly) Coefficients() []complex128 {
	return r.coefficients
}

// finalize unpacks the half-length spectrum of the packed sequence into
// the transform of the real input block. With A = H[k] and
// B = conj(H[N/2-k]), X[k] = ((A+B) - i*W[k]*(A-B)) / 2 and the upper
// half follows from Hermitian symmetry.
func (r *RealOnTheFly) finalize() {
	n := len(r.coefficients)
	h := n / 2
	inner := r.half.Coefficients()

	dc := inner[0]
	r.coefficients[0] = complex(real(dc)+imag(dc), 0)
	r.coefficients[h] = complex(real(dc)-imag(dc), 0)

	for k := 1; k < h; k++ {
		a := inner[k]
		b := cmplx.Conj(inner[h-k])
		w := r.twiddles.At(k)
		x := ((a + b) - 1i*w*(a-b)) * complex(0.5, 0)
		r.coefficients[k] = x
		r.coefficients[n-k] = cmplx.Conj(x)
	}

	r.finalized = true
}
