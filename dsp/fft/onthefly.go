package fft

import "github.com/cwbudde/algo-spectral/dsp/core"

// OnTheFly computes an in-place radix-2 transform one butterfly at a time,
// so the O(N log N) work of a block can be spread across the samples that
// arrive before the next block is due. A full pass over all butterflies of
// all stages takes TotalSteps calls to Step.
type OnTheFly struct {
	twiddles     Twiddles
	bitrev       BitReversal
	coefficients []complex128

	// Butterfly cursor. step is the current stage's span (2, 4, ..., N);
	// a value above N marks the transform complete.
	step  int
	group int
	pair  int

	totalSteps int
}

// NewOnTheFly returns an incremental transform engine for n-point blocks.
// The engine starts in the completed state; call Buffer to load a block.
func NewOnTheFly(n int) (*OnTheFly, error) {
	o := &OnTheFly{}
	if err := o.Resize(n); err != nil {
		return nil, err
	}
	return o, nil
}

// Resize reallocates the engine for a new transform length and marks any
// in-flight transform complete. n must be a power of two.
func (o *OnTheFly) Resize(n int) error {
	if err := o.twiddles.Resize(n); err != nil {
		return err
	}
	if err := o.bitrev.Resize(n); err != nil {
		return err
	}

	if cap(o.coefficients) >= n {
		o.coefficients = o.coefficients[:n]
	} else {
		o.coefficients = make([]complex128, n)
	}
	for i := range o.coefficients {
		o.coefficients[i] = 0
	}

	o.totalSteps = n / 2 * core.Log2Int(n)
	o.step = 2 * n
	o.group = 0
	o.pair = 0

	return nil
}

// Size returns the transform length N.
func (o *OnTheFly) Size() int {
	return len(o.coefficients)
}

// TotalSteps returns the number of Step calls needed to complete one
// transform: (N/2)*log2(N).
func (o *OnTheFly) TotalSteps() int {
	return o.totalSteps
}

// Done reports whether the current transform has run to completion.
// A freshly constructed or resized engine reports true.
func (o *OnTheFly) Done() bool {
	return o.step > len(o.coefficients)
}

// Buffer loads a block of windowed samples and restarts the butterfly
// schedule. samples and coeffs must both have length N; coeffs holds the
// window to apply point-wise during loading. Loading discards any
// transform still in flight.
func (o *OnTheFly) Buffer(samples []float64, coeffs []float64) error {
	n := len(o.coefficients)
	if len(samples) != n {
		return errLengthMismatch(len(samples), n)
	}
	if len(coeffs) != n {
		return errLengthMismatch(len(coeffs), n)
	}

	for i := 0; i < n; i++ {
		o.coefficients[i] = complex(samples[i]*coeffs[i], 0)
	}
	for i := 0; i < n; i++ {
		if j := o.bitrev.At(i); i < j {
			o.coefficients[i], o.coefficients[j] = o.coefficients[j], o.coefficients[i]
		}
	}

	o.step = 2
	o.group = 0
	o.pair = 0

	return nil
}

// BufferComplex loads a pre-windowed complex block and restarts the
// schedule. Used by the real-input adapter, which packs two real samples
// per complex slot before handing them over.
func (o *OnTheFly) BufferComplex(block []complex128) error {
	n := len(o.coefficients)
	if len(block) != n {
		return errLengthMismatch(len(block), n)
	}

	copy(o.coefficients, block)
	for i := 0; i < n; i++ {
		if j := o.bitrev.At(i); i < j {
			o.coefficients[i], o.coefficients[j] = o.coefficients[j], o.coefficients[i]
		}
	}

	o.step = 2
	o.group = 0
	o.pair = 0

	return nil
}

// Step executes exactly one butterfly and advances the cursor. Calling
// Step on a completed transform is a no-op.
func (o *OnTheFly) Step() {
	n := len(o.coefficients)
	if o.step > n {
		return
	}

	halfStep := o.step >> 1
	stride := n / o.step

	top := o.group + o.pair
	bottom := top + halfStep
	w := o.twiddles.At(o.pair * stride)

	even := o.coefficients[top]
	odd := o.coefficients[bottom] * w
	o.coefficients[top] = even + odd
	o.coefficients[bottom] = even - odd

	o.pair++
	if o.pair == halfStep {
		o.pair = 0
		o.group += o.step
		if o.group == n {
			o.group = 0
			o.step <<= 1
		}
	}
}

// StepHop executes the slice of butterflies owed for one arriving sample
// when the schedule is spread across hop samples: ceil(TotalSteps/hop)
// butterflies per call, stopping early at completion.
func (o *OnTheFly) StepHop(hop int) {
	if hop <= 0 {
		return
	}

	steps := (o.totalSteps + hop - 1) / hop
	for i := 0; i < steps && !o.Done(); i++ {
		o.Step()
	}
}

// Compute runs the remaining schedule to completion in one call.
func (o *OnTheFly) Compute() {
	for !o.Done() {
		o.Step()
	}
}

// Coefficients returns the live coefficient slice. The contents are only
// meaningful once Done reports true; the caller must not mutate them while
// a transform is in flight.
func (o *OnTheFly) Coefficients() []complex128 {
	return o.coefficients
}
