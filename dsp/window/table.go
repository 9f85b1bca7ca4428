package window

// Table caches the coefficients of one window descriptor: function tag,
// length, symmetric flag, and coherent-gain flag. The cache is valid for
// exactly one descriptor value; any change forces a full recomputation.
type Table struct {
	function  Function
	coeffs    []float64
	symmetric bool
	gained    bool
}

// NewTable returns a table holding the coefficients of the given
// descriptor.
func NewTable(f Function, length int, symmetric, gained bool) (*Table, error) {
	t := &Table{}
	if err := t.Set(f, length, symmetric, gained); err != nil {
		return nil, err
	}
	return t, nil
}

// Set updates the table to a new descriptor. If the requested descriptor
// exactly matches the cached one this is a no-op; otherwise every
// coefficient is recomputed. A failed Set leaves the previous valid
// descriptor untouched.
func (t *Table) Set(f Function, length int, symmetric, gained bool) error {
	if length <= 0 {
		return errLength(length)
	}
	if f == t.function && length == len(t.coeffs) &&
		symmetric == t.symmetric && gained == t.gained {
		return nil
	}

	coeffs, err := t.generate(f, length, symmetric, gained)
	if err != nil {
		return err
	}

	t.function = f
	t.coeffs = coeffs
	t.symmetric = symmetric
	t.gained = gained
	return nil
}

func (t *Table) generate(f Function, length int, symmetric, gained bool) ([]float64, error) {
	if length <= 0 {
		return nil, errLength(length)
	}

	gain := 1.0
	if gained {
		cg, err := CoherentGain(f)
		if err != nil {
			return nil, err
		}
		gain = 1 / cg
	}

	// Reuse the cache backing store when only the content changes.
	coeffs := t.coeffs
	if cap(coeffs) >= length {
		coeffs = coeffs[:length]
	} else {
		coeffs = make([]float64, length)
	}

	for n := range coeffs {
		v, err := At(f, n, length, symmetric)
		if err != nil {
			return nil, err
		}
		coeffs[n] = gain * v
	}

	return coeffs, nil
}

// At returns the cached coefficient at index n.
func (t *Table) At(n int) float64 {
	return t.coeffs[n]
}

// Coefficients returns the cached coefficient slice. The slice is owned by
// the table and valid until the next successful Set; callers must not
// mutate it.
func (t *Table) Coefficients() []float64 {
	return t.coeffs
}

// Len returns the cached window length.
func (t *Table) Len() int {
	return len(t.coeffs)
}

// Function returns the cached window function.
func (t *Table) Function() Function {
	return t.function
}

// Symmetric reports whether the cached window uses the symmetric form.
func (t *Table) Symmetric() bool {
	return t.symmetric
}

// Gained reports whether the cached coefficients are coherent-gain
// normalized.
func (t *Table) Gained() bool {
	return t.gained
}
