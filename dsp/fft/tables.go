package fft

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Twiddles holds the N/2 complex rotation constants e^{-i*2*pi*k/N} of an
// N-point transform. The table is read-only after Resize.
type Twiddles struct {
	factors []complex128
}

// NewTwiddles returns a twiddle table for an n-point transform.
func NewTwiddles(n int) (*Twiddles, error) {
	t := &Twiddles{}
	if err := t.Resize(n); err != nil {
		return nil, err
	}
	return t, nil
}

// Resize recomputes the table for a new transform length. n must be a
// power of two. The factors are built by repeated multiplication with the
// base rotation e^{-i*2*pi/n}, avoiding n/2 trigonometric calls.
func (t *Twiddles) Resize(n int) error {
	if !core.IsPowerOfTwo(n) {
		return errNotPowerOfTwo(n)
	}

	if cap(t.factors) >= n/2 {
		t.factors = t.factors[:n/2]
	} else {
		t.factors = make([]complex128, n/2)
	}

	theta := -2 * math.Pi / float64(n)
	rotation := complex(math.Cos(theta), math.Sin(theta))
	w := complex(1, 0)
	for i := range t.factors {
		t.factors[i] = w
		w *= rotation
	}

	return nil
}

// Size returns the transform length N, twice the number of stored factors.
func (t *Twiddles) Size() int {
	return len(t.factors) * 2
}

// At returns the k'th twiddle factor. Valid indices are [0, N/2).
func (t *Twiddles) At(k int) complex128 {
	return t.factors[k]
}

// BitReversal holds the index permutation applied before an in-place
// iterative radix-2 transform. The table is read-only after Resize.
type BitReversal struct {
	table []int
}

// NewBitReversal returns a bit-reversal table for an n-point transform.
func NewBitReversal(n int) (*BitReversal, error) {
	b := &BitReversal{}
	if err := b.Resize(n); err != nil {
		return nil, err
	}
	return b, nil
}

// Resize recomputes the permutation of [0, n) by mirroring each index
// across log2(n) bits. n must be a power of two.
func (b *BitReversal) Resize(n int) error {
	if !core.IsPowerOfTwo(n) {
		return errNotPowerOfTwo(n)
	}

	if cap(b.table) >= n {
		b.table = b.table[:n]
	} else {
		b.table = make([]int, n)
	}

	bits := core.Log2Int(n)
	for i := range b.table {
		reversed := 0
		x := i
		for j := 0; j < bits; j++ {
			reversed = reversed<<1 | x&1
			x >>= 1
		}
		b.table[i] = reversed
	}

	return nil
}

// Size returns the number of entries in the table.
func (b *BitReversal) Size() int {
	return len(b.table)
}

// At returns the bit-reversed image of index i.
func (b *BitReversal) At(i int) int {
	return b.table[i]
}
