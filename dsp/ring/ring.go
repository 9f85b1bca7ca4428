package ring

import "fmt"

// Buffer is a fixed-capacity circular sample buffer.
type Buffer struct {
	data []float64
	head int
}

// NewBuffer returns a zero-filled circular buffer of fixed size.
func NewBuffer(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring size must be > 0: %d", size)
	}
	return &Buffer{data: make([]float64, size)}, nil
}

// Len returns the number of samples the buffer can store.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Resize reallocates storage for a new fixed size and invalidates all
// existing content.
func (b *Buffer) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("ring size must be > 0: %d", size)
	}
	b.data = make([]float64, size)
	b.head = 0
	return nil
}

// Insert writes one sample, overwriting the oldest stored value.
func (b *Buffer) Insert(value float64) {
	b.head = (b.head + 1) % len(b.data)
	b.data[b.head] = value
}

// At returns the sample at a circular index relative to the most recent
// insert: 0 is the newest sample, -1 the one before it, +1 the oldest.
func (b *Buffer) At(index int) float64 {
	return b.data[mod(index+b.head, len(b.data))]
}

// Clear zero-fills the storage.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Window is a circular buffer with an O(1) contiguous view of the most
// recent N samples. Every insert is written twice into a 2N backing store
// (at head and head+N), so the window [head+1, head+N] always holds the
// last N samples in chronological order.
type Window struct {
	data []float64
	head int
}

// NewWindow returns a zero-filled contiguous ring buffer of fixed size.
func NewWindow(size int) (*Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring size must be > 0: %d", size)
	}
	return &Window{data: make([]float64, 2*size)}, nil
}

// Len returns the number of samples the window can store. The backing
// store is twice this length.
func (w *Window) Len() int {
	return len(w.data) / 2
}

// Resize reallocates storage for a new fixed size and invalidates all
// existing content.
func (w *Window) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("ring size must be > 0: %d", size)
	}
	w.data = make([]float64, 2*size)
	w.head = 0
	return nil
}

// Insert writes one sample into both halves of the mirrored store.
func (w *Window) Insert(value float64) {
	n := w.Len()
	w.head = (w.head + 1) % n
	w.data[w.head] = value
	w.data[w.head+n] = value
}

// Contiguous returns the most recent N samples, oldest first, as a view
// into the mirrored store. No data is moved; the slice stays valid until
// the next Insert, Resize, or Clear.
func (w *Window) Contiguous() []float64 {
	n := w.Len()
	return w.data[w.head+1 : w.head+1+n]
}

// At returns the sample at a circular index relative to the most recent
// insert: 0 is the newest sample, -1 the one before it, +1 the oldest.
func (w *Window) At(index int) float64 {
	return w.data[mod(index+w.head, len(w.data))]
}

// Clear zero-fills the storage.
func (w *Window) Clear() {
	for i := range w.data {
		w.data[i] = 0
	}
}

// mod is the Euclidean remainder, so negative indices wrap backwards.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
