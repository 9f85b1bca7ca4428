package fft

import "testing"

func BenchmarkOnTheFlyFullBlock(b *testing.B) {
	const n = 1024

	o, err := NewOnTheFly(n)
	if err != nil {
		b.Fatalf("NewOnTheFly: %v", err)
	}
	samples := randomRealBlock(n, 1)
	window := ones(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := o.Buffer(samples, window); err != nil {
			b.Fatalf("Buffer: %v", err)
		}
		o.Compute()
	}
}

func BenchmarkOnTheFlyStepHop(b *testing.B) {
	const (
		n   = 1024
		hop = 256
	)

	o, err := NewOnTheFly(n)
	if err != nil {
		b.Fatalf("NewOnTheFly: %v", err)
	}
	samples := randomRealBlock(n, 2)
	window := ones(n)
	if err := o.Buffer(samples, window); err != nil {
		b.Fatalf("Buffer: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if o.Done() {
			if err := o.Buffer(samples, window); err != nil {
				b.Fatalf("Buffer: %v", err)
			}
		}
		o.StepHop(hop)
	}
}

func BenchmarkRealOnTheFlyFullBlock(b *testing.B) {
	const n = 1024

	r, err := NewRealOnTheFly(n)
	if err != nil {
		b.Fatalf("NewRealOnTheFly: %v", err)
	}
	samples := randomRealBlock(n, 3)
	window := ones(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Buffer(samples, window); err != nil {
			b.Fatalf("Buffer: %v", err)
		}
		r.Compute()
	}
}

func BenchmarkTransformForward(b *testing.B) {
	const n = 1024

	t, err := NewTransform(n)
	if err != nil {
		b.Fatalf("NewTransform: %v", err)
	}
	src := randomComplexBlock(n, 4)
	dst := make([]complex128, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := t.Forward(dst, src); err != nil {
			b.Fatalf("Forward: %v", err)
		}
	}
}
