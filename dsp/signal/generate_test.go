package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

func TestSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8))

	out, err := g.Sine(1, 1, 8)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	want := []float64{0, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 0, -math.Sqrt2 / 2, -1, -math.Sqrt2 / 2}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %g, want %g", i, out[i], want[i])
		}
	}
}

func TestSineValidation(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Error("zero samples: expected error")
	}

	g = NewGenerator()
	if _, err := g.Sine(440, 1, 8); err == nil {
		t.Error("missing sample rate: expected error")
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()

	out, err := g.Impulse(2, 3, 8)
	if err != nil {
		t.Fatalf("Impulse: %v", err)
	}

	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 2
		}
		if v != want {
			t.Errorf("sample %d = %g, want %g", i, v, want)
		}
	}

	if _, err := g.Impulse(1, 8, 8); err == nil {
		t.Error("offset past end: expected error")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a := NewGeneratorWithOptions(nil, WithSeed(42))
	b := NewGeneratorWithOptions(nil, WithSeed(42))

	x, err := a.WhiteNoise(1, 64)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	y, err := b.WhiteNoise(1, 64)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	for i := range x {
		if x[i] != y[i] {
			t.Fatalf("sample %d differs across identical seeds", i)
		}
		if math.Abs(x[i]) > 1 {
			t.Fatalf("sample %d = %g exceeds amplitude", i, x[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.5, -0.25, 0.1}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if math.Abs(out[0]-1) > 1e-12 {
		t.Errorf("peak = %g, want 1", out[0])
	}

	zeros, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize zeros: %v", err)
	}
	for _, v := range zeros {
		if v != 0 {
			t.Error("all-zero input should stay zero")
		}
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Error("empty input: expected error")
	}
}
