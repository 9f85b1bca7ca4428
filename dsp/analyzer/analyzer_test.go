package analyzer

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

func sine(t *testing.T, sampleRate, freqHz, amplitude float64, samples int) []float64 {
	t.Helper()

	g := signal.NewGenerator(core.WithSampleRate(sampleRate))
	out, err := g.Sine(freqHz, amplitude, samples)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	return out
}

func peakBin(spec []float64) int {
	best := 0
	for i, v := range spec {
		if v > spec[best] {
			best = i
		}
	}

	return best
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"non power of two window", []Option{WithWindowLength(1000)}},
		{"window too short", []Option{WithWindowLength(2)}},
		{"zero hop", []Option{WithHopLength(0)}},
		{"hop past window", []Option{WithWindowLength(256), WithHopLength(512)}},
		{"zero sample rate", []Option{WithSampleRate(0)}},
		{"negative smoothing", []Option{WithTimeSmoothing(-1)}},
		{"infinite gain", []Option{WithInputGain(math.Inf(1))}},
		{"negative octave fraction", []Option{WithOctaveFraction(-0.5)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNotReadyBeforeFirstBlock(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if a.IsReady() {
		t.Error("fresh analyzer should not be ready")
	}
	if got := a.ReadSpectrum(); got != nil {
		t.Errorf("ReadSpectrum before ready = %v, want nil", got)
	}
	smoothed, err := a.ReadSmoothedSpectrum()
	if err != nil {
		t.Fatalf("ReadSmoothedSpectrum: %v", err)
	}
	if smoothed != nil {
		t.Errorf("ReadSmoothedSpectrum before ready = %v, want nil", smoothed)
	}
}

func TestSinePeakAt440Hz(t *testing.T) {
	const (
		sampleRate = 44100.0
		n          = 1024
		hop        = 256
		freq       = 440.0
	)

	a, err := New(
		WithSampleRate(sampleRate),
		WithWindowLength(n),
		WithHopLength(hop),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// One full window plus one hop so the final analysis covers pure sine
	// and has a whole hop of Advance calls to finish.
	input := sine(t, sampleRate, freq, 1, n+hop)
	if err := a.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !a.IsReady() {
		t.Fatal("analyzer should be ready after a full window plus a hop")
	}

	spec := a.ReadSpectrum()
	if len(spec) != n/2+1 {
		t.Fatalf("spectrum length = %d, want %d", len(spec), n/2+1)
	}

	peak := peakBin(spec)
	wantBin := freq * n / sampleRate // ~10.2
	if math.Abs(float64(peak)-wantBin) > 1 {
		t.Errorf("peak at bin %d (%.1f Hz), want within one bin of %.1f",
			peak, a.BinFrequency(peak), wantBin)
	}
	if spec[peak] < 0.5 {
		t.Errorf("peak magnitude %g unexpectedly low", spec[peak])
	}
}

func TestManualDriveMatchesProcess(t *testing.T) {
	const (
		sampleRate = 48000.0
		n          = 256
		hop        = 64
	)

	input := sine(t, sampleRate, 1000, 0.8, n+hop)

	auto, err := New(WithSampleRate(sampleRate), WithWindowLength(n), WithHopLength(hop))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := auto.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}

	manual, err := New(WithSampleRate(sampleRate), WithWindowLength(n), WithHopLength(hop))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sinceHop := 0
	for _, v := range input {
		manual.PushSample(v)
		sinceHop++
		if sinceHop >= hop {
			sinceHop = 0
			if err := manual.OnHopBoundary(); err != nil {
				t.Fatalf("OnHopBoundary: %v", err)
			}
		}
		manual.Advance()
	}

	got := manual.ReadSpectrum()
	want := auto.ReadSpectrum()
	if got == nil || want == nil {
		t.Fatal("both analyzers should be ready")
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bin %d: manual %g differs from Process %g", i, got[i], want[i])
		}
	}
}

func TestZeroInputYieldsZeroSpectrum(t *testing.T) {
	a, err := New(WithWindowLength(128), WithHopLength(32))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.Process(make([]float64, 256)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !a.IsReady() {
		t.Fatal("analyzer should be ready")
	}

	for i, v := range a.ReadSpectrum() {
		if v != 0 {
			t.Fatalf("bin %d = %g, want 0", i, v)
		}
	}
}

func TestRunGateHoldsAnalysis(t *testing.T) {
	a, err := New(WithWindowLength(128), WithHopLength(32), WithRunning(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := sine(t, 44100, 440, 1, 512)
	if err := a.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if a.IsReady() {
		t.Error("stopped analyzer should not produce spectra")
	}

	a.SetRunning(true)
	if err := a.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !a.IsReady() {
		t.Error("restarted analyzer should produce spectra")
	}
}

func TestResizeAnalysis(t *testing.T) {
	a, err := New(WithWindowLength(256), WithHopLength(64))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Process(sine(t, 44100, 440, 1, 512)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !a.IsReady() {
		t.Fatal("analyzer should be ready before resize")
	}

	if err := a.ResizeAnalysis(100); err == nil {
		t.Error("non-power-of-two resize: expected error")
	}
	if a.WindowLength() != 256 || !a.IsReady() {
		t.Error("failed resize must leave state intact")
	}

	if err := a.ResizeAnalysis(512); err != nil {
		t.Fatalf("ResizeAnalysis: %v", err)
	}
	if a.WindowLength() != 512 {
		t.Errorf("WindowLength = %d, want 512", a.WindowLength())
	}
	if a.IsReady() {
		t.Error("resize must invalidate the captured spectrum")
	}
	if a.Bins() != 257 {
		t.Errorf("Bins = %d, want 257", a.Bins())
	}

	if err := a.Process(sine(t, 44100, 440, 1, 1024)); err != nil {
		t.Fatalf("Process after resize: %v", err)
	}
	if !a.IsReady() {
		t.Error("analyzer should recover after resize")
	}
}

func TestResizeClampsHop(t *testing.T) {
	a, err := New(WithWindowLength(1024), WithHopLength(512))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.ResizeAnalysis(256); err != nil {
		t.Fatalf("ResizeAnalysis: %v", err)
	}
	if got := a.HopLength(); got != 256 {
		t.Errorf("HopLength = %d, want clamped to 256", got)
	}
}

func TestSmoothedSpectrumIdentityAtZeroFraction(t *testing.T) {
	a, err := New(WithWindowLength(256), WithHopLength(64))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Process(sine(t, 44100, 2000, 1, 512)); err != nil {
		t.Fatalf("Process: %v", err)
	}

	raw := a.ReadSpectrum()
	smoothed, err := a.ReadSmoothedSpectrum()
	if err != nil {
		t.Fatalf("ReadSmoothedSpectrum: %v", err)
	}

	for i := range raw {
		if smoothed[i] != raw[i] {
			t.Fatalf("bin %d: smoothed %g differs from raw %g at zero fraction", i, smoothed[i], raw[i])
		}
	}
}

func TestSmoothedSpectrumSpreadsPeak(t *testing.T) {
	a, err := New(WithWindowLength(1024), WithHopLength(256))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Process(sine(t, 44100, 2000, 1, 1280)); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if err := a.SetSmoothing(1); err != nil {
		t.Fatalf("SetSmoothing: %v", err)
	}
	raw := a.ReadSpectrum()
	smoothed, err := a.ReadSmoothedSpectrum()
	if err != nil {
		t.Fatalf("ReadSmoothedSpectrum: %v", err)
	}

	rp, sp := peakBin(raw), peakBin(smoothed)
	if smoothed[sp] >= raw[rp] {
		t.Errorf("octave smoothing should flatten the peak: %g >= %g", smoothed[sp], raw[rp])
	}
}

func TestFrequencyBoundsZeroOutOfRange(t *testing.T) {
	a, err := New(
		WithWindowLength(256),
		WithHopLength(64),
		WithSampleRate(44100),
		WithFrequencyBounds(500, 5000),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Process(sine(t, 44100, 2000, 1, 512)); err != nil {
		t.Fatalf("Process: %v", err)
	}

	smoothed, err := a.ReadSmoothedSpectrum()
	if err != nil {
		t.Fatalf("ReadSmoothedSpectrum: %v", err)
	}

	for i, v := range smoothed {
		f := a.BinFrequency(i)
		if (f < 500 || f > 5000) && v != 0 {
			t.Fatalf("bin %d (%g Hz) = %g, want 0 outside bounds", i, f, v)
		}
	}
	if smoothed[peakBin(smoothed)] == 0 {
		t.Error("in-band peak should survive bounds clipping")
	}
}

func TestTimeSmoothingDecaysAfterSilence(t *testing.T) {
	const (
		n   = 256
		hop = 64
	)

	a, err := New(
		WithWindowLength(n),
		WithHopLength(hop),
		WithTimeSmoothing(1),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.Process(sine(t, 44100, 2000, 1, 4*n)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	before := a.ReadSpectrum()
	peak := peakBin(before)

	if err := a.Process(make([]float64, 2*n)); err != nil {
		t.Fatalf("Process silence: %v", err)
	}
	after := a.ReadSpectrum()

	if after[peak] >= before[peak] {
		t.Errorf("peak should decay after silence: %g >= %g", after[peak], before[peak])
	}
	if after[peak] == 0 {
		t.Error("time smoothing should hold residual energy after two windows of silence")
	}
}

func TestInputGainScalesSpectrum(t *testing.T) {
	input := sine(t, 44100, 1000, 0.25, 512)

	unity, err := New(WithWindowLength(256), WithHopLength(64))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := unity.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}

	doubled, err := New(WithWindowLength(256), WithHopLength(64), WithInputGain(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := doubled.Process(input); err != nil {
		t.Fatalf("Process: %v", err)
	}

	u := unity.ReadSpectrum()
	d := doubled.ReadSpectrum()
	peak := peakBin(u)
	if math.Abs(d[peak]-2*u[peak]) > 1e-9 {
		t.Errorf("gain 2 peak = %g, want %g", d[peak], 2*u[peak])
	}
}

func TestWindowFunctionOption(t *testing.T) {
	a, err := New(
		WithWindowLength(256),
		WithHopLength(64),
		WithWindowFunction(window.BlackmanHarris),
		WithSymmetricWindow(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Process(sine(t, 44100, 2000, 1, 512)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !a.IsReady() {
		t.Error("analyzer should be ready with a Blackman-Harris window")
	}
}
