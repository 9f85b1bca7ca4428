package analyzer

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/ring"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Analyzer is a streaming spectrum analyzer. It owns a rolling window over
// the most recent N samples, re-analyzes every hop-length samples, and
// spreads the transform across the hop so no single sample pays the full
// O(N log N) cost.
//
// All methods must be called from a single goroutine.
type Analyzer struct {
	cfg config

	buffer   *ring.Window
	window   *window.Table
	engine   *fft.RealOnTheFly
	smoother *spectrum.OctaveSmoother

	// magnitude holds the time-smoothed amplitude spectrum captured when
	// the last transform completed; scratch holds the raw extraction.
	magnitude []float64
	scratch   []float64
	smoothed  []float64

	alpha       float64
	sinceHop    int
	ready       bool
	everCapture bool
}

// New returns an analyzer configured by opts.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate <= 0 || math.IsNaN(cfg.sampleRate) || math.IsInf(cfg.sampleRate, 0) {
		return nil, errSampleRate(cfg.sampleRate)
	}
	if !core.IsPowerOfTwo(cfg.windowLen) || cfg.windowLen < 4 {
		return nil, errWindowLength(cfg.windowLen)
	}
	if cfg.hopLen < 1 || cfg.hopLen > cfg.windowLen {
		return nil, errHopLength(cfg.hopLen, cfg.windowLen)
	}
	if cfg.smoothingTime < 0 || math.IsNaN(cfg.smoothingTime) {
		return nil, errSmoothingTime(cfg.smoothingTime)
	}
	if math.IsNaN(cfg.inputGain) || math.IsInf(cfg.inputGain, 0) {
		return nil, errInputGain(cfg.inputGain)
	}

	buffer, err := ring.NewWindow(cfg.windowLen)
	if err != nil {
		return nil, err
	}
	table, err := window.NewTable(cfg.function, cfg.windowLen, !cfg.periodic, cfg.gained)
	if err != nil {
		return nil, err
	}
	engine, err := fft.NewRealOnTheFly(cfg.windowLen)
	if err != nil {
		return nil, err
	}
	smoother, err := spectrum.NewOctaveSmoother(cfg.octaveFraction, cfg.sampleRate)
	if err != nil {
		return nil, err
	}
	if cfg.minFreq != 0 || cfg.maxFreq != 0 {
		if err := smoother.SetBounds(cfg.minFreq, cfg.maxFreq); err != nil {
			return nil, err
		}
	}

	a := &Analyzer{
		cfg:      cfg,
		buffer:   buffer,
		window:   table,
		engine:   engine,
		smoother: smoother,
	}
	a.allocateSpectra()
	a.updateAlpha()

	return a, nil
}

// Bins returns the number of non-redundant spectrum bins, N/2+1.
func (a *Analyzer) Bins() int {
	return a.cfg.windowLen/2 + 1
}

// WindowLength returns the analysis length N.
func (a *Analyzer) WindowLength() int {
	return a.cfg.windowLen
}

// HopLength returns the number of samples between successive analyses.
func (a *Analyzer) HopLength() int {
	return a.cfg.hopLen
}

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 {
	return a.cfg.sampleRate
}

// BinFrequency returns the center frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.cfg.sampleRate / float64(a.cfg.windowLen)
}

// ResizeAnalysis reconfigures the buffer, window table, and transform for a
// new analysis length. n must be a power of two of at least 4; on error the
// previous configuration stays intact. Any spectrum in flight is discarded
// and the analyzer reports not ready until a new block completes.
func (a *Analyzer) ResizeAnalysis(n int) error {
	if !core.IsPowerOfTwo(n) || n < 4 {
		return errWindowLength(n)
	}

	if err := a.window.Set(a.cfg.function, n, !a.cfg.periodic, a.cfg.gained); err != nil {
		return err
	}
	if err := a.buffer.Resize(n); err != nil {
		return err
	}
	if err := a.engine.Resize(n); err != nil {
		return err
	}

	a.cfg.windowLen = n
	if a.cfg.hopLen > n {
		a.cfg.hopLen = n
	}
	a.allocateSpectra()
	a.updateAlpha()
	a.sinceHop = 0
	a.ready = false
	a.everCapture = false

	return nil
}

// PushSample feeds one sample into the rolling window, scaled by the input
// gain.
func (a *Analyzer) PushSample(value float64) {
	a.buffer.Insert(value * a.cfg.inputGain)
}

// OnHopBoundary loads the current window contents into the transform and
// restarts the amortized schedule, discarding any computation in flight.
func (a *Analyzer) OnHopBoundary() error {
	return a.engine.Buffer(a.buffer.Contiguous(), a.window.Coefficients())
}

// Advance performs one sample's worth of transform work. When the call
// completes the block, the magnitude spectrum is captured and IsReady
// begins reporting true. Advancing a completed transform is a no-op.
func (a *Analyzer) Advance() {
	if a.engine.Done() {
		return
	}

	a.engine.StepHop(a.cfg.hopLen)
	if a.engine.Done() {
		a.capture()
	}
}

// IsReady reports whether a completed spectrum is available to read.
func (a *Analyzer) IsReady() bool {
	return a.ready
}

// ReadSpectrum returns a snapshot copy of the most recent amplitude
// spectrum over bins 0..N/2, or nil when no spectrum has completed yet.
func (a *Analyzer) ReadSpectrum() []float64 {
	if !a.ready {
		return nil
	}

	out := make([]float64, len(a.magnitude))
	copy(out, a.magnitude)
	return out
}

// SetSmoothing changes the fractional-octave band width used by
// ReadSmoothedSpectrum. A fraction of zero disables band averaging.
func (a *Analyzer) SetSmoothing(fraction float64) error {
	if err := a.smoother.Configure(fraction, a.cfg.sampleRate); err != nil {
		return err
	}

	a.cfg.octaveFraction = fraction
	return nil
}

// ReadSmoothedSpectrum returns a snapshot of the most recent spectrum after
// fractional-octave smoothing and frequency-bound clipping, or nil when no
// spectrum has completed yet.
func (a *Analyzer) ReadSmoothedSpectrum() ([]float64, error) {
	if !a.ready {
		return nil, nil
	}

	if err := a.smoother.Smooth(a.smoothed, a.magnitude); err != nil {
		return nil, err
	}

	out := make([]float64, len(a.smoothed))
	copy(out, a.smoothed)
	return out, nil
}

// SetFrequencyBounds restricts the smoothed spectrum to [minHz, maxHz].
func (a *Analyzer) SetFrequencyBounds(minHz, maxHz float64) error {
	if err := a.smoother.SetBounds(minHz, maxHz); err != nil {
		return err
	}

	a.cfg.minFreq = minHz
	a.cfg.maxFreq = maxHz
	return nil
}

// SetTimeSmoothing changes the exponential release time in seconds applied
// across successive spectra. Zero disables time smoothing.
func (a *Analyzer) SetTimeSmoothing(seconds float64) error {
	if seconds < 0 || math.IsNaN(seconds) {
		return errSmoothingTime(seconds)
	}

	a.cfg.smoothingTime = seconds
	a.updateAlpha()
	return nil
}

// SetInputGain changes the linear gain applied to incoming samples.
func (a *Analyzer) SetInputGain(gain float64) error {
	if math.IsNaN(gain) || math.IsInf(gain, 0) {
		return errInputGain(gain)
	}

	a.cfg.inputGain = gain
	return nil
}

// SetRunning opens or closes the run gate consulted by Process. Samples
// pushed while stopped still enter the rolling window, but no new analyses
// are started.
func (a *Analyzer) SetRunning(running bool) {
	a.cfg.running = running
}

// Running reports the run gate state.
func (a *Analyzer) Running() bool {
	return a.cfg.running
}

// Process streams a block through the analyzer: each sample is pushed,
// a new analysis starts whenever hop-length samples have accumulated, and
// one Advance runs per sample. While the run gate is closed, samples still
// fill the window but the hop clock and transform are held.
func (a *Analyzer) Process(block []float64) error {
	for _, v := range block {
		a.PushSample(v)
		if !a.cfg.running {
			continue
		}

		a.sinceHop++
		if a.sinceHop >= a.cfg.hopLen {
			a.sinceHop = 0
			if err := a.OnHopBoundary(); err != nil {
				return err
			}
		}
		a.Advance()
	}

	return nil
}

// capture turns the finished coefficients into the amplitude spectrum and
// folds it into the time-smoothed state.
func (a *Analyzer) capture() {
	bins := a.Bins()
	n := a.cfg.windowLen

	spectrum.MagnitudeInto(a.scratch, a.engine.Coefficients()[:bins])

	// Single-sided amplitude: interior bins carry their mirrored twins.
	scale := 2 / float64(n)
	a.scratch[0] = a.scratch[0] / float64(n)
	a.scratch[bins-1] = a.scratch[bins-1] / float64(n)
	for k := 1; k < bins-1; k++ {
		a.scratch[k] *= scale
	}

	if a.alpha == 0 || !a.everCapture {
		copy(a.magnitude, a.scratch)
	} else {
		for i, v := range a.scratch {
			a.magnitude[i] = a.alpha*a.magnitude[i] + (1-a.alpha)*v
		}
	}

	a.ready = true
	a.everCapture = true
}

func (a *Analyzer) allocateSpectra() {
	bins := a.Bins()
	a.magnitude = core.EnsureLen(a.magnitude, bins)
	a.scratch = core.EnsureLen(a.scratch, bins)
	a.smoothed = core.EnsureLen(a.smoothed, bins)
	core.Zero(a.magnitude)
	core.Zero(a.scratch)
	core.Zero(a.smoothed)
}

// updateAlpha derives the per-hop exponential coefficient from the release
// time: the smoothed spectrum decays by roughly 10 time constants over the
// configured window.
func (a *Analyzer) updateAlpha() {
	if a.cfg.smoothingTime <= 0 {
		a.alpha = 0
		return
	}

	hopTime := float64(a.cfg.hopLen) / a.cfg.sampleRate
	a.alpha = math.Exp(-10 * hopTime / a.cfg.smoothingTime)
}
