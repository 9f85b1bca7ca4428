package analyzer

import "github.com/cwbudde/algo-spectral/dsp/window"

type config struct {
	sampleRate     float64
	windowLen      int
	hopLen         int
	function       window.Function
	periodic       bool
	gained         bool
	octaveFraction float64
	smoothingTime  float64
	minFreq        float64
	maxFreq        float64
	inputGain      float64
	running        bool
}

func defaultConfig() config {
	return config{
		sampleRate: 44100,
		windowLen:  1024,
		hopLen:     256,
		function:   window.Hann,
		periodic:   true,
		gained:     true,
		inputGain:  1,
		running:    true,
	}
}

// Option configures an Analyzer at construction time.
type Option func(*config)

// WithSampleRate sets the sample rate in Hz. Default 44100.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) { c.sampleRate = sampleRate }
}

// WithWindowLength sets the analysis length N. Must be a power of two of at
// least 4. Default 1024.
func WithWindowLength(n int) Option {
	return func(c *config) { c.windowLen = n }
}

// WithHopLength sets the number of samples between successive analyses.
// Must be in [1, N]. Default 256.
func WithHopLength(hop int) Option {
	return func(c *config) { c.hopLen = hop }
}

// WithWindowFunction selects the window applied to each block. Default Hann.
func WithWindowFunction(f window.Function) Option {
	return func(c *config) { c.function = f }
}

// WithSymmetricWindow switches from the default periodic window variant to
// the symmetric one.
func WithSymmetricWindow() Option {
	return func(c *config) { c.periodic = false }
}

// WithoutGainNormalization disables coherent-gain correction of the window
// coefficients.
func WithoutGainNormalization() Option {
	return func(c *config) { c.gained = false }
}

// WithOctaveFraction sets the fractional-octave band width used by
// ReadSmoothedSpectrum (1 is a full octave, 1.0/6 a sixth-octave).
// Default 0, which disables band averaging.
func WithOctaveFraction(fraction float64) Option {
	return func(c *config) { c.octaveFraction = fraction }
}

// WithTimeSmoothing sets the exponential release time in seconds applied to
// successive spectra. Default 0, which disables time smoothing.
func WithTimeSmoothing(seconds float64) Option {
	return func(c *config) { c.smoothingTime = seconds }
}

// WithFrequencyBounds restricts the smoothed spectrum to [minHz, maxHz];
// bins outside the range read as zero. Default unbounded.
func WithFrequencyBounds(minHz, maxHz float64) Option {
	return func(c *config) {
		c.minFreq = minHz
		c.maxFreq = maxHz
	}
}

// WithInputGain scales every incoming sample. Default 1.
func WithInputGain(gain float64) Option {
	return func(c *config) { c.inputGain = gain }
}

// WithRunning sets the initial run gate state. Default running.
func WithRunning(running bool) Option {
	return func(c *config) { c.running = running }
}
