package spectrum

import "math"

// OctaveSmoother averages magnitude bins over fractional-octave bands. The
// band around a bin at frequency f spans [f/2^(fraction/2), f*2^(fraction/2)];
// bands reaching past Nyquist are shifted down so the band width in octaves
// is preserved. A fraction of zero leaves the spectrum untouched.
//
// The input is expected to hold the non-redundant half spectrum of a real
// transform: bins 0 through N/2 inclusive, so N is inferred from the slice
// length. Prefix sums make each band average O(1), and the prefix buffer is
// retained across calls.
type OctaveSmoother struct {
	prefix     []float64
	sampleRate float64
	fraction   float64
	minFreq    float64
	maxFreq    float64
}

// NewOctaveSmoother returns a smoother for the given fraction in octaves
// (1 is a full octave, 1/3 a third-octave) at the given sample rate.
func NewOctaveSmoother(fraction, sampleRate float64) (*OctaveSmoother, error) {
	s := &OctaveSmoother{maxFreq: math.Inf(1)}
	if err := s.Configure(fraction, sampleRate); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure updates the band width and sample rate. fraction must be >= 0
// and sampleRate > 0.
func (s *OctaveSmoother) Configure(fraction, sampleRate float64) error {
	if fraction < 0 || math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return errFraction(fraction)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return errSampleRate(sampleRate)
	}

	s.fraction = fraction
	s.sampleRate = sampleRate

	return nil
}

// SetBounds restricts the output to bins whose center frequency lies in
// [minHz, maxHz]; bins outside the range are zeroed. Bounds default to the
// full spectrum.
func (s *OctaveSmoother) SetBounds(minHz, maxHz float64) error {
	if minHz < 0 || maxHz < minHz || math.IsNaN(minHz) || math.IsNaN(maxHz) {
		return errBounds(minHz, maxHz)
	}

	s.minFreq = minHz
	s.maxFreq = maxHz

	return nil
}

// Fraction returns the configured band width in octaves.
func (s *OctaveSmoother) Fraction() float64 {
	return s.fraction
}

// Smooth writes the band-averaged spectrum of src into dst. Both slices must
// have the same length of at least 2 bins; dst and src may alias only when
// the fraction is zero.
func (s *OctaveSmoother) Smooth(dst, src []float64) error {
	if len(src) < 2 {
		return errTooShort(len(src))
	}
	if len(dst) != len(src) {
		return errLengthMismatch(len(dst), len(src))
	}

	bins := len(src)
	n := 2 * (bins - 1)
	binWidth := s.sampleRate / float64(n)
	nyquist := s.sampleRate / 2

	if s.fraction == 0 {
		copy(dst, src)
		s.applyBounds(dst, binWidth)
		return nil
	}

	if cap(s.prefix) >= bins+1 {
		s.prefix = s.prefix[:bins+1]
	} else {
		s.prefix = make([]float64, bins+1)
	}
	s.prefix[0] = 0
	for i, v := range src {
		s.prefix[i+1] = s.prefix[i] + v
	}

	halfBand := math.Pow(2, s.fraction/2)
	band := halfBand * halfBand

	for i := range dst {
		f := float64(i) * binWidth
		fHigh := f * halfBand
		fLow := f / halfBand
		if fHigh > nyquist {
			fHigh = nyquist
			fLow = fHigh / band
		}

		lo := int(math.Ceil(fLow / binWidth))
		hi := int(math.Floor(fHigh / binWidth))
		if lo < 0 {
			lo = 0
		}
		if hi > bins-1 {
			hi = bins - 1
		}
		if hi < lo {
			dst[i] = src[i]
			continue
		}

		dst[i] = (s.prefix[hi+1] - s.prefix[lo]) / float64(hi-lo+1)
	}

	s.applyBounds(dst, binWidth)

	return nil
}

// applyBounds zeroes bins outside [minFreq, maxFreq]. A non-positive upper
// bound means unbounded, so a zero-value smoother passes everything through.
func (s *OctaveSmoother) applyBounds(dst []float64, binWidth float64) {
	unboundedAbove := s.maxFreq <= 0 || math.IsInf(s.maxFreq, 1)
	if s.minFreq <= 0 && unboundedAbove {
		return
	}

	for i := range dst {
		f := float64(i) * binWidth
		if f < s.minFreq || (!unboundedAbove && f > s.maxFreq) {
			dst[i] = 0
		}
	}
}

// SmoothOctave is a convenience wrapper that allocates a smoother and the
// output slice for one-off use.
func SmoothOctave(src []float64, fraction, sampleRate float64) ([]float64, error) {
	s, err := NewOctaveSmoother(fraction, sampleRate)
	if err != nil {
		return nil, err
	}

	dst := make([]float64, len(src))
	if err := s.Smooth(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}
