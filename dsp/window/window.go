package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Function identifies a window function.
type Function int

const (
	Boxcar Function = iota
	Bartlett
	BartlettHann
	Parzen
	Welch
	Cosine
	Bohman
	Lanczos
	Hann
	Hamming
	Blackman
	BlackmanHarris
	BlackmanNuttall
	KaiserBessel
	FlatTop
	numFunctions
)

// String returns the canonical window name.
func (f Function) String() string {
	if f < 0 || f >= numFunctions {
		return "Unknown"
	}
	return functionNames[f]
}

var functionNames = []string{
	"Boxcar",
	"Bartlett",
	"BartlettHann",
	"Parzen",
	"Welch",
	"Cosine",
	"Bohman",
	"Lanczos",
	"Hann",
	"Hamming",
	"Blackman",
	"BlackmanHarris",
	"BlackmanNuttall",
	"KaiserBessel",
	"FlatTop",
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
	gained   bool
}

// WithPeriodic selects the periodic form (DFT framing) instead of the
// symmetric form used for filter design.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithCoherentGainNormalization divides each coefficient by the window's
// coherent gain to compensate pass-band attenuation.
func WithCoherentGainNormalization() Option {
	return func(c *config) {
		c.gained = true
	}
}

// At evaluates one coefficient of the selected window using its closed-form
// formula. n is the coefficient index, length the window length. The
// symmetric form uses length-1 as the formula denominator, the periodic
// form uses length.
func At(f Function, n, length int, symmetric bool) (float64, error) {
	if length <= 0 {
		return 0, errLength(length)
	}
	if f < 0 || f >= numFunctions {
		return 0, errUnsupported(f)
	}

	x := float64(n)
	den := float64(length)
	if symmetric {
		den--
	}
	if den <= 0 {
		// Single-sample symmetric window degenerates to unity.
		return 1, nil
	}

	switch f {
	case Boxcar:
		return 1, nil
	case Bartlett:
		return (2 / den) * (den/2 - math.Abs(x-den/2)), nil
	case BartlettHann:
		return 0.62 - 0.48*math.Abs(x/den-0.5) - 0.38*math.Cos(2*math.Pi*x/den), nil
	case Parzen:
		return parzenAt(x, den), nil
	case Welch:
		return welchAt(x, float64(length), symmetric), nil
	case Cosine:
		return cosineAt(x, float64(length), symmetric), nil
	case Bohman:
		return bohmanAt(x, den), nil
	case Lanczos:
		return lanczosAt(x, den), nil
	case Hann:
		return cosineSum(x, den, hannCoeffs), nil
	case Hamming:
		return cosineSum(x, den, hammingCoeffs), nil
	case Blackman:
		return cosineSum(x, den, blackmanCoeffs), nil
	case BlackmanHarris:
		return cosineSum(x, den, blackmanHarrisCoeffs), nil
	case BlackmanNuttall:
		return cosineSum(x, den, blackmanNuttallCoeffs), nil
	case KaiserBessel:
		return cosineSum(x, den, kaiserBesselCoeffs), nil
	case FlatTop:
		return cosineSum(x, den, flatTopCoeffs), nil
	default:
		return 0, errUnsupported(f)
	}
}

// Generate returns window coefficients of the given length.
func Generate(f Function, length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, errLength(length)
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	gain := 1.0
	if cfg.gained {
		cg, err := CoherentGain(f)
		if err != nil {
			return nil, err
		}
		gain = 1 / cg
	}

	out := make([]float64, length)
	for n := range out {
		v, err := At(f, n, length, !cfg.periodic)
		if err != nil {
			return nil, err
		}
		out[n] = gain * v
	}

	return out, nil
}

// Apply multiplies samples with coefficients and returns a new slice.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// Cosine-sum coefficient tables. Term k is weighted by cos(2*pi*k*n/den)
// with alternating sign folded into the constants.
var (
	hannCoeffs            = []float64{0.50, -0.50}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.50, 0.08}
	blackmanHarrisCoeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	blackmanNuttallCoeffs = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	kaiserBesselCoeffs    = []float64{0.402, -0.498, 0.098, -0.001}
	flatTopCoeffs         = []float64{0.21557895, -0.416631580, 0.277263158, -0.083578947, 0.006947368}
)

func cosineSum(x, den float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x / den

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func parzenAt(x, den float64) float64 {
	// Shift and scale the domain from [0, den] to [-1, 1].
	r := 2*x/den - 1
	a := math.Abs(r)
	if a >= 0.5 {
		d := 1 - a
		return 2 * d * d * d
	}
	return 1 - 6*r*r + 6*a*a*a
}

func welchAt(x, length float64, symmetric bool) float64 {
	s := 0.0
	if symmetric {
		s = 1
	}
	r := (x - (length-1-s)/2) / ((length + 1 - s) / 2)
	return 1 - r*r
}

func cosineAt(x, length float64, symmetric bool) float64 {
	den := length
	if !symmetric {
		den++
	}
	return math.Sin(math.Pi * (x + 0.5) / den)
}

func bohmanAt(x, den float64) float64 {
	r := math.Abs(2*x/den - 1)
	return (1-r)*math.Cos(math.Pi*r) + math.Sin(math.Pi*r)/math.Pi
}

func lanczosAt(x, den float64) float64 {
	if x == math.Floor(den/2) {
		return 1
	}
	r := math.Pi * (2*x/den - 1)
	if r == 0 {
		return 1
	}
	return math.Sin(r) / r
}
