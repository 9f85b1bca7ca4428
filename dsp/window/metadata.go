package window

// CoherentGain returns the DC-normalized average amplitude of the window,
// used to compensate the pass-band attenuation introduced by windowing
// (apply as w[n] / CoherentGain).
func CoherentGain(f Function) (float64, error) {
	switch f {
	case Boxcar:
		return 1.000000, nil
	case Bartlett:
		return 0.500000, nil
	case BartlettHann:
		return 0.500000, nil
	case Parzen:
		return 0.375000, nil
	case Welch:
		return 0.667317, nil
	case Cosine:
		return 0.637240, nil
	case Bohman:
		return 0.405285, nil
	case Lanczos:
		return 0.589490, nil
	case Hann:
		return 0.500000, nil
	case Hamming:
		return 0.540000, nil
	case Blackman:
		return 0.420000, nil
	case BlackmanHarris:
		return 0.358750, nil
	case BlackmanNuttall:
		return 0.363582, nil
	case KaiserBessel:
		return 0.402000, nil
	case FlatTop:
		return 0.215579, nil
	default:
		return 0, errUnsupported(f)
	}
}

// SideLobeLevel returns the highest side-lobe amplitude relative to the
// main lobe, in decibels.
func SideLobeLevel(f Function) (float64, error) {
	switch f {
	case Boxcar:
		return -13.2, nil
	case Bartlett:
		return -26.4, nil
	case BartlettHann:
		return -35.7, nil
	case Parzen:
		return -53.0, nil
	case Welch:
		return -21.2, nil
	case Cosine:
		return -22.8, nil
	case Bohman:
		return -46.0, nil
	case Lanczos:
		return -26.3, nil
	case Hann:
		return -31.5, nil
	case Hamming:
		return -41.7, nil
	case Blackman:
		return -58.1, nil
	case BlackmanHarris:
		return -91.8, nil
	case BlackmanNuttall:
		return -88.7, nil
	case KaiserBessel:
		return -65.4, nil
	case FlatTop:
		return -83.0, nil
	default:
		return 0, errUnsupported(f)
	}
}

// StopbandAttenuation returns the stop-band attenuation achieved when the
// window is used for FIR design, in decibels.
func StopbandAttenuation(f Function) (float64, error) {
	switch f {
	case Boxcar:
		return -21, nil
	case Bartlett:
		return -25, nil
	case BartlettHann:
		return -42, nil
	case Parzen:
		return -31, nil
	case Welch:
		return -31, nil
	case Cosine:
		return -33, nil
	case Bohman:
		return -28, nil
	case Lanczos:
		return -28, nil
	case Hann:
		return -44, nil
	case Hamming:
		return -53, nil
	case Blackman:
		return -74, nil
	case BlackmanHarris:
		return -92, nil
	case BlackmanNuttall:
		return -93, nil
	case KaiserBessel:
		return -60, nil
	case FlatTop:
		return -99, nil
	default:
		return 0, errUnsupported(f)
	}
}

// TransitionWidth returns the normalized transition band width of an
// n-coefficient window.
func TransitionWidth(f Function, n int) (float64, error) {
	if n <= 0 {
		return 0, errLength(n)
	}

	var w float64
	switch f {
	case Boxcar:
		w = 0.9
	case Bartlett:
		w = 1.8
	case BartlettHann:
		w = 3.2
	case Parzen:
		w = 4.0
	case Welch:
		w = 3.3
	case Cosine:
		w = 3.1
	case Bohman:
		w = 3.3
	case Lanczos:
		w = 3.3
	case Hann:
		w = 3.1
	case Hamming:
		w = 3.3
	case Blackman:
		w = 5.5
	case BlackmanHarris:
		w = 6.3
	case BlackmanNuttall:
		w = 6.4
	case KaiserBessel:
		w = 3.6
	case FlatTop:
		w = 7.5
	default:
		return 0, errUnsupported(f)
	}

	return w / float64(n), nil
}
