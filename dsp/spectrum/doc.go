// Package spectrum converts complex transform coefficients into real-valued
// magnitude and power spectra and smooths them over fractional-octave bands.
//
// Magnitude extraction uses SIMD-accelerated kernels from algo-vecmath with
// pooled scratch buffers, so steady-state use allocates nothing beyond the
// caller's output slice. OctaveSmoother averages each bin over a constant-Q
// band around its center frequency using prefix sums, keeping the whole pass
// linear in the number of bins.
package spectrum
