// Package fft implements a radix-2 Cooley-Tukey transform whose butterfly
// schedule can be executed incrementally. OnTheFly accepts a windowed block
// once per hop and then performs a bounded number of butterflies per call,
// so the O(N log N) cost is amortized across the samples of a hop instead
// of spiking at the hop boundary. RealOnTheFly halves the work for
// real-valued input by packing sample pairs into complex slots and
// reconstructing the full spectrum from Hermitian symmetry. The one-shot
// Transform and Inverse entry points drive the same iterative butterfly
// code to completion.
package fft
