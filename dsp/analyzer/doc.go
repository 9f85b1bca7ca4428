// Package analyzer wires the rolling sample buffer, window table,
// incremental real transform, and octave smoother into a streaming
// spectrum analyzer driven one sample at a time.
//
// The intended call pattern mirrors an audio callback: PushSample once per
// sample, OnHopBoundary every hop-length samples to load the next block,
// and Advance once per sample to spread the transform work across the hop.
// Renderers poll IsReady and read snapshot copies via ReadSpectrum or
// ReadSmoothedSpectrum; the live coefficient state is never handed out.
// Process bundles the whole pattern for block-based callers.
//
// All work is single-threaded and allocation-free in steady state;
// allocation happens only in New, ResizeAnalysis, and the Read methods,
// which return fresh snapshots.
package analyzer
