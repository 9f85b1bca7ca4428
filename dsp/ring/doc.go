// Package ring provides fixed-capacity circular sample buffers for
// streaming analysis. Window is the analysis buffer: it mirrors every
// insert into a double-length backing store so the most recent N samples
// are always available as one chronologically ordered slice without any
// per-insert data movement. Buffer is the plain single-copy variant for
// callers that only need relative indexing.
package ring
