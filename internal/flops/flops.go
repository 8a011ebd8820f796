// Package flops provides the process-wide flop-counter hook. Only
// sparse's matvecs report into it. Counting is a single atomic add rather than
// thread-local counters with a reduction.
package flops

import "sync/atomic"

var counter atomic.Int64

// Add accumulates n floating point operations into the process-wide counter.
func Add(n int64) {
	counter.Add(n)
}

// Count returns the current accumulated flop count.
func Count() int64 {
	return counter.Load()
}

// Reset zeroes the counter. Intended for test isolation.
func Reset() {
	counter.Store(0)
}

// SpMV returns the flop count for a sparse matrix-vector product with
// the given nnz and dimension n: (2*nnz-n), times 4 for complex
// scalars.
func SpMV(nnz, n int, complexScalar bool) int64 {
	base := int64(2*nnz - n)
	if complexScalar {
		return 4 * base
	}
	return base
}
