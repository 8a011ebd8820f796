// Package sparse implements SparseStore: the compressed-sparse-row
// representation, its structural invariants, and the operations
// (spmv, scaling, column permutation, residual, Matrix Market and
// binary I/O) that validate and mutate it.
package sparse

import (
	"math"
	"math/cmplx"
)

// Scalar is the numeric value type a Store can hold.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Index is the row/column index width, 32 or 64 bit. The binary file
// format tags the width, so a reader must be instantiated to match.
type Index interface {
	~int32 | ~int64
}

// abs returns the magnitude of a scalar as a float64, dispatching on the
// concrete type since Go's operator set does not give complex types an
// ordering.
func abs[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		panic("sparse: unsupported scalar kind")
	}
}

func isComplex[S Scalar]() bool {
	var z S
	switch any(z).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// scalarTag returns the binary-format scalar-kind byte for S: 's', 'd',
// 'c' or 'z'.
func scalarTag[S Scalar]() byte {
	var z S
	switch any(z).(type) {
	case float32:
		return 's'
	case float64:
		return 'd'
	case complex64:
		return 'c'
	case complex128:
		return 'z'
	default:
		panic("sparse: unsupported scalar kind")
	}
}

// indexWidthBytes returns the binary-format index-width byte ('4' or
// '8') for I.
func indexWidthBytes[I Index]() byte {
	var z I
	switch any(z).(type) {
	case int32:
		return '4'
	case int64:
		return '8'
	default:
		panic("sparse: unsupported index width")
	}
}
