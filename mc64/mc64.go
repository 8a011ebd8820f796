// Package mc64 adapts a Store to MC64, the weighted-bipartite-matching
// permutation/scaling routine: it repacks CSR into the
// Fortran-1-indexed CSC layout mc64ad expects and calls it through a
// narrow injected Solver, so this module never links against the
// Fortran library directly.
package mc64

import (
	"fmt"
	"math/cmplx"

	"github.com/ajroetker/sparsekernel/sparse"
)

// Solver is the calling contract for mc64ad: job selects the matching
// variant, colPtr/rowInd are 1-indexed CSC (Fortran convention, length
// n+1 and nnz respectively), dval holds the scalar magnitudes MC64
// matches on. It returns a 1-indexed column permutation, the number of
// matched entries, and an info code (0 on success).
type Solver func(job, n, nnz int, colPtr, rowInd []int32, dval []float64) (perm []int32, num int, info int)

// BuildPermutation repacks store's CSR triplet into Fortran-1-indexed
// CSC (building column counts, prefix-summing, and scattering, i.e.
// the transpose of the row-major storage), takes scalar magnitudes (|val|
// for complex, Re(val) for real), calls solver, and returns a 0-indexed
// column permutation together with MC64's match count. A non-zero info
// from solver is surfaced as an error rather than a panic, since it
// reflects a property of the input matrix (e.g. structural
// singularity), not a programmer error.
func BuildPermutation[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], job int, solver Solver) (perm []int, num int, err error) {
	n, nnz := store.N, store.NNZ

	colCount := make([]int32, n+1)
	for k := 0; k < nnz; k++ {
		colCount[int(store.Ind[k])+1]++
	}
	colPtr := make([]int32, n+1)
	for c := 0; c < n; c++ {
		colPtr[c+1] = colPtr[c] + colCount[c+1]
	}

	rowInd := make([]int32, nnz)
	dval := make([]float64, nnz)
	next := make([]int32, n)
	copy(next, colPtr[:n])
	for r := 0; r < n; r++ {
		lo, hi := int(store.Ptr[r]), int(store.Ptr[r+1])
		for k := lo; k < hi; k++ {
			c := int(store.Ind[k])
			dst := next[c]
			rowInd[dst] = int32(r)
			dval[dst] = scalarMagnitude(store.Val[k])
			next[c]++
		}
	}

	for i := range colPtr {
		colPtr[i]++
	}
	for i := range rowInd {
		rowInd[i]++
	}

	rawPerm, matched, info := solver(job, n, nnz, colPtr, rowInd, dval)
	if info != 0 {
		return nil, 0, fmt.Errorf("mc64: solver returned info=%d", info)
	}
	perm = make([]int, len(rawPerm))
	for i, p := range rawPerm {
		perm[i] = int(p) - 1
	}
	return perm, matched, nil
}

// scalarMagnitude returns |val| for complex scalars and Re(val) (i.e.
// val itself) for real scalars, matching MC64's own convention.
func scalarMagnitude[S sparse.Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}
