package sparse

import (
	"fmt"
	"sort"

	"github.com/ajroetker/sparsekernel/internal/flops"
)

// Store owns a compressed-sparse-row matrix: row pointers, column indices
// and values, plus the symmetric-sparsity flag. A Store exclusively owns
// its arrays; copies are deep (see Clone).
type Store[S Scalar, I Index] struct {
	N                 int
	NNZ               int
	Ptr               []I
	Ind               []I
	Val               []S
	SymmetricSparsity bool
}

// New allocates an empty n-by-n store with room for nnz entries.
func New[S Scalar, I Index](n, nnz int) *Store[S, I] {
	return &Store[S, I]{
		N:   n,
		NNZ: nnz,
		Ptr: make([]I, n+1),
		Ind: make([]I, nnz),
		Val: make([]S, nnz),
	}
}

// Clone returns a deep copy; the clone shares no backing arrays with s.
func (s *Store[S, I]) Clone() *Store[S, I] {
	c := &Store[S, I]{
		N:                 s.N,
		NNZ:               s.NNZ,
		SymmetricSparsity: s.SymmetricSparsity,
		Ptr:               make([]I, len(s.Ptr)),
		Ind:               make([]I, len(s.Ind)),
		Val:               make([]S, len(s.Val)),
	}
	copy(c.Ptr, s.Ptr)
	copy(c.Ind, s.Ind)
	copy(c.Val, s.Val)
	return c
}

// Check validates the structural invariants every Store must satisfy:
// each row's column indices are strictly increasing, every column index
// lies in [0, N), and Ptr is non-decreasing with Ptr[0]=0 and
// Ptr[N]=NNZ.
func (s *Store[S, I]) Check() error {
	if len(s.Ptr) != s.N+1 {
		return fmt.Errorf("sparse: Ptr has length %d, want %d", len(s.Ptr), s.N+1)
	}
	if int(s.Ptr[0]) != 0 {
		return fmt.Errorf("sparse: Ptr[0]=%d, want 0", s.Ptr[0])
	}
	if int(s.Ptr[s.N]) != s.NNZ {
		return fmt.Errorf("sparse: Ptr[N]=%d, want NNZ=%d", s.Ptr[s.N], s.NNZ)
	}
	for r := 0; r < s.N; r++ {
		if s.Ptr[r] > s.Ptr[r+1] {
			return fmt.Errorf("sparse: Ptr not non-decreasing at row %d", r)
		}
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		for k := lo; k < hi; k++ {
			col := int(s.Ind[k])
			if col < 0 || col >= s.N {
				return fmt.Errorf("sparse: row %d entry %d has column %d out of [0,%d)", r, k, col, s.N)
			}
			if k > lo && s.Ind[k] <= s.Ind[k-1] {
				return fmt.Errorf("sparse: row %d columns not strictly increasing at position %d", r, k)
			}
		}
	}
	return nil
}

// SpMV computes y = A*x sequentially.
func (s *Store[S, I]) SpMV(x, y []S) {
	for r := 0; r < s.N; r++ {
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		var acc S
		for k := lo; k < hi; k++ {
			acc += s.Val[k] * x[int(s.Ind[k])]
		}
		y[r] = acc
	}
	flops.Add(flops.SpMV(s.NNZ, s.N, isComplex[S]()))
}

// SpMVParallel is the row-parallel counterpart of SpMV: rows are swept
// in nonzero-balanced strips, one goroutine per strip. workers <= 0
// uses GOMAXPROCS; workers == 1 is the sequential sweep.
func (s *Store[S, I]) SpMVParallel(workers int, x, y []S) {
	parallelRowStrips(s.Ptr, workers, func(start, end int) {
		for r := start; r < end; r++ {
			lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
			var acc S
			for k := lo; k < hi; k++ {
				acc += s.Val[k] * x[int(s.Ind[k])]
			}
			y[r] = acc
		}
	})
	flops.Add(flops.SpMV(s.NNZ, s.N, isComplex[S]()))
}

// ApplyScaling scales in place, Val[k] *= Dr[row(k)] * Dc[Ind[k]],
// parallel over nonzero-balanced row strips. workers <= 0 uses
// GOMAXPROCS; workers == 1 scales sequentially.
func (s *Store[S, I]) ApplyScaling(workers int, Dr, Dc []S) {
	parallelRowStrips(s.Ptr, workers, func(start, end int) {
		for r := start; r < end; r++ {
			lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
			dr := Dr[r]
			for k := lo; k < hi; k++ {
				s.Val[k] = s.Val[k] * dr * Dc[int(s.Ind[k])]
			}
		}
	})
}

// ApplyColumnPermutation replaces each column index with iperm[Ind[k]]
// (iperm being perm's inverse) and re-sorts each row's (Ind,Val) pair
// together to restore the sorted-row invariant.
func (s *Store[S, I]) ApplyColumnPermutation(perm []I) {
	iperm := make([]I, len(perm))
	for i, p := range perm {
		iperm[p] = I(i)
	}
	for r := 0; r < s.N; r++ {
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		row := rowSlice[S, I]{ind: s.Ind[lo:hi], val: s.Val[lo:hi]}
		for k := range row.ind {
			row.ind[k] = iperm[row.ind[k]]
		}
		sort.Sort(row)
	}
}

// rowSlice sorts a row's (Ind,Val) pair together by Ind after
// ApplyColumnPermutation rewrites column indices.
type rowSlice[S Scalar, I Index] struct {
	ind []I
	val []S
}

func (r rowSlice[S, I]) Len() int           { return len(r.ind) }
func (r rowSlice[S, I]) Less(i, j int) bool { return r.ind[i] < r.ind[j] }
func (r rowSlice[S, I]) Swap(i, j int) {
	r.ind[i], r.ind[j] = r.ind[j], r.ind[i]
	r.val[i], r.val[j] = r.val[j], r.val[i]
}

// MaxScaledResidual returns max_i |b_i - (Ax)_i| / (|b_i| + sum_k |A_ik|*|x_k|).
// Rows where the denominator is 0 contribute 0 rather than NaN.
func (s *Store[S, I]) MaxScaledResidual(x, b []S) float64 {
	var maxRes float64
	for r := 0; r < s.N; r++ {
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		var axr S
		var denom float64
		for k := lo; k < hi; k++ {
			axr += s.Val[k] * x[int(s.Ind[k])]
			denom += abs(s.Val[k]) * abs(x[int(s.Ind[k])])
		}
		denom += abs(b[r])
		if denom == 0 {
			continue
		}
		res := abs(b[r]-axr) / denom
		if res > maxRes {
			maxRes = res
		}
	}
	return maxRes
}

// ToCSC converts to compressed-sparse-column form: colPtr, rowInd, colVal,
// where for column c, rowInd[colPtr[c]:colPtr[c+1]] are the rows with a
// nonzero in that column.
func (s *Store[S, I]) ToCSC() (colPtr, rowInd []I, colVal []S) {
	colPtr = make([]I, s.N+1)
	for k := 0; k < s.NNZ; k++ {
		colPtr[int(s.Ind[k])+1]++
	}
	for c := 0; c < s.N; c++ {
		colPtr[c+1] += colPtr[c]
	}
	rowInd = make([]I, s.NNZ)
	colVal = make([]S, s.NNZ)
	next := make([]I, s.N)
	copy(next, colPtr[:s.N])
	for r := 0; r < s.N; r++ {
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		for k := lo; k < hi; k++ {
			c := int(s.Ind[k])
			dst := next[c]
			rowInd[dst] = I(r)
			colVal[dst] = s.Val[k]
			next[c]++
		}
	}
	return colPtr, rowInd, colVal
}

// FromCSC builds a Store from compressed-sparse-column arrays, sorting
// each row's entries so the result satisfies Check. The inverse of ToCSC.
func FromCSC[S Scalar, I Index](n int, colPtr, rowInd []I, colVal []S) *Store[S, I] {
	nnz := len(rowInd)
	rowCount := make([]I, n)
	for k := 0; k < nnz; k++ {
		rowCount[int(rowInd[k])]++
	}
	ptr := make([]I, n+1)
	for r := 0; r < n; r++ {
		ptr[r+1] = ptr[r] + rowCount[r]
	}
	ind := make([]I, nnz)
	val := make([]S, nnz)
	next := make([]I, n)
	copy(next, ptr[:n])
	for c := 0; c < n; c++ {
		lo, hi := int(colPtr[c]), int(colPtr[c+1])
		for k := lo; k < hi; k++ {
			r := int(rowInd[k])
			dst := next[r]
			ind[dst] = I(c)
			val[dst] = colVal[k]
			next[r]++
		}
	}
	st := &Store[S, I]{N: n, NNZ: nnz, Ptr: ptr, Ind: ind, Val: val}
	for r := 0; r < n; r++ {
		lo, hi := int(ptr[r]), int(ptr[r+1])
		row := rowSlice[S, I]{ind: ind[lo:hi], val: val[lo:hi]}
		sort.Sort(row)
	}
	return st
}
