package mc64

import (
	"testing"

	"github.com/ajroetker/sparsekernel/sparse"
	"github.com/stretchr/testify/require"
)

// A = [[2,0,1],[0,3,4],[1,4,5]] in CSR.
func sampleStore() *sparse.Store[float64, int32] {
	s := sparse.New[float64, int32](3, 7)
	s.Ptr = []int32{0, 2, 4, 7}
	s.Ind = []int32{0, 2, 1, 2, 0, 1, 2}
	s.Val = []float64{2, 1, 3, 4, 1, 4, 5}
	return s
}

func TestBuildPermutationRepacksToOneIndexedCSC(t *testing.T) {
	s := sampleStore()
	var gotColPtr, gotRowInd []int32
	var gotDval []float64

	solver := func(job, n, nnz int, colPtr, rowInd []int32, dval []float64) ([]int32, int, int) {
		gotColPtr = append([]int32(nil), colPtr...)
		gotRowInd = append([]int32(nil), rowInd...)
		gotDval = append([]float64(nil), dval...)
		perm := make([]int32, n)
		for i := range perm {
			perm[i] = int32(i + 1) // identity, 1-indexed
		}
		return perm, n, 0
	}

	perm, num, err := BuildPermutation(s, 5, solver)
	require.NoError(t, err)
	require.Equal(t, 3, num)
	require.Equal(t, []int{0, 1, 2}, perm)

	// column 0 has rows 0,2 (values 2,1); column 1 has row 1,2 (3,4);
	// column 2 has rows 0,1,2 (1,4,5) -- all 1-indexed.
	require.Equal(t, []int32{1, 3, 5, 8}, gotColPtr)
	require.Equal(t, []int32{1, 3, 2, 3, 1, 2, 3}, gotRowInd)
	require.Equal(t, []float64{2, 1, 3, 4, 1, 4, 5}, gotDval)
}

func TestBuildPermutationSurfacesSolverFailure(t *testing.T) {
	s := sampleStore()
	solver := func(job, n, nnz int, colPtr, rowInd []int32, dval []float64) ([]int32, int, int) {
		return nil, 0, 1
	}
	_, _, err := BuildPermutation(s, 5, solver)
	require.Error(t, err)
}

func TestScalarMagnitudeComplex(t *testing.T) {
	s := sparse.New[complex128, int32](1, 1)
	s.Ptr = []int32{0, 1}
	s.Ind = []int32{0}
	s.Val = []complex128{complex(3, 4)} // |3+4i| = 5

	var gotDval []float64
	solver := func(job, n, nnz int, colPtr, rowInd []int32, dval []float64) ([]int32, int, int) {
		gotDval = append([]float64(nil), dval...)
		return []int32{1}, 1, 0
	}
	_, _, err := BuildPermutation(s, 5, solver)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5}, gotDval, 1e-12)
}
