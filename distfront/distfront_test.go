package distfront

import (
	"testing"

	"github.com/ajroetker/sparsekernel/sparse"
	"github.com/stretchr/testify/require"
)

// identityRedistributor is a single-process stand-in for the BLACS-grid
// primitives: both layouts are the same flat 2D slice, and PGEAdd is a
// plain row-wise axpy, so FrontMultiply2D's result must match
// front.FrontMultiply's on the same inputs.
type identityRedistributor[S sparse.Scalar] struct{}

func (identityRedistributor[S]) ToColumnCyclic(m [][]S) [][]S   { return m }
func (identityRedistributor[S]) FromColumnCyclic(m [][]S) [][]S { return m }
func (identityRedistributor[S]) PGEAdd(dst, src []S, alpha S) {
	for j := range dst {
		dst[j] += alpha * src[j]
	}
}

// The 2-separator, 1-update case run through the distributed-memory
// path with a single-process redistributor: result must equal
// front.FrontMultiply's.
func TestFrontMultiply2DMatchesSinglePartition(t *testing.T) {
	s := sparse.New[float64, int32](3, 7)
	s.Ptr = []int32{0, 2, 4, 7}
	s.Ind = []int32{0, 2, 1, 2, 0, 1, 2}
	s.Val = []float64{2, 1, 3, 4, 1, 4, 5}

	R := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	Srow := make([][]float64, 2)
	for i := range Srow {
		Srow[i] = make([]float64, 3)
	}
	Scol := make([][]float64, 3)
	for i := range Scol {
		Scol[i] = make([]float64, 3)
	}

	gotSrow, gotScol := FrontMultiply2D[float64, int32](s, 0, 2, []int{2}, identityRedistributor[float64]{}, R, Srow, Scol)

	require.Equal(t, [][]float64{{2, 0, 1}, {0, 3, 4}}, gotSrow)
	require.Equal(t, [][]float64{{2, 0, 1}, {0, 3, 4}, {1, 4, 0}}, gotScol)
}
