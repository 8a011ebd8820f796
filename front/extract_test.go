package front

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

func TestExtractF11Block(t *testing.T) {
	s := sampleStore()
	F := make([]float64, 2*2)
	ExtractF11Block(s, F, 2, 0, 2, 0, 2)
	require.Equal(t, []float64{2, 0, 0, 3}, F)
}

func TestExtractF11BlockOffset(t *testing.T) {
	s := sampleStore()
	F := make([]float64, 2*2)
	ExtractF11Block(s, F, 2, 1, 2, 1, 2)
	// rows 1,2 restricted to cols 1,2: row1=[3,4], row2=[4,5]
	require.Equal(t, []float64{3, 4, 4, 5}, F)
}

func TestExtractF12Block(t *testing.T) {
	s := sampleStore()
	upd := []int{2}
	F := make([]float64, 2*1)
	ExtractF12Block(s, F, 1, 0, 2, upd, 1)
	require.Equal(t, []float64{1, 4}, F)
}

func TestExtractF21Block(t *testing.T) {
	s := sampleStore()
	upd := []int{2}
	F := make([]float64, 1*2)
	ExtractF21Block(s, F, 1, 0, 1, 0, 2, upd)
	require.Equal(t, []float64{1, 4}, F)
}

func TestExtractSeparatorMatchesF11(t *testing.T) {
	s := sampleStore()
	rows := []int{0, 1}
	cols := []int{0, 1}
	B := make([]float64, 2*2)
	ExtractSeparator(s, 3, rows, cols, B, 2, 0)
	require.Equal(t, []float64{2, 0, 0, 3}, B)
}

func TestExtractSeparatorParallelMatchesSequential(t *testing.T) {
	s := sampleStore()
	rows := []int{0, 1, 2}
	cols := []int{0, 1, 2}
	seq := make([]float64, 9)
	ExtractSeparator(s, 3, rows, cols, seq, 3, 0)
	par := make([]float64, 9)
	ExtractSeparator(s, 3, rows, cols, par, 3, 2)
	require.Equal(t, seq, par)
}
