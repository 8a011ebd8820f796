package front

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The front of separator [0,2) with update row/column 2 on
// A=[[2,0,1],[0,3,4],[1,4,5]]: F11 is the leading 2x2 block, F12 the
// separator rows of column 2, F21 the update row restricted to the
// separator columns.
func TestNewFront(t *testing.T) {
	s := sampleStore()
	f := NewFront(s, 0, 2, []int{2})

	require.Equal(t, 2, f.DimSep)
	require.Equal(t, 1, f.DimUpd)
	require.Equal(t, []float64{2, 0, 0, 3}, f.F11)
	require.Equal(t, []float64{1, 4}, f.F12)
	require.Equal(t, []float64{1, 4}, f.F21)
}

func TestNewFrontNoUpdate(t *testing.T) {
	s := sampleStore()
	f := NewFront(s, 0, 3, nil)
	require.Equal(t, 3, f.DimSep)
	require.Equal(t, 0, f.DimUpd)
	require.Equal(t, []float64{2, 0, 1, 0, 3, 4, 1, 4, 5}, f.F11)
	require.Empty(t, f.F12)
	require.Empty(t, f.F21)
}
