package sparse

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// A = [[2,0,1],[0,3,4],[1,4,5]] in CSR.
func sampleStore() *Store[float64, int32] {
	s := New[float64, int32](3, 7)
	s.Ptr = []int32{0, 2, 4, 7}
	s.Ind = []int32{0, 2, 1, 2, 0, 1, 2}
	s.Val = []float64{2, 1, 3, 4, 1, 4, 5}
	return s
}

func TestCheckValid(t *testing.T) {
	s := sampleStore()
	require.NoError(t, s.Check())
}

func TestCheckBadColumnOrder(t *testing.T) {
	s := sampleStore()
	s.Ind[0], s.Ind[1] = s.Ind[1], s.Ind[0] // row 0 no longer strictly increasing
	require.Error(t, s.Check())
}

func TestCheckColumnOutOfRange(t *testing.T) {
	s := sampleStore()
	s.Ind[2] = 99
	require.Error(t, s.Check())
}

func TestCheckPtrNotNonDecreasing(t *testing.T) {
	s := sampleStore()
	s.Ptr[1] = 5
	require.Error(t, s.Check())
}

func TestSpMV(t *testing.T) {
	s := sampleStore()
	x := []float64{1, 1, 1}
	y := make([]float64, 3)
	s.SpMV(x, y)
	require.Equal(t, []float64{3, 7, 10}, y)
}

// n=4 tridiagonal [2,-1; -1,2,-1; -1,2,-1; -1,2].
func TestSpMVTridiagonal(t *testing.T) {
	s := New[float64, int32](4, 10)
	s.Ptr = []int32{0, 2, 5, 8, 10}
	s.Ind = []int32{0, 1, 0, 1, 2, 1, 2, 3, 2, 3}
	s.Val = []float64{2, -1, -1, 2, -1, -1, 2, -1, -1, 2}
	require.NoError(t, s.Check())

	y := make([]float64, 4)
	s.SpMV([]float64{1, 1, 1, 1}, y)
	require.Equal(t, []float64{1, 0, 0, 1}, y)
}

// SpMVParallel matches the sequential sweep for any worker count,
// including more workers than rows and the strip balancing kicking in
// on a matrix whose nonzeros cluster in one row.
func TestSpMVParallelMatchesSequential(t *testing.T) {
	s := New[float64, int32](5, 9)
	s.Ptr = []int32{0, 1, 6, 6, 8, 9}
	s.Ind = []int32{0, 0, 1, 2, 3, 4, 1, 3, 4}
	s.Val = []float64{2, 1, -1, 3, 4, -2, 5, 6, 7}
	require.NoError(t, s.Check())

	want := make([]float64, 5)
	s.SpMV([]float64{1, 2, 3, 4, 5}, want)
	for _, workers := range []int{0, 1, 2, 8} {
		got := make([]float64, 5)
		s.SpMVParallel(workers, []float64{1, 2, 3, 4, 5}, got)
		require.InDeltaSlice(t, want, got, 1e-12, "workers=%d", workers)
	}
}

// WriteBinary/ReadBinary round trip preserves the store exactly.
func TestBinaryRoundTrip(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	n, err := s.WriteBinary(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	got, err := ReadBinary[float64, int32](&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// A 2x2 complex-double matrix survives the binary round trip bitwise
// identical.
func TestBinaryRoundTripComplex(t *testing.T) {
	s := New[complex128, int32](2, 4)
	s.Ptr = []int32{0, 2, 4}
	s.Ind = []int32{0, 1, 0, 1}
	s.Val = []complex128{complex(1, 2), complex(3, 4), complex(5, 6), complex(7, 8)}

	var buf bytes.Buffer
	_, err := s.WriteBinary(&buf)
	require.NoError(t, err)
	got, err := ReadBinary[complex128, int32](&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("complex round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBinaryRejectsBadSentinel(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	_, err := s.WriteBinary(&buf)
	require.NoError(t, err)
	raw := buf.Bytes()
	raw[0] = 'X'
	_, err = ReadBinary[float64, int32](bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrBadSentinel)
}

func TestReadBinaryRejectsScalarKindMismatch(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	_, err := s.WriteBinary(&buf)
	require.NoError(t, err)
	_, err = ReadBinary[complex128, int32](bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrScalarKindMatch)
}

func TestReadBinaryRejectsIndexWidthMismatch(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	_, err := s.WriteBinary(&buf)
	require.NoError(t, err)
	_, err = ReadBinary[float64, int64](bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrIndexWidthMatch)
}

// CSR -> CSC -> CSR round trips to the same matrix, compared through a
// dense expansion.
func TestCSCRoundTrip(t *testing.T) {
	s := sampleStore()
	colPtr, rowInd, colVal := s.ToCSC()
	back := FromCSC[float64, int32](s.N, colPtr, rowInd, colVal)
	require.NoError(t, back.Check())

	dense := func(st *Store[float64, int32]) [][]float64 {
		d := make([][]float64, st.N)
		for i := range d {
			d[i] = make([]float64, st.N)
		}
		for r := 0; r < st.N; r++ {
			for k := st.Ptr[r]; k < st.Ptr[r+1]; k++ {
				d[r][st.Ind[k]] = st.Val[k]
			}
		}
		return d
	}
	if diff := cmp.Diff(dense(s), dense(back)); diff != "" {
		t.Errorf("CSR->CSC->CSR mismatch (-want +got):\n%s", diff)
	}
}

// Matrix Market round trip.
func TestMatrixMarketRoundTrip(t *testing.T) {
	s := sampleStore()
	var buf bytes.Buffer
	require.NoError(t, s.WriteMatrixMarket(&buf))

	got, err := ReadMatrixMarket[float64, int32](&buf)
	require.NoError(t, err)
	require.NoError(t, got.Check())
	require.Equal(t, s.N, got.N)
	require.Equal(t, s.NNZ, got.NNZ)

	x := []float64{1, 1, 1}
	wantY, gotY := make([]float64, 3), make([]float64, 3)
	s.SpMV(x, wantY)
	got.SpMV(x, gotY)
	require.InDeltaSlice(t, wantY, gotY, 1e-12)
}

func TestReadMatrixMarketRejectsBadHeader(t *testing.T) {
	_, err := ReadMatrixMarket[float64, int32](bytes.NewReader([]byte("not a matrix market file\n")))
	require.ErrorIs(t, err, ErrMatrixMarket)
}

func TestClone(t *testing.T) {
	s := sampleStore()
	c := s.Clone()
	c.Val[0] = 100
	require.NotEqual(t, s.Val[0], c.Val[0])
	if diff := cmp.Diff(s.Ptr, c.Ptr); diff != "" {
		t.Errorf("clone Ptr mismatch (-want +got):\n%s", diff)
	}
}

// Scaling commutes with the matvec: ApplyScaling(Dr,Dc) then SpMV(x)
// equals SpMV(diag(Dc)*x) scaled by Dr on the left.
func TestApplyScalingCommutesWithSpMV(t *testing.T) {
	s := sampleStore()
	Dr := []float64{2, 3, 0.5}
	Dc := []float64{1, 2, 4}
	x := []float64{1, 2, 3}

	scaled := s.Clone()
	scaled.ApplyScaling(1, Dr, Dc)
	got := make([]float64, 3)
	scaled.SpMV(x, got)

	dcx := make([]float64, 3)
	for i := range x {
		dcx[i] = Dc[i] * x[i]
	}
	want := make([]float64, 3)
	s.SpMV(dcx, want)
	for i := range want {
		want[i] *= Dr[i]
	}

	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("row %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestMaxScaledResidualZeroDenominator(t *testing.T) {
	s := New[float64, int32](1, 0)
	s.Ptr = []int32{0, 0}
	x := []float64{0}
	b := []float64{0}
	require.Equal(t, 0.0, s.MaxScaledResidual(x, b))
}

func TestApplyColumnPermutation(t *testing.T) {
	s := sampleStore()
	// swap columns 0 and 2
	perm := []int32{2, 1, 0}
	s.ApplyColumnPermutation(perm)
	require.NoError(t, s.Check())
}
