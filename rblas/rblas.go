// Package rblas implements task-recursive dense kernels: gemm, gemv,
// trsm, trsv, trmm, laswp, geru, gerc, getrf and getrs, each splitting
// its largest dimension in half and forking the two halves as
// cooperating tasks via errgroup.Group until depth or problem size
// drops below a threshold, at which point it makes a single sequential
// BLAS/LAPACK call.
//
// Dense arguments are row-major flat slices with an explicit leading
// dimension (row stride), matching front's convention and
// gonum/blas64's row-major layout.
package rblas

import (
	"runtime"

	"github.com/ajroetker/sparsekernel/sparse"
)

// Scalar is the same float32/float64/complex64/complex128 constraint
// sparse.Store is generic over, so rblas routines compose directly
// with fronts extracted by the front package.
type Scalar = sparse.Scalar

// TileSize is the OMPTileSize tuning constant: below this, quadrant
// splits stop and a function falls through to a leaf BLAS call.
var TileSize = 64

// OMPThreshold bounds total work (roughly m*n*k for gemm, m*n for the
// simpler routines) below which recursion stops regardless of depth.
var OMPThreshold = TileSize * TileSize * TileSize

// TaskRecursionCutoffLevel bounds how many levels of the recursion
// fork new goroutines via errgroup before continuing sequentially;
// this keeps goroutine fan-out bounded on deep recursions over large
// matrices. Defaults to a shallow depth scaled off GOMAXPROCS, since
// each level forks up to 2-4 ways.
var TaskRecursionCutoffLevel = defaultCutoff()

func defaultCutoff() int {
	p := runtime.GOMAXPROCS(0)
	lvl := 1
	for 1<<uint(lvl) < p {
		lvl++
	}
	return lvl + 2
}

// Trans, Side, Uplo and Diag mirror the single-character BLAS/LAPACK
// parameters.
type Trans byte

const (
	NoTrans   Trans = 'N'
	Trans_    Trans = 'T'
	ConjTrans Trans = 'C'
)

func isTrans(t Trans) bool { return t == Trans_ || t == ConjTrans }

type Side byte

const (
	Left  Side = 'L'
	Right Side = 'R'
)

type Uplo byte

const (
	Lower Uplo = 'L'
	Upper Uplo = 'U'
)

type Diag byte

const (
	NonUnit Diag = 'N'
	Unit    Diag = 'U'
)
