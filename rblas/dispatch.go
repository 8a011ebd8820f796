package rblas

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

func blasTrans(t Trans) blas.Transpose {
	switch t {
	case Trans_:
		return blas.Trans
	case ConjTrans:
		return blas.ConjTrans
	default:
		return blas.NoTrans
	}
}

func blasUplo(u Uplo) blas.Uplo {
	if u == Upper {
		return blas.Upper
	}
	return blas.Lower
}

func blasSide(s Side) blas.Side {
	if s == Right {
		return blas.Right
	}
	return blas.Left
}

func blasDiag(d Diag) blas.Diag {
	if d == Unit {
		return blas.Unit
	}
	return blas.NonUnit
}

// unsupportedScalar panics: an unrecognized type parameter
// instantiation is a programmer error, not a recoverable runtime
// condition.
func unsupportedScalar(op string) {
	panic(fmt.Sprintf("rblas: %s: unsupported scalar kind", op))
}

// unsupportedVariant panics: a (side,uplo,trans) combination outside
// the set Trsm/Trsv enumerate is a programmer error, not a recoverable
// condition.
func unsupportedVariant(op string) {
	panic(fmt.Sprintf("rblas: %s: unsupported side/uplo/trans combination", op))
}

func gemmLeaf[S Scalar](ta, tb Trans, m, n, k int, alpha S, a []S, lda int, b []S, ldb int, beta S, c []S, ldc int) {
	if af, ok := any(a).([]float64); ok {
		bf, cf := any(b).([]float64), any(c).([]float64)
		blas64.Implementation().Dgemm(blasTrans(ta), blasTrans(tb), m, n, k, float64(any(alpha).(float64)), af, lda, bf, ldb, float64(any(beta).(float64)), cf, ldc)
		return
	}
	if af, ok := any(a).([]float32); ok {
		bf, cf := any(b).([]float32), any(c).([]float32)
		blas32.Implementation().Sgemm(blasTrans(ta), blasTrans(tb), m, n, k, any(alpha).(float32), af, lda, bf, ldb, any(beta).(float32), cf, ldc)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		bf, cf := any(b).([]complex64), any(c).([]complex64)
		cblas64.Implementation().Cgemm(blasTrans(ta), blasTrans(tb), m, n, k, any(alpha).(complex64), af, lda, bf, ldb, any(beta).(complex64), cf, ldc)
		return
	}
	if af, ok := any(a).([]complex128); ok {
		bf, cf := any(b).([]complex128), any(c).([]complex128)
		cblas128.Implementation().Zgemm(blasTrans(ta), blasTrans(tb), m, n, k, any(alpha).(complex128), af, lda, bf, ldb, any(beta).(complex128), cf, ldc)
		return
	}
	unsupportedScalar("gemm")
}

func gemvLeaf[S Scalar](t Trans, m, n int, alpha S, a []S, lda int, x []S, incx int, beta S, y []S, incy int) {
	if af, ok := any(a).([]float64); ok {
		xf, yf := any(x).([]float64), any(y).([]float64)
		blas64.Implementation().Dgemv(blasTrans(t), m, n, any(alpha).(float64), af, lda, xf, incx, any(beta).(float64), yf, incy)
		return
	}
	if af, ok := any(a).([]float32); ok {
		xf, yf := any(x).([]float32), any(y).([]float32)
		blas32.Implementation().Sgemv(blasTrans(t), m, n, any(alpha).(float32), af, lda, xf, incx, any(beta).(float32), yf, incy)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		xf, yf := any(x).([]complex64), any(y).([]complex64)
		cblas64.Implementation().Cgemv(blasTrans(t), m, n, any(alpha).(complex64), af, lda, xf, incx, any(beta).(complex64), yf, incy)
		return
	}
	if af, ok := any(a).([]complex128); ok {
		xf, yf := any(x).([]complex128), any(y).([]complex128)
		cblas128.Implementation().Zgemv(blasTrans(t), m, n, any(alpha).(complex128), af, lda, xf, incx, any(beta).(complex128), yf, incy)
		return
	}
	unsupportedScalar("gemv")
}

func trsmLeaf[S Scalar](side Side, uplo Uplo, transa Trans, diag Diag, m, n int, alpha S, a []S, lda int, b []S, ldb int) {
	if af, ok := any(a).([]float64); ok {
		bf := any(b).([]float64)
		blas64.Implementation().Dtrsm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(float64), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]float32); ok {
		bf := any(b).([]float32)
		blas32.Implementation().Strsm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(float32), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		bf := any(b).([]complex64)
		cblas64.Implementation().Ctrsm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(complex64), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]complex128); ok {
		bf := any(b).([]complex128)
		cblas128.Implementation().Ztrsm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(complex128), af, lda, bf, ldb)
		return
	}
	unsupportedScalar("trsm")
}

func trsvLeaf[S Scalar](uplo Uplo, trans Trans, diag Diag, n int, a []S, lda int, x []S, incx int) {
	if af, ok := any(a).([]float64); ok {
		xf := any(x).([]float64)
		blas64.Implementation().Dtrsv(blasUplo(uplo), blasTrans(trans), blasDiag(diag), n, af, lda, xf, incx)
		return
	}
	if af, ok := any(a).([]float32); ok {
		xf := any(x).([]float32)
		blas32.Implementation().Strsv(blasUplo(uplo), blasTrans(trans), blasDiag(diag), n, af, lda, xf, incx)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		xf := any(x).([]complex64)
		cblas64.Implementation().Ctrsv(blasUplo(uplo), blasTrans(trans), blasDiag(diag), n, af, lda, xf, incx)
		return
	}
	if af, ok := any(a).([]complex128); ok {
		xf := any(x).([]complex128)
		cblas128.Implementation().Ztrsv(blasUplo(uplo), blasTrans(trans), blasDiag(diag), n, af, lda, xf, incx)
		return
	}
	unsupportedScalar("trsv")
}

func trmmLeaf[S Scalar](side Side, uplo Uplo, transa Trans, diag Diag, m, n int, alpha S, a []S, lda int, b []S, ldb int) {
	if af, ok := any(a).([]float64); ok {
		bf := any(b).([]float64)
		blas64.Implementation().Dtrmm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(float64), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]float32); ok {
		bf := any(b).([]float32)
		blas32.Implementation().Strmm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(float32), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		bf := any(b).([]complex64)
		cblas64.Implementation().Ctrmm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(complex64), af, lda, bf, ldb)
		return
	}
	if af, ok := any(a).([]complex128); ok {
		bf := any(b).([]complex128)
		cblas128.Implementation().Ztrmm(blasSide(side), blasUplo(uplo), blasTrans(transa), blasDiag(diag), m, n, any(alpha).(complex128), af, lda, bf, ldb)
		return
	}
	unsupportedScalar("trmm")
}

func gerLeaf[S Scalar](conj bool, m, n int, alpha S, x []S, incx int, y []S, incy int, a []S, lda int) {
	if af, ok := any(a).([]float64); ok {
		xf, yf := any(x).([]float64), any(y).([]float64)
		blas64.Implementation().Dger(m, n, any(alpha).(float64), xf, incx, yf, incy, af, lda)
		return
	}
	if af, ok := any(a).([]float32); ok {
		xf, yf := any(x).([]float32), any(y).([]float32)
		blas32.Implementation().Sger(m, n, any(alpha).(float32), xf, incx, yf, incy, af, lda)
		return
	}
	if af, ok := any(a).([]complex64); ok {
		xf, yf := any(x).([]complex64), any(y).([]complex64)
		if conj {
			cblas64.Implementation().Cgerc(m, n, any(alpha).(complex64), xf, incx, yf, incy, af, lda)
		} else {
			cblas64.Implementation().Cgeru(m, n, any(alpha).(complex64), xf, incx, yf, incy, af, lda)
		}
		return
	}
	if af, ok := any(a).([]complex128); ok {
		xf, yf := any(x).([]complex128), any(y).([]complex128)
		if conj {
			cblas128.Implementation().Zgerc(m, n, any(alpha).(complex128), xf, incx, yf, incy, af, lda)
		} else {
			cblas128.Implementation().Zgeru(m, n, any(alpha).(complex128), xf, incx, yf, incy, af, lda)
		}
		return
	}
	unsupportedScalar("ger")
}

func scalarAbs[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	unsupportedScalar("abs")
	return 0
}

func one[S Scalar]() S {
	var z S
	switch any(z).(type) {
	case float32:
		return any(float32(1)).(S)
	case float64:
		return any(float64(1)).(S)
	case complex64:
		return any(complex64(1)).(S)
	case complex128:
		return any(complex128(1)).(S)
	}
	unsupportedScalar("one")
	return z
}

func negOne[S Scalar]() S {
	var z S
	switch any(z).(type) {
	case float32:
		return any(float32(-1)).(S)
	case float64:
		return any(float64(-1)).(S)
	case complex64:
		return any(complex64(-1)).(S)
	case complex128:
		return any(complex128(-1)).(S)
	}
	unsupportedScalar("negOne")
	return z
}

func zero[S Scalar]() S {
	var z S
	return z
}
