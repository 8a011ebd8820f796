package rblas

import "golang.org/x/sync/errgroup"

// Trsm solves op(A)*X = alpha*B (side Left) or X*op(A) = alpha*B
// (side Right) in place, overwriting B with X. Only three
// (side,uplo,trans) combinations are implemented:
// (Left,Lower,NoTrans), (Right,Upper,NoTrans) and (Left,Upper,NoTrans).
// Any other combination panics, a programmer error rather than a
// recoverable condition. Splits along the right-hand-side dimension
// fork in parallel; splits along the triangular dimension run serially
// in dependency order with a Gemm subtracting the completed half's
// contribution between the two solves. A is row-major m-by-m (side
// Left) or n-by-n (side Right), row stride lda; B is row-major m-by-n,
// row stride ldb.
func Trsm[S Scalar](side Side, uplo Uplo, transa Trans, diag Diag, m, n int, alpha S, a []S, lda int, b []S, ldb int, depth int) {
	if transa != NoTrans || !(side == Left && (uplo == Lower || uplo == Upper) || side == Right && uplo == Upper) {
		unsupportedVariant("trsm")
	}
	if float64(m)*float64(m)*float64(n) <= float64(OMPThreshold) || depth >= TaskRecursionCutoffLevel {
		trsmLeaf(side, uplo, transa, diag, m, n, alpha, a, lda, b, ldb)
		return
	}
	switch {
	case side == Left && uplo == Lower && transa == NoTrans:
		if n >= m {
			half := n / 2
			var g errgroup.Group
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth+1)
				return nil
			})
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, m, n-half, alpha, a, lda, b[half:], ldb, depth+1)
				return nil
			})
			g.Wait()
			return
		}
		half := m / 2
		Trsm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth)
		Gemm(NoTrans, NoTrans, m-half, n, half, negOne[S](), a[half*lda:], lda, b, ldb, alpha, b[half*ldb:], ldb, depth)
		Trsm(side, uplo, transa, diag, m-half, n, one[S](), a[half*lda+half:], lda, b[half*ldb:], ldb, depth)

	case side == Right && uplo == Upper && transa == NoTrans:
		if m >= n {
			half := m / 2
			var g errgroup.Group
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth+1)
				return nil
			})
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, m-half, n, alpha, a, lda, b[half*ldb:], ldb, depth+1)
				return nil
			})
			g.Wait()
			return
		}
		half := n / 2
		Trsm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth)
		Gemm(NoTrans, NoTrans, m, n-half, half, negOne[S](), b, ldb, a[half:], lda, alpha, b[half:], ldb, depth)
		Trsm(side, uplo, transa, diag, m, n-half, one[S](), a[half*lda+half:], lda, b[half:], ldb, depth)

	case side == Left && uplo == Upper && transa == NoTrans:
		if n >= m {
			half := n / 2
			var g errgroup.Group
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth+1)
				return nil
			})
			g.Go(func() error {
				Trsm(side, uplo, transa, diag, m, n-half, alpha, a, lda, b[half:], ldb, depth+1)
				return nil
			})
			g.Wait()
			return
		}
		half := m / 2
		Trsm(side, uplo, transa, diag, m-half, n, alpha, a[half*lda+half:], lda, b[half*ldb:], ldb, depth)
		Gemm(NoTrans, NoTrans, half, n, m-half, negOne[S](), a[half:], lda, b[half*ldb:], ldb, alpha, b, ldb, depth)
		Trsm(side, uplo, transa, diag, half, n, one[S](), a, lda, b, ldb, depth)

	default:
		unsupportedVariant("trsm")
	}
}

// Trsv solves op(A)*x = b in place for a single right-hand side,
// overwriting x with the solution. Only (Lower,NoTrans) and
// (Upper,NoTrans) are implemented; anything else panics, mirroring
// Trsm. The triangular split runs serially in dependency order (lower:
// top half first; upper: bottom half first). A is row-major n-by-n,
// row stride lda.
func Trsv[S Scalar](uplo Uplo, trans Trans, diag Diag, n int, a []S, lda int, x []S, incx int, depth int) {
	if trans != NoTrans || (uplo != Lower && uplo != Upper) {
		unsupportedVariant("trsv")
	}
	if depth >= TaskRecursionCutoffLevel || float64(n)*float64(n) <= float64(TileSize*TileSize) {
		trsvLeaf(uplo, trans, diag, n, a, lda, x, incx)
		return
	}
	half := n / 2
	switch {
	case uplo == Lower && trans == NoTrans:
		Trsv(uplo, trans, diag, half, a, lda, x, incx, depth)
		Gemv(trans, n-half, half, negOne[S](), a[half*lda:], lda, x, incx, one[S](), x[half*incx:], incx, depth)
		Trsv(uplo, trans, diag, n-half, a[half*lda+half:], lda, x[half*incx:], incx, depth)
	case uplo == Upper && trans == NoTrans:
		Trsv(uplo, trans, diag, n-half, a[half*lda+half:], lda, x[half*incx:], incx, depth)
		Gemv(trans, half, n-half, negOne[S](), a[half:], lda, x[half*incx:], incx, one[S](), x, incx, depth)
		Trsv(uplo, trans, diag, half, a, lda, x, incx, depth)
	default:
		unsupportedVariant("trsv")
	}
}
