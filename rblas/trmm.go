package rblas

import "golang.org/x/sync/errgroup"

// Trmm computes B <- alpha*op(A)*B (side Left) or B <- alpha*B*op(A)
// (side Right) in place. Unlike Trsm/Trsv it supports every
// (side,uplo,trans) combination, recursing on whichever of A's or B's
// larger dimension until it bottoms out at a leaf blas64/cblas64 call.
// The triangular split runs serially: because the update is in place,
// the half whose result does not feed the cross-term Gemm must be
// transformed first, and the ordering flips with uplo and trans. A is
// row-major and square (m-by-m for side Left, n-by-n for side Right),
// row stride lda; B is row-major m-by-n, row stride ldb.
func Trmm[S Scalar](side Side, uplo Uplo, transa Trans, diag Diag, m, n int, alpha S, a []S, lda int, b []S, ldb int, depth int) {
	if m == 0 || n == 0 {
		return
	}
	if depth >= TaskRecursionCutoffLevel || float64(m)*float64(n)*float64(n) <= float64(OMPThreshold) {
		trmmLeaf(side, uplo, transa, diag, m, n, alpha, a, lda, b, ldb)
		return
	}
	opA := isTrans(transa)
	if side == Left {
		if n >= m {
			half := n / 2
			var g errgroup.Group
			g.Go(func() error {
				Trmm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth+1)
				return nil
			})
			g.Go(func() error {
				Trmm(side, uplo, transa, diag, m, n-half, alpha, a, lda, b[half:], ldb, depth+1)
				return nil
			})
			g.Wait()
			return
		}
		half := m / 2
		diagOff := half*lda + half
		if uplo == Upper {
			if opA {
				Trmm(side, uplo, transa, diag, m-half, n, alpha, a[diagOff:], lda, b[half*ldb:], ldb, depth)
				Gemm(transa, NoTrans, m-half, n, half, alpha, a[half:], lda, b, ldb, one[S](), b[half*ldb:], ldb, depth)
				Trmm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth)
			} else {
				Trmm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth)
				Gemm(transa, NoTrans, half, n, m-half, alpha, a[half:], lda, b[half*ldb:], ldb, one[S](), b, ldb, depth)
				Trmm(side, uplo, transa, diag, m-half, n, alpha, a[diagOff:], lda, b[half*ldb:], ldb, depth)
			}
		} else {
			if opA {
				Trmm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth)
				Gemm(transa, NoTrans, half, n, m-half, alpha, a[half*lda:], lda, b[half*ldb:], ldb, one[S](), b, ldb, depth)
				Trmm(side, uplo, transa, diag, m-half, n, alpha, a[diagOff:], lda, b[half*ldb:], ldb, depth)
			} else {
				Trmm(side, uplo, transa, diag, m-half, n, alpha, a[diagOff:], lda, b[half*ldb:], ldb, depth)
				Gemm(transa, NoTrans, m-half, n, half, alpha, a[half*lda:], lda, b, ldb, one[S](), b[half*ldb:], ldb, depth)
				Trmm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth)
			}
		}
		return
	}
	// side == Right
	if n >= m {
		half := n / 2
		diagOff := half*lda + half
		if uplo == Upper {
			if opA {
				Trmm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth)
				Gemm(NoTrans, transa, m, half, n-half, alpha, b[half:], ldb, a[half:], lda, one[S](), b, ldb, depth)
				Trmm(side, uplo, transa, diag, m, n-half, alpha, a[diagOff:], lda, b[half:], ldb, depth)
			} else {
				Trmm(side, uplo, transa, diag, m, n-half, alpha, a[diagOff:], lda, b[half:], ldb, depth)
				Gemm(NoTrans, transa, m, n-half, half, alpha, b, ldb, a[half:], lda, one[S](), b[half:], ldb, depth)
				Trmm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth)
			}
		} else {
			if opA {
				Trmm(side, uplo, transa, diag, m, n-half, alpha, a[diagOff:], lda, b[half:], ldb, depth)
				Gemm(NoTrans, transa, m, n-half, half, alpha, b, ldb, a[half*lda:], lda, one[S](), b[half:], ldb, depth)
				Trmm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth)
			} else {
				Trmm(side, uplo, transa, diag, m, half, alpha, a, lda, b, ldb, depth)
				Gemm(NoTrans, transa, m, half, n-half, alpha, b[half:], ldb, a[half*lda:], lda, one[S](), b, ldb, depth)
				Trmm(side, uplo, transa, diag, m, n-half, alpha, a[diagOff:], lda, b[half:], ldb, depth)
			}
		}
		return
	}
	half := m / 2
	var g errgroup.Group
	g.Go(func() error {
		Trmm(side, uplo, transa, diag, half, n, alpha, a, lda, b, ldb, depth+1)
		return nil
	})
	g.Go(func() error {
		Trmm(side, uplo, transa, diag, m-half, n, alpha, a, lda, b[half*ldb:], ldb, depth+1)
		return nil
	})
	g.Wait()
}
