package rblas

import "golang.org/x/sync/errgroup"

// Gemm computes C <- alpha*op(A)*op(B) + beta*C, recursively splitting
// whichever of m, n, k is largest. An m- or n-split forks the two
// halves as sibling tasks joined before Gemm returns; a k-split runs
// serially, the second half accumulating with beta=1. a, b, c are
// row-major with row strides lda, ldb, ldc.
func Gemm[S Scalar](ta, tb Trans, m, n, k int, alpha S, a []S, lda int, b []S, ldb int, beta S, c []S, ldc int, depth int) {
	if depth >= TaskRecursionCutoffLevel || float64(m)*float64(n)*float64(k) <= float64(OMPThreshold) {
		gemmLeaf(ta, tb, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	opA, opB := isTrans(ta), isTrans(tb)
	switch {
	case n >= max(m, k):
		half := n / 2
		var bOff, cOff int
		if opB {
			bOff = half * ldb
		} else {
			bOff = half
		}
		cOff = half
		var g errgroup.Group
		g.Go(func() error {
			Gemm(ta, tb, m, half, k, alpha, a, lda, b, ldb, beta, c, ldc, depth+1)
			return nil
		})
		g.Go(func() error {
			Gemm(ta, tb, m, n-half, k, alpha, a, lda, b[bOff:], ldb, beta, c[cOff:], ldc, depth+1)
			return nil
		})
		g.Wait()
	case m >= k:
		half := m / 2
		var aOff, cOff int
		if opA {
			aOff = half
		} else {
			aOff = half * lda
		}
		cOff = half * ldc
		var g errgroup.Group
		g.Go(func() error {
			Gemm(ta, tb, half, n, k, alpha, a, lda, b, ldb, beta, c, ldc, depth+1)
			return nil
		})
		g.Go(func() error {
			Gemm(ta, tb, m-half, n, k, alpha, a[aOff:], lda, b, ldb, beta, c[cOff:], ldc, depth+1)
			return nil
		})
		g.Wait()
	default:
		half := k / 2
		var aOff, bOff int
		if opA {
			aOff = half * lda
		} else {
			aOff = half
		}
		if opB {
			bOff = half
		} else {
			bOff = half * ldb
		}
		Gemm(ta, tb, m, n, half, alpha, a, lda, b, ldb, beta, c, ldc, depth)
		Gemm(ta, tb, m, n, k-half, alpha, a[aOff:], lda, b[bOff:], ldb, one[S](), c, ldc, depth)
	}
}
