package rblas

import "golang.org/x/sync/errgroup"

// Geru computes A <- alpha*x*yᵀ + A (no conjugation), splitting A into
// four quadrants and forking all four as sibling tasks; the quadrants
// write disjoint memory, so they need no ordering. A is row-major
// m-by-n, row stride lda.
func Geru[S Scalar](m, n int, alpha S, x []S, incx int, y []S, incy int, a []S, lda int, depth int) {
	gerRecursive(false, m, n, alpha, x, incx, y, incy, a, lda, depth)
}

// Gerc computes A <- alpha*x*yᴴ + A (y conjugated), otherwise
// identical to Geru.
func Gerc[S Scalar](m, n int, alpha S, x []S, incx int, y []S, incy int, a []S, lda int, depth int) {
	gerRecursive(true, m, n, alpha, x, incx, y, incy, a, lda, depth)
}

func gerRecursive[S Scalar](conj bool, m, n int, alpha S, x []S, incx int, y []S, incy int, a []S, lda int, depth int) {
	if depth >= TaskRecursionCutoffLevel || 2*float64(m)*float64(n) <= float64(OMPThreshold) {
		gerLeaf(conj, m, n, alpha, x, incx, y, incy, a, lda)
		return
	}
	mh, nh := m/2, n/2
	var g errgroup.Group
	g.Go(func() error {
		gerRecursive(conj, mh, nh, alpha, x, incx, y, incy, a, lda, depth+1)
		return nil
	})
	g.Go(func() error {
		gerRecursive(conj, m-mh, nh, alpha, x[mh*incx:], incx, y, incy, a[mh*lda:], lda, depth+1)
		return nil
	})
	g.Go(func() error {
		gerRecursive(conj, mh, n-nh, alpha, x, incx, y[nh*incy:], incy, a[nh:], lda, depth+1)
		return nil
	})
	g.Go(func() error {
		gerRecursive(conj, m-mh, n-nh, alpha, x[mh*incx:], incx, y[nh*incy:], incy, a[mh*lda+nh:], lda, depth+1)
		return nil
	})
	g.Wait()
}
