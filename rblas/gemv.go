package rblas

import "golang.org/x/sync/errgroup"

// Gemv computes y <- alpha*op(A)*x + beta*y, recursively splitting A's
// larger dimension: the non-contracting dimension in parallel, the
// contracting one serially, except that when y is at most a tile long
// the two contracting halves run in parallel into a temporary
// accumulator that is summed into y afterwards, avoiding a write race
// on a short result vector. A is row-major, m rows by n columns, row
// stride lda.
func Gemv[S Scalar](trans Trans, m, n int, alpha S, a []S, lda int, x []S, incx int, beta S, y []S, incy int, depth int) {
	if depth >= TaskRecursionCutoffLevel || 2*float64(m)*float64(n) <= float64(TileSize*TileSize) {
		gemvLeaf(trans, m, n, alpha, a, lda, x, incx, beta, y, incy)
		return
	}
	if isTrans(trans) {
		if n >= m {
			half := n / 2
			var g errgroup.Group
			g.Go(func() error {
				Gemv(trans, m, half, alpha, a, lda, x, incx, beta, y, incy, depth+1)
				return nil
			})
			g.Go(func() error {
				Gemv(trans, m, n-half, alpha, a[half:], lda, x, incx, beta, y[half*incy:], incy, depth+1)
				return nil
			})
			g.Wait()
			return
		}
		half := m / 2
		if n <= TileSize {
			tmp := make([]S, n)
			var g errgroup.Group
			g.Go(func() error {
				Gemv(trans, half, n, alpha, a, lda, x, incx, beta, y, incy, depth+1)
				return nil
			})
			g.Go(func() error {
				Gemv(trans, m-half, n, alpha, a[half*lda:], lda, x[half*incx:], incx, zero[S](), tmp, 1, depth+1)
				return nil
			})
			g.Wait()
			for i := 0; i < n; i++ {
				y[i*incy] += tmp[i]
			}
			return
		}
		Gemv(trans, half, n, alpha, a, lda, x, incx, beta, y, incy, depth)
		Gemv(trans, m-half, n, alpha, a[half*lda:], lda, x[half*incx:], incx, one[S](), y, incy, depth)
		return
	}
	// trans == NoTrans
	if m >= n {
		half := m / 2
		var g errgroup.Group
		g.Go(func() error {
			Gemv(trans, half, n, alpha, a, lda, x, incx, beta, y, incy, depth+1)
			return nil
		})
		g.Go(func() error {
			Gemv(trans, m-half, n, alpha, a[half*lda:], lda, x, incx, beta, y[half*incy:], incy, depth+1)
			return nil
		})
		g.Wait()
		return
	}
	half := n / 2
	if m <= TileSize {
		tmp := make([]S, m)
		var g errgroup.Group
		g.Go(func() error {
			Gemv(trans, m, half, alpha, a, lda, x, incx, beta, y, incy, depth+1)
			return nil
		})
		g.Go(func() error {
			Gemv(trans, m, n-half, alpha, a[half:], lda, x[half*incx:], incx, zero[S](), tmp, 1, depth+1)
			return nil
		})
		g.Wait()
		for i := 0; i < m; i++ {
			y[i*incy] += tmp[i]
		}
		return
	}
	Gemv(trans, m, half, alpha, a, lda, x, incx, beta, y, incy, depth)
	Gemv(trans, m, n-half, alpha, a[half:], lda, x[half*incx:], incx, one[S](), y, incy, depth)
}
