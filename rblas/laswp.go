package rblas

import "golang.org/x/sync/errgroup"

// Laswp applies the row interchanges recorded in ipiv[k1:k2+1] (both
// 0-indexed, inclusive, forward order; incx must be 1) to the n
// columns of A: for i from k1 to k2, row i is swapped with row
// ipiv[i]. Recursion splits the column range, so the swaps of the two
// halves run concurrently. A is row-major, row stride lda, so a row
// swap is a contiguous n-element exchange rather than a strided one.
// gonum exposes no public LASWP primitive (its own Dgetrf applies
// pivots internally), so the leaf case is a direct loop rather than a
// delegated BLAS/LAPACK call.
func Laswp[S Scalar](n int, a []S, lda, k1, k2 int, ipiv []int, incx int, depth int) {
	if incx != 1 {
		panic("rblas: laswp: only incx=1 is supported")
	}
	if depth >= TaskRecursionCutoffLevel || n <= TileSize {
		for i := k1; i <= k2; i++ {
			p := ipiv[i]
			if p == i {
				continue
			}
			ri, rp := a[i*lda:i*lda+n], a[p*lda:p*lda+n]
			for j := 0; j < n; j++ {
				ri[j], rp[j] = rp[j], ri[j]
			}
		}
		return
	}
	half := n / 2
	var g errgroup.Group
	g.Go(func() error {
		Laswp(half, a, lda, k1, k2, ipiv, incx, depth+1)
		return nil
	})
	g.Go(func() error {
		Laswp(n-half, a[half:], lda, k1, k2, ipiv, incx, depth+1)
		return nil
	})
	g.Wait()
}
