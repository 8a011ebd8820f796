package rblas

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Getrf computes an LU factorization with partial pivoting of the
// m-by-n row-major matrix A (row stride lda), recursively factoring a
// column panel of width min(m, n/2), applying its pivots to the
// trailing columns, solving the unit-lower-triangular update and, if
// rows remain, updating and recursing into the Schur complement. The
// result is a drop-in recursive replacement for a single getrf call. ipiv is
// 0-indexed and, like gonum's lapack64.Getrf, gives local row-swap
// targets meant to be applied in order via Laswp. info is 0 on success
// or 1+the column at which a zero pivot was found; the rest of the
// factorization is abandoned. col tracks the caller's column offset so
// info reports a global column index; pass 0 at the top call.
func Getrf[S Scalar](m, n int, a []S, lda int, ipiv []int, depth, col int) (info int) {
	if depth >= TaskRecursionCutoffLevel || n <= 1 {
		info = getrfLeaf(m, n, a, lda, ipiv)
		if info > 0 {
			info += col
		}
		return info
	}
	k := min(m, n/2)
	if info = Getrf(m, k, a, lda, ipiv, depth, col); info != 0 {
		return info
	}
	Laswp(n-k, a[k:], lda, 0, k-1, ipiv, 1, depth)
	Trsm(Left, Lower, NoTrans, Unit, k, n-k, one[S](), a, lda, a[k:], lda, depth)
	if m > k {
		Gemm(NoTrans, NoTrans, m-k, n-k, k, negOne[S](), a[k*lda:], lda, a[k:], lda, one[S](), a[k*lda+k:], lda, depth)
		if info = Getrf(m-k, n-k, a[k*lda+k:], lda, ipiv[k:], depth, col+k); info != 0 {
			return info
		}
		sub := min(m-k, n-k)
		Laswp(k, a[k*lda:], lda, 0, sub-1, ipiv[k:], 1, depth)
		for i := 0; i < sub; i++ {
			ipiv[k+i] += k
		}
	}
	return 0
}

// getrfLeaf delegates to lapack64 for float64; gonum ships no
// single-precision or complex LU, so the other scalar kinds use an
// unblocked right-looking getf2 with partial pivoting. Failure returns
// 1 plus the first zero-pivot column (the lapack64 path can only
// report n, since gonum's wrapper collapses the column into a bool).
func getrfLeaf[S Scalar](m, n int, a []S, lda int, ipiv []int) int {
	if af, ok := any(a).([]float64); ok {
		if !lapack64.Getrf(blas64.General{Rows: m, Cols: n, Data: af, Stride: lda}, ipiv[:min(m, n)]) {
			return n
		}
		return 0
	}
	return getf2(m, n, a, lda, ipiv)
}

func getf2[S Scalar](m, n int, a []S, lda int, ipiv []int) int {
	info := 0
	for j := 0; j < min(m, n); j++ {
		p := j
		best := scalarAbs(a[j*lda+j])
		for i := j + 1; i < m; i++ {
			if v := scalarAbs(a[i*lda+j]); v > best {
				best, p = v, i
			}
		}
		ipiv[j] = p
		if best == 0 {
			if info == 0 {
				info = j + 1
			}
			continue
		}
		if p != j {
			rj, rp := a[j*lda:j*lda+n], a[p*lda:p*lda+n]
			for k := 0; k < n; k++ {
				rj[k], rp[k] = rp[k], rj[k]
			}
		}
		piv := a[j*lda+j]
		for i := j + 1; i < m; i++ {
			l := a[i*lda+j] / piv
			a[i*lda+j] = l
			for k := j + 1; k < n; k++ {
				a[i*lda+k] -= l * a[j*lda+k]
			}
		}
	}
	return info
}

// Getrs solves A*X = B given the LU factorization (a, ipiv) produced
// by Getrf, overwriting B with X. Only trans=NoTrans is implemented;
// anything else panics. B is row-major m-by-n (row stride ldb); a
// single right-hand side (n==1) takes the vector path (two Trsv),
// otherwise the block path (Laswp then two Trsm).
func Getrs[S Scalar](trans Trans, m, n int, a []S, lda int, ipiv []int, b []S, ldb int, depth int) {
	if trans != NoTrans {
		panic("rblas: getrs: only NoTrans is supported")
	}
	if n == 1 {
		Laswp(1, b, ldb, 0, m-1, ipiv, 1, depth)
		Trsv(Lower, NoTrans, Unit, m, a, lda, b, ldb, depth)
		Trsv(Upper, NoTrans, NonUnit, m, a, lda, b, ldb, depth)
		return
	}
	Laswp(n, b, ldb, 0, m-1, ipiv, 1, depth)
	Trsm(Left, Lower, NoTrans, Unit, m, n, one[S](), a, lda, b, ldb, depth)
	Trsm(Left, Upper, NoTrans, NonUnit, m, n, one[S](), a, lda, b, ldb, depth)
}
