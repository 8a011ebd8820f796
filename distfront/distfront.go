// Package distfront is the distributed-memory counterpart of
// front.FrontMultiply. The BLACS-grid redistribution and addition
// primitives (pgemr2d, pgeadd) are injected through Redistributor2D,
// so this package never links against a ScaLAPACK binding directly;
// it only fixes the calling contract.
package distfront

import (
	"sort"

	"github.com/ajroetker/sparsekernel/sparse"
)

// Redistributor2D is the narrow adaptor to the external BLACS-grid
// primitives. ToColumnCyclic redistributes a 2D block-cyclic matrix to a
// 1D column-cyclic layout with block size equal to the matrix height (so
// each column resides entirely on one process column); FromColumnCyclic
// is its inverse. PGEAdd adds alpha*src into dst for a single row,
// standing in for a single pgeadd call.
type Redistributor2D[S sparse.Scalar] interface {
	ToColumnCyclic(m2d [][]S) (col1d [][]S)
	FromColumnCyclic(col1d [][]S) (m2d [][]S)
	PGEAdd(dst []S, src []S, alpha S)
}

// FrontMultiply2D is the distributed counterpart of front.FrontMultiply.
// R, Srow and Scol are first redistributed from their native 2D
// block-cyclic layout to 1D column-cyclic, so the inner loop never
// communicates; the same per-row merge scan that front.FrontMultiply
// performs locally then turns each scalar multiply into a single-row
// pgeadd; the results are redistributed back at the end.
func FrontMultiply2D[S sparse.Scalar, I sparse.Index](
	store *sparse.Store[S, I],
	slo, shi int,
	upd []int,
	redist Redistributor2D[S],
	R2d, Srow2d, Scol2d [][]S,
) (Srow2dOut, Scol2dOut [][]S) {
	R := redist.ToColumnCyclic(R2d)
	Srow := redist.ToColumnCyclic(Srow2d)
	Scol := redist.ToColumnCyclic(Scol2d)

	dimSep := shi - slo
	pos := func(c int) (idx int, isUpd bool) {
		if c >= slo && c < shi {
			return c - slo, false
		}
		j := sort.SearchInts(upd, c)
		return dimSep + j, true
	}
	inDomain := func(c int) bool {
		if c >= slo && c < shi {
			return true
		}
		j := sort.SearchInts(upd, c)
		return j < len(upd) && upd[j] == c
	}
	lastUpd := -1
	if len(upd) > 0 {
		lastUpd = upd[len(upd)-1]
	}
	maxCol := max(shi-1, lastUpd)

	processRow := func(r int, rIsUpd bool) {
		lo, hi := int(store.Ptr[r]), int(store.Ptr[r+1])
		for k := lo; k < hi; k++ {
			c := int(store.Ind[k])
			if c > maxCol {
				break
			}
			if !inDomain(c) {
				continue
			}
			cIdx, cIsUpd := pos(c)
			val := store.Val[k]
			if !rIsUpd {
				redist.PGEAdd(Srow[r-slo], R[c], val)
			}
			if !(rIsUpd && cIsUpd) {
				redist.PGEAdd(Scol[cIdx], R[r], val)
			}
		}
	}
	for r := slo; r < shi; r++ {
		processRow(r, false)
	}
	for _, r := range upd {
		processRow(r, true)
	}

	return redist.FromColumnCyclic(Srow), redist.FromColumnCyclic(Scol)
}
