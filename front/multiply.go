package front

import (
	"sort"

	"github.com/ajroetker/sparsekernel/sparse"
)

// FrontMultiply computes the simultaneous sparse matvecs
//
//	Sr <- A_sep * R
//	Sc <- A_sepᵀ * R
//
// where A_sep is the submatrix restricted to (separator rows [slo,shi)
// union upd rows, separator cols [slo,shi) union upd cols). Both sides
// accumulate on every match, making this a structurally symmetric
// operator regardless of numeric symmetry. R is indexed by the
// matrix's global row/column numbering (R[c] is row c of R, a slice of
// nrhs entries).
//
// Sr has shi-slo rows (the separator rows). Sc has (shi-slo)+len(upd)
// rows, separator rows first then upd rows in upd's order. A match
// (r,c) contributes to Sr only when r is a separator row; it
// contributes to Sc unless both r and c are upd rows; that diagonal
// block belongs to the parent front's trailing update, not this one.
func FrontMultiply[S sparse.Scalar, I sparse.Index](
	store *sparse.Store[S, I],
	slo, shi int,
	upd []int,
	R [][]S,
	Sr [][]S,
	Sc [][]S,
) {
	dimSep := shi - slo
	nrhs := 0
	if len(R) > 0 {
		nrhs = len(R[0])
	}
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
				rIdx := r - slo
				for j := 0; j < nrhs; j++ {
					Sr[rIdx][j] += val * R[c][j]
				}
			}
			if !(rIsUpd && cIsUpd) {
				for j := 0; j < nrhs; j++ {
					Sc[cIdx][j] += val * R[r][j]
				}
			}
		}
	}

	for r := slo; r < shi; r++ {
		processRow(r, false)
	}
	for _, r := range upd {
		processRow(r, true)
	}
}
