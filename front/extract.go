// Package front implements read-only dense sub-block extraction over a
// sparse.Store, producing the F11/F12/F21 tiles of a front and the
// sparse-times-dense multiply used by randomized compression. All dense
// buffers here are row-major flat slices with an explicit leading
// dimension (stride), the layout the dense stage (rblas, gonum's
// blas64.General) uses.
package front

import (
	"sort"

	"github.com/ajroetker/sparsekernel/sparse"
)

// ExtractF11Block copies the separator×separator tile: for each row r
// in [row, min(row+nr, n)), the entries with column in [col, col+nc)
// are copied into F (row-major, stride ldF). F is assumed pre-zeroed.
// Exploits per-row sorted column order to locate the starting column
// with a binary search and break once past the requested range.
func ExtractF11Block[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], F []S, ldF, row, nr, col, nc int) {
	hiRow := min(row+nr, store.N)
	for r := row; r < hiRow; r++ {
		lo, hi := int(store.Ptr[r]), int(store.Ptr[r+1])
		if lo == hi {
			continue
		}
		rowInd := store.Ind[lo:hi]
		start := lo + sort.Search(hi-lo, func(k int) bool { return int(rowInd[k]) >= col })
		for k := start; k < hi; k++ {
			c := int(store.Ind[k])
			if c >= col+nc {
				break
			}
			F[(r-row)*ldF+(c-col)] = store.Val[k]
		}
	}
}

// ExtractF12Block copies the separator×update tile: target columns are
// the strictly increasing set upd[0:nc], merge-scanned against each
// row's column list.
func ExtractF12Block[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], F []S, ldF, row, nr int, upd []int, nc int) {
	hiRow := min(row+nr, store.N)
	for r := row; r < hiRow; r++ {
		lo, hi := int(store.Ptr[r]), int(store.Ptr[r+1])
		k := lo
		for j := 0; j < nc && k < hi; j++ {
			target := upd[j]
			for k < hi && int(store.Ind[k]) < target {
				k++
			}
			if k < hi && int(store.Ind[k]) == target {
				F[(r-row)*ldF+j] = store.Val[k]
			}
		}
	}
}

// ExtractF21Block copies the update×separator tile: rows are
// upd[i0:i0+nr], columns are the contiguous range [col, col+nc).
func ExtractF21Block[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], F []S, ldF, i0, nr, col, nc int, upd []int) {
	for i := 0; i < nr; i++ {
		r := upd[i0+i]
		lo, hi := int(store.Ptr[r]), int(store.Ptr[r+1])
		if lo == hi {
			continue
		}
		rowInd := store.Ind[lo:hi]
		start := lo + sort.Search(hi-lo, func(k int) bool { return int(rowInd[k]) >= col })
		for k := start; k < hi; k++ {
			c := int(store.Ind[k])
			if c >= col+nc {
				break
			}
			F[i*ldF+(c-col)] = store.Val[k]
		}
	}
}

// ExtractSeparator performs the general (row-set, column-set)
// extraction used to build boundary blocks: for each row gr in rows,
// let [cmin,cmax] be that row's column range (empty rows are skipped
// entirely); for each gc in cols with gc in [cmin,cmax] and
// (gr < sepEnd or gc < sepEnd), write the matching value. rows and
// cols must each be sorted ascending; depth selects sequential
// execution at depth 0 versus a goroutine-per-half split of the row
// set otherwise.
func ExtractSeparator[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], sepEnd int, rows, cols []int, B []S, ldB, depth int) {
	if depth > 0 && len(rows) > 1 {
		mid := len(rows) / 2
		done := make(chan struct{})
		go func() {
			ExtractSeparator(store, sepEnd, rows[:mid], cols, B, ldB, depth-1)
			close(done)
		}()
		ExtractSeparator(store, sepEnd, rows[mid:], cols, extractOffset(B, mid, ldB), ldB, depth-1)
		<-done
		return
	}
	for i, gr := range rows {
		lo, hi := int(store.Ptr[gr]), int(store.Ptr[gr+1])
		if lo == hi {
			continue
		}
		cmin, cmax := int(store.Ind[lo]), int(store.Ind[hi-1])
		pos := lo
		for k, gc := range cols {
			if gc < cmin || gc > cmax {
				continue
			}
			if !(gr < sepEnd || gc < sepEnd) {
				continue
			}
			for pos < hi && int(store.Ind[pos]) < gc {
				pos++
			}
			if pos < hi && int(store.Ind[pos]) == gc {
				B[i*ldB+k] = store.Val[pos]
			}
		}
	}
}

func extractOffset[S sparse.Scalar](B []S, rowOffset, ldB int) []S {
	return B[rowOffset*ldB:]
}
