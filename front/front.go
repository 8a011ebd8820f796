package front

import "github.com/ajroetker/sparsekernel/sparse"

// Front is the dense panel associated with one separator: F11
// (separator x separator), F12 (separator x update) and F21
// (update x separator), all row-major with leading dimensions DimSep,
// DimUpd and DimSep respectively. Upd is the strictly increasing list
// of row/column indices in the parent's update domain. A Front is a
// value object: it is materialized per separator during factorization
// and not owned persistently.
type Front[S sparse.Scalar] struct {
	DimSep int
	DimUpd int
	Upd    []int
	F11    []S
	F12    []S
	F21    []S
}

// NewFront extracts the three tiles of the front for the separator
// occupying rows/columns [sepBegin, sepEnd) with update set upd. The
// tiles are freshly allocated and zero-initialized, as the extraction
// primitives require.
func NewFront[S sparse.Scalar, I sparse.Index](store *sparse.Store[S, I], sepBegin, sepEnd int, upd []int) *Front[S] {
	dimSep := sepEnd - sepBegin
	dimUpd := len(upd)
	f := &Front[S]{
		DimSep: dimSep,
		DimUpd: dimUpd,
		Upd:    upd,
		F11:    make([]S, dimSep*dimSep),
		F12:    make([]S, dimSep*dimUpd),
		F21:    make([]S, dimUpd*dimSep),
	}
	ExtractF11Block(store, f.F11, dimSep, sepBegin, dimSep, sepBegin, dimSep)
	if dimUpd > 0 {
		ExtractF12Block(store, f.F12, dimUpd, sepBegin, dimSep, upd, dimUpd)
		ExtractF21Block(store, f.F21, dimSep, 0, dimUpd, sepBegin, dimSep, upd)
	}
	return f
}
