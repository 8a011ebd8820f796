package sparse

import "errors"

// I/O and format mismatches surface as typed errors from the load
// routines rather than panics.
var (
	ErrBadSentinel     = errors.New("sparse: binary sentinel byte is not 'R' (CSR)")
	ErrIndexWidthMatch = errors.New("sparse: binary index width does not match caller's index type")
	ErrScalarKindMatch = errors.New("sparse: binary scalar kind does not match caller's scalar type")
	ErrMatrixMarket    = errors.New("sparse: Matrix Market parse error")
)
