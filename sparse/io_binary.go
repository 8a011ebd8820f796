package sparse

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteBinary writes the fixed little-endian binary CSR format:
//
//	byte 0   : 'R'
//	byte 1   : '4' or '8'          (index width in bytes)
//	byte 2   : 's'|'d'|'c'|'z'     (scalar kind)
//	n, n, nnz as index_t
//	ptr[0..n+1], ind[0..nnz], val[0..nnz]
//
// Complex values are stored as interleaved (Re,Im) pairs. Write errors
// are returned alongside however many bytes made it out.
func (s *Store[S, I]) WriteBinary(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	header := []byte{'R', indexWidthBytes[I](), scalarTag[S]()}
	if _, err := cw.Write(header); err != nil {
		return cw.n, fmt.Errorf("sparse: writing binary header: %w", err)
	}
	n := I(s.N)
	nnz := I(s.NNZ)
	for _, v := range []I{n, n, nnz} {
		if err := binary.Write(cw, binary.LittleEndian, v); err != nil {
			return cw.n, fmt.Errorf("sparse: writing binary dims: %w", err)
		}
	}
	if err := binary.Write(cw, binary.LittleEndian, s.Ptr); err != nil {
		return cw.n, fmt.Errorf("sparse: writing binary ptr: %w", err)
	}
	if err := binary.Write(cw, binary.LittleEndian, s.Ind); err != nil {
		return cw.n, fmt.Errorf("sparse: writing binary ind: %w", err)
	}
	if err := binary.Write(cw, binary.LittleEndian, s.Val); err != nil {
		return cw.n, fmt.Errorf("sparse: writing binary val: %w", err)
	}
	return cw.n, nil
}

// ReadBinary reads the fixed binary CSR format, rejecting on sentinel,
// index-width, or scalar-kind mismatch against the caller's S and I.
func ReadBinary[S Scalar, I Index](r io.Reader) (*Store[S, I], error) {
	var header [3]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("sparse: reading binary header: %w", err)
	}
	if header[0] != 'R' {
		return nil, ErrBadSentinel
	}
	if header[1] != indexWidthBytes[I]() {
		return nil, fmt.Errorf("%w: file uses %c bytes per index", ErrIndexWidthMatch, header[1])
	}
	if header[2] != scalarTag[S]() {
		return nil, fmt.Errorf("%w: file scalar kind is %c", ErrScalarKindMatch, header[2])
	}
	var n1, n2, nnz I
	for _, v := range []*I{&n1, &n2, &nnz} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("sparse: reading binary dims: %w", err)
		}
	}
	n := int(n1)
	s := New[S, I](n, int(nnz))
	s.SymmetricSparsity = false
	if err := binary.Read(r, binary.LittleEndian, s.Ptr); err != nil {
		return nil, fmt.Errorf("sparse: reading binary ptr: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, s.Ind); err != nil {
		return nil, fmt.Errorf("sparse: reading binary ind: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, s.Val); err != nil {
		return nil, fmt.Errorf("sparse: reading binary val: %w", err)
	}
	return s, nil
}

// countingWriter tracks bytes written so WriteBinary can report a count
// on both success and failure.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
