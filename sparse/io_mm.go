package sparse

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteMatrixMarket writes the Matrix Market coordinate text format: a
// header line naming real/complex and "general" symmetry, the
// dimensions, then one 1-indexed "row col val[ val]" line per entry at
// 17-digit precision.
func (s *Store[S, I]) WriteMatrixMarket(w io.Writer) error {
	field := "real"
	if isComplex[S]() {
		field = "complex"
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate %s general\n", field); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", s.N, s.N, s.NNZ); err != nil {
		return err
	}
	for r := 0; r < s.N; r++ {
		lo, hi := int(s.Ptr[r]), int(s.Ptr[r+1])
		for k := lo; k < hi; k++ {
			col := int(s.Ind[k]) + 1
			if isComplex[S]() {
				re, im := complexParts(s.Val[k])
				if _, err := fmt.Fprintf(bw, "%d %d %s %s\n", r+1, col, fmtMM(re), fmtMM(im)); err != nil {
					return err
				}
			} else {
				re, _ := complexParts(s.Val[k])
				if _, err := fmt.Fprintf(bw, "%d %d %s\n", r+1, col, fmtMM(re)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

func fmtMM(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// complexParts extracts the real and imaginary component of a scalar as
// float64, regardless of concrete width.
func complexParts[S Scalar](v S) (re, im float64) {
	switch x := any(v).(type) {
	case float32:
		return float64(x), 0
	case float64:
		return x, 0
	case complex64:
		return float64(real(x)), float64(imag(x))
	case complex128:
		return real(x), imag(x)
	default:
		panic("sparse: unsupported scalar kind")
	}
}

func makeScalar[S Scalar](re, im float64) S {
	var z S
	switch any(z).(type) {
	case float32:
		return any(float32(re)).(S)
	case float64:
		return any(re).(S)
	case complex64:
		return any(complex64(complex(re, im))).(S)
	case complex128:
		return any(complex(re, im)).(S)
	default:
		panic("sparse: unsupported scalar kind")
	}
}

type mmEntry[S Scalar, I Index] struct {
	row, col I
	val      S
}

// ReadMatrixMarket parses the Matrix Market coordinate text format,
// sorting entries lexicographically by (row, col) as loaded. Duplicate
// entries are kept as-is, not merged.
func ReadMatrixMarket[S Scalar, I Index](r io.Reader) (*Store[S, I], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMatrixMarket)
	}
	header := strings.Fields(sc.Text())
	if len(header) < 5 || header[0] != "%%MatrixMarket" || header[1] != "matrix" || header[2] != "coordinate" {
		return nil, fmt.Errorf("%w: unrecognized header %q", ErrMatrixMarket, sc.Text())
	}
	wantComplex := isComplex[S]()
	field := header[3]
	if (field == "complex") != wantComplex {
		return nil, fmt.Errorf("%w: header field %q does not match scalar kind", ErrMatrixMarket, field)
	}

	var n, nnz int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: malformed dimension line %q", ErrMatrixMarket, line)
		}
		var n2 int
		var err error
		if n, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		if n2, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		if n2 != n {
			return nil, fmt.Errorf("%w: matrix is not square (%d x %d)", ErrMatrixMarket, n, n2)
		}
		if nnz, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		break
	}

	entries := make([]mmEntry[S, I], 0, nnz)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		wantFields := 3
		if wantComplex {
			wantFields = 4
		}
		if len(fields) != wantFields {
			return nil, fmt.Errorf("%w: expected %d fields, got %q", ErrMatrixMarket, wantFields, line)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		re, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
		}
		var im float64
		if wantComplex {
			im, err = strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMatrixMarket, err)
			}
		}
		entries = append(entries, mmEntry[S, I]{
			row: I(row - 1),
			col: I(col - 1),
			val: makeScalar[S](re, im),
		})
		if len(entries) > nnz {
			return nil, fmt.Errorf("%w: more entries than declared nnz=%d", ErrMatrixMarket, nnz)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sparse: scanning Matrix Market input: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].row != entries[j].row {
			return entries[i].row < entries[j].row
		}
		return entries[i].col < entries[j].col
	})

	s := New[S, I](n, len(entries))
	rowCount := make([]int, n)
	for _, e := range entries {
		rowCount[int(e.row)]++
	}
	for r := 0; r < n; r++ {
		s.Ptr[r+1] = s.Ptr[r] + I(rowCount[r])
	}
	for i, e := range entries {
		s.Ind[i] = e.col
		s.Val[i] = e.val
	}
	return s, nil
}
