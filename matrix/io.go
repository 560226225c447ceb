// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-per-line text I/O built on the vector text format.
//   - Write: each row as vector text ("a b c ") followed by '\n'.
//   - Read: Size() rows, each read as a vector (Size()² tokens in total).

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynmat/vector"
)

const (
	opScan    = "Scan"
	opWriteTo = "WriteTo"

	_fmtRowEnd = "\n"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Matrix[int])(nil)
	_ fmt.Stringer = (*Matrix[int])(nil)
)

// Scan reads Size() rows from r into m.
//
// Stage 1 (Parse): every row is read into a clone; m is unchanged on failure.
// Stage 2 (Commit): each parsed row's storage moves into the existing row
// object, so references obtained earlier from Row keep tracking m.
// Complexity: O(n²).
func (m *Matrix[T]) Scan(r io.Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScan, err)
	}
	r = vector.RuneScanner(r) // one wrapper for all rows

	// Stage 1: Parse
	parsed := m.Clone().rowSlice()
	for i, row := range parsed {
		if err := row.Scan(r); err != nil {
			return matrixErrorf(fmt.Sprintf("%s: row %d", opScan, i), err)
		}
	}

	// Stage 2: Commit in place
	for i, row := range m.rowSlice() {
		_ = row.AssignMove(parsed[i]) // safe: both non-nil
	}

	return nil
}

// WriteTo writes m row by row, each row terminated by a newline.
// It returns the number of bytes written.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opWriteTo, err)
	}
	var total int64
	for _, row := range m.rowSlice() {
		n, err := row.WriteTo(w)
		total += n
		if err != nil {
			return total, matrixErrorf(opWriteTo, err)
		}
		k, err := io.WriteString(w, _fmtRowEnd)
		total += int64(k)
		if err != nil {
			return total, matrixErrorf(opWriteTo, err)
		}
	}

	return total, nil
}

// String implements fmt.Stringer using the WriteTo format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}
