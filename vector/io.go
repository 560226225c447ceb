// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Whitespace-delimited text I/O.
//   - Write: every element formatted with %v and followed by one space, no newline.
//   - Read: exactly Len() tokens parsed with fmt.Fscan into the element type.

package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	opScan    = "Scan"
	opWriteTo = "WriteTo"

	_fmtElem = "%v "
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Vector[int])(nil)
	_ fmt.Stringer = (*Vector[int])(nil)
)

// RuneScanner returns r unchanged if it already supports UnreadRune, otherwise
// wraps it in a bufio.Reader. fmt.Fscan may swallow one rune past a token on
// plain readers, so callers performing several scans on one stream should
// wrap once and reuse the result.
func RuneScanner(r io.Reader) io.Reader {
	if _, ok := r.(io.RuneScanner); ok {
		return r
	}

	return bufio.NewReader(r)
}

// Scan reads Len() whitespace-delimited tokens from r into v, in index order.
// Elements are parsed into a temporary first; on failure v is left unchanged.
// Errors wrap ErrMalformedInput together with the underlying scan error.
func (v *Vector[T]) Scan(r io.Reader) error {
	if err := validateOperand(v); err != nil {
		return vectorErrorf(opScan, err)
	}
	r = RuneScanner(r)

	tmp := make([]T, v.sz)
	for i := 0; i < v.sz; i++ {
		if _, err := fmt.Fscan(r, &tmp[i]); err != nil {
			return fmt.Errorf("Vector.Scan(%d): %w: %w", i, ErrMalformedInput, err)
		}
	}
	copy(v.mem, tmp)

	return nil
}

// WriteTo writes the elements of v to w, each followed by a single space.
// It returns the number of bytes written.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	if v == nil {
		return 0, vectorErrorf(opWriteTo, ErrNilVector)
	}
	var total int64
	for i := 0; i < v.sz; i++ {
		n, err := fmt.Fprintf(w, _fmtElem, v.mem[i])
		total += int64(n)
		if err != nil {
			return total, vectorErrorf(opWriteTo, err)
		}
	}

	return total, nil
}

// String implements fmt.Stringer using the WriteTo format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_, _ = v.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}
