// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The size/index/parse kinds are shared with package vector, since row-level
// work is delegated there. Only ErrNilMatrix is specific to this package.
// Wrap with matrixErrorf at the detection site; callers match via errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrInvalidSize is returned when a dimension is not in [1, MaxSize].
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrSizeMismatch indicates operands of different dimensions, a vector
	// whose length differs from the matrix dimension, or non-square input.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrOutOfRange indicates a row or column index outside [0, Size()).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrMalformedInput indicates that Scan could not parse Size()² tokens.
	ErrMalformedInput = vector.ErrMalformedInput

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// panicNilRows is raised by FromRows; wrapping nothing is a programming error.
const panicNilRows = "matrix: FromRows: rows must be non-nil"

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
