// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is. Panics are reserved for precondition
// violations on raw-buffer construction.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is zero, negative or
	// above MaxSize. Constructors validate before allocating.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrSizeMismatch indicates operands of different lengths in a binary
	// operation (Add, Sub, Dot).
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNilVector indicates that a nil *Vector was passed to an operation.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrMalformedInput indicates that Scan could not parse the expected
	// number of tokens.
	ErrMalformedInput = errors.New("vector: malformed input")
)

// Precondition panic messages. Kept as constants so tests can match them.
const (
	panicNilBuffer   = "vector: FromSlice: buffer must be non-nil"
	panicShortBuffer = "vector: FromSlice: length exceeds buffer"
)

// vectorErrorf wraps an underlying error with the given operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps ErrOutOfRange with the operation tag and offending index.
func indexErrorf(tag string, i, n int) error {
	return fmt.Errorf("Vector.%s(%d) with len %d: %w", tag, i, n, ErrOutOfRange)
}
