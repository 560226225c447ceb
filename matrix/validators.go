// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size checks here.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Size).
//  - Every failure wraps a package sentinel, so callers match with errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to keep sentinel violations labeled the same way.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix and its row storage are present.
//
// Inputs: m (may be nil).
// Returns: nil, or wrapped ErrNilMatrix when m or its rows are nil.
// Complexity: O(1).
// Notes: first step of every composite validation.
func ValidateNotNil[T any](m *Matrix[T]) error {
	// A zero Matrix value has no rows either; both are "nil" to callers.
	if m == nil || m.rows == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil with equal dimensions.
//
// Inputs: two matrices of the same element type.
// Returns: nil, wrapped ErrNilMatrix, or wrapped ErrSizeMismatch.
// Complexity: O(1).
// Notes: used by Add/Sub/Mul before any allocation.
func ValidateSameSize[T any](a, b *Matrix[T]) error {
	// Stage 1: both operands present
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	// Stage 2: dimensions agree
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameSize", ErrSizeMismatch)
	}

	return nil
}

// ValidateDimension ensures 1 <= n <= MaxSize.
//
// Returns: nil or wrapped ErrInvalidSize.
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n <= 0 || n > MaxSize {
		return validatorErrorf("ValidateDimension", ErrInvalidSize)
	}

	return nil
}

// ValidateSquare ensures data is an n×n grid with a valid dimension n.
//
// Inputs: data, a row-major [][]T.
// Returns: wrapped ErrInvalidSize for an empty or oversized grid, or
// wrapped ErrSizeMismatch naming the first row whose length is not n.
// Complexity: O(n).
func ValidateSquare[T any](data [][]T) error {
	// The row count fixes the dimension.
	n := len(data)
	if err := ValidateDimension(n); err != nil {
		return err
	}

	// Every row must match it.
	for i := range data {
		if len(data[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", i), ErrSizeMismatch)
		}
	}

	return nil
}
