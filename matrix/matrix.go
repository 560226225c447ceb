// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (vector of row vectors) & safe accessors.
//
// Purpose:
//   - Hold one *vector.Vector of row vectors; every row has length Size().
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Keep value semantics explicit: Clone deep-copies rows, Assign is temp-then-swap.
//
// Complexity quicksheet:
//   - New/FromSlices/Clone/Assign: O(n²); Size/Row/At/Set: O(1); Equal: O(n²).

package matrix

import "github.com/katalvlaran/dynmat/vector"

// ---------- Limits & defaults (single source of truth) ----------

const (
	// MaxSize is the largest dimension a matrix may be constructed with.
	MaxSize = 10_000

	// DefaultSize is the conventional dimension of a default matrix.
	DefaultSize = 1
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromSlices = "FromSlices"
	ctxRow        = "Row"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxAssign     = "Assign"
)

// Matrix is a square grid of T stored as Size() row vectors of length Size().
type Matrix[T any] struct {
	rows *vector.Vector[*vector.Vector[T]]
}

// New creates an n×n matrix with every entry set to T's zero value.
// Stage 1 (Validate): n <= MaxSize; n <= 0 is rejected by the row-vector constructor.
// Stage 2 (Allocate): n fresh rows of length n.
// Complexity: O(n²).
func New[T any](n int) (*Matrix[T], error) {
	if n > MaxSize {
		return nil, matrixErrorf(ctxNew, ErrInvalidSize)
	}
	rows, err := vector.New[*vector.Vector[T]](n)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	for i := 0; i < n; i++ {
		row, err := vector.New[T](n)
		if err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
		_ = rows.Set(i, row) // safe: i < n
	}

	return &Matrix[T]{rows: rows}, nil
}

// FromRows builds a matrix holding a deep copy of rows.
//
// Squareness is the caller's contract and is not re-checked here; use
// FromSlices for validated construction. A nil rows panics.
func FromRows[T any](rows *vector.Vector[*vector.Vector[T]]) *Matrix[T] {
	if rows == nil {
		panic(panicNilRows)
	}

	return &Matrix[T]{rows: rows.CloneFunc(cloneRow[T])}
}

// FromSlices builds a matrix from a square [][]T, copying the data.
// Returns ErrInvalidSize for an empty or oversized grid and ErrSizeMismatch
// when any row length differs from the number of rows.
func FromSlices[T any](data [][]T) (*Matrix[T], error) {
	if err := ValidateSquare(data); err != nil {
		return nil, matrixErrorf(ctxFromSlices, err)
	}
	n := len(data)
	rows, err := vector.New[*vector.Vector[T]](n)
	if err != nil {
		return nil, matrixErrorf(ctxFromSlices, err)
	}
	for i := 0; i < n; i++ {
		row, err := vector.FromSlice(data[i], n)
		if err != nil {
			return nil, matrixErrorf(ctxFromSlices, err)
		}
		_ = rows.Set(i, row)
	}

	return &Matrix[T]{rows: rows}, nil
}

// cloneRow deep-copies a single row.
func cloneRow[T any](r *vector.Vector[T]) *vector.Vector[T] { return r.Clone() }

// Size returns the dimension n of an n×n matrix. A nil matrix has size 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.rows.Len()
}

// Row returns row i by reference; edits through it are visible in m.
// Column j of row i is then Row(i).At(j).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	row, err := m.rows.At(i)
	if err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}

	return row, nil
}

// At returns the entry at (i, j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, err)
	}
	x, err := row.At(j)
	if err != nil {
		return x, matrixErrorf(ctxAt, err)
	}

	return x, nil
}

// Set assigns x to the entry at (i, j).
func (m *Matrix[T]) Set(i, j int, x T) error {
	row, err := m.Row(i)
	if err != nil {
		return matrixErrorf(ctxSet, err)
	}
	if err = row.Set(j, x); err != nil {
		return matrixErrorf(ctxSet, err)
	}

	return nil
}

// Clone returns a deep copy: new row storage and new rows.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil || m.rows == nil {
		return nil
	}

	return &Matrix[T]{rows: m.rows.CloneFunc(cloneRow[T])}
}

// Assign replaces m's contents with a deep copy of src.
// The copy is built first and swapped in afterwards, so m is untouched on
// failure. Self-assignment is a no-op.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	vector.Swap(m.rows, tmp.rows)

	return nil
}

// rowSlice returns the row pointers in order. Rows are shared, not copied.
func (m *Matrix[T]) rowSlice() []*vector.Vector[T] {
	return m.rows.ToSlice()
}

// Equal reports whether a and b have the same dimension and equal rows.
// A matrix is always equal to itself.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	return vector.EqualFunc(a.rows, b.rows, vector.Equal[T])
}
