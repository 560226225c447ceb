// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T vector.Number](n int) (*Matrix[T], error) {
	I, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1) // safe after shape validation
	}

	return I, nil
}

// Sum is an alias for Add: entry-wise a + b.
func Sum[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: entry-wise a − b.
func Diff[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: s·m.
func ScaleBy[T vector.Number](m *Matrix[T], s T) (*Matrix[T], error) { return Scale(m, s) }

// MatVecMul is an alias for MulVec: y = m·v.
func MatVecMul[T vector.Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	return MulVec(m, v)
}

// Symmetrize returns m + mᵀ. Composition: Transpose → Add.
// Integer element types make halving lossy, so no scaling is applied.
func Symmetrize[T vector.Number](m *Matrix[T]) (*Matrix[T], error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Add(m, mt)
}
