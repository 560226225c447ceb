// SPDX-License-Identifier: MIT

// Package matrix - universal kernels: Transpose, Scale, MulVec, Add, Sub, Mul.
//
// All kernels perform strict fail-fast validation, allocate one result and
// delegate row-level arithmetic to package vector. Loop orders are fixed
// (i → j), so results are deterministic.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// fromRowSlice wraps freshly built rows; rows must hold exactly len(rows) vectors.
func fromRowSlice[T any](rows []*vector.Vector[T]) (*Matrix[T], error) {
	outer, err := vector.FromSlice(rows, len(rows))
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{rows: outer}, nil
}

// Transpose returns a new matrix whose (i, j) entry is m's (j, i) entry.
// It operates on its argument, not on a receiver, so any matrix can be
// transposed.
//
// Inputs: m (non-nil).
// Returns: a fresh n×n matrix, or wrapped ErrNilMatrix.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate n×n result.
// Stage 3 (Execute): res[i][j] = m[j][i].
// Complexity: O(n²).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Allocate result
	n := m.Size()
	res, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Copy with swapped indices; errors only surface for
	// non-square input wrapped through FromRows.
	src, dst := m.rowSlice(), res.rowSlice()
	var (
		i, j int
		x    T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = src[j].At(i); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			_ = dst[i].Set(j, x) // safe: res is n×n
		}
	}

	return res, nil
}

// Scale returns a new matrix with every entry of m multiplied by s.
//
// Inputs: m (non-nil) and the scalar s.
// Returns: a fresh matrix; m is not modified.
// Implementation: one vector.MulScalar per row.
// Complexity: O(n²).
func Scale[T vector.Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	src := m.rowSlice()
	out := make([]*vector.Vector[T], len(src))
	for i, row := range src {
		scaled, err := vector.MulScalar(row, s)
		if err != nil {
			return nil, matrixErrorf(opScale, err)
		}
		out[i] = scaled
	}

	res, err := fromRowSlice(out)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// MulVec returns y = m·v, where y[i] is the dot product of row i with v.
//
// Inputs: m (non-nil) and v of length Size().
// Returns: a fresh vector of length Size(); wrapped ErrNilMatrix, or
// ErrSizeMismatch raised by the row dot product when v's length differs.
// Implementation: one vector.DotBuf per row sharing a single scratch buffer.
// Complexity: O(n²).
func MulVec[T vector.Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	n := m.Size()
	res, err := vector.New[T](n)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	var (
		d   T
		buf []T // dot scratch shared by every row
	)
	for i, row := range m.rowSlice() {
		if d, buf, err = vector.DotBuf(row, v, buf); err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		_ = res.Set(i, d) // safe: i < n
	}

	return res, nil
}

// Add returns the entry-wise sum a + b.
//
// Inputs: a, b of equal dimension.
// Returns: a fresh matrix, or wrapped ErrNilMatrix / ErrSizeMismatch.
// Complexity: O(n²).
func Add[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return rowWise(opAdd, a, b, vector.Add[T])
}

// Sub returns the entry-wise difference a - b.
// Complexity: O(n²).
func Sub[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return rowWise(opSub, a, b, vector.Sub[T])
}

// rowWise applies a row kernel to matching rows of a and b.
// Stage 1 (Validate): non-nil, same dimension.
// Stage 2 (Execute): out[i] = op(a[i], b[i]).
func rowWise[T any](
	tag string,
	a, b *Matrix[T],
	op func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	ar, br := a.rowSlice(), b.rowSlice()
	out := make([]*vector.Vector[T], len(ar))
	for i := range ar {
		row, err := op(ar[i], br[i])
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
		out[i] = row
	}

	res, err := fromRowSlice(out)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// Mul returns the matrix product a × b.
//
// Inputs: a, b of equal dimension.
// Returns: a fresh matrix, or wrapped ErrNilMatrix / ErrSizeMismatch.
// Stage 1 (Validate): non-nil, same dimension.
// Stage 2 (Prepare): bt = Transpose(b), so column j of b is row j of bt.
// Stage 3 (Execute): res[i][j] = Dot(a[i], bt[j]).
// Complexity: O(n³) time, O(n²) extra memory for bt.
func Mul[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: Validate inputs
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: One transpose up front instead of per-column extraction
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.Size()
	res, err := New[T](n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Row·row dot products
	ar, btr, rr := a.rowSlice(), bt.rowSlice(), res.rowSlice()
	var (
		i, j int
		d    T
		buf  []T // dot scratch shared by all n² products
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, buf, err = vector.DotBuf(ar[i], btr[j], buf); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			_ = rr[i].Set(j, d) // safe: res is n×n
		}
	}

	return res, nil
}
