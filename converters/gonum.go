// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

const (
	opVectorToVecDense   = "VectorToVecDense"
	opVectorFromVecDense = "VectorFromVecDense"
	opMatrixToDense      = "MatrixToDense"
	opMatrixFromDense    = "MatrixFromDense"
)

// convErrorf wraps an underlying error with the converter tag.
func convErrorf(tag string, err error) error {
	return fmt.Errorf("converters.%s: %w", tag, err)
}

// VectorToVecDense copies v into a new *mat.VecDense of the same length.
func VectorToVecDense(v *vector.Vector[float64]) (*mat.VecDense, error) {
	if v == nil {
		return nil, convErrorf(opVectorToVecDense, vector.ErrNilVector)
	}
	if v.Len() == 0 {
		return nil, convErrorf(opVectorToVecDense, vector.ErrInvalidSize)
	}

	return mat.NewVecDense(v.Len(), v.ToSlice()), nil
}

// VectorFromVecDense copies any gonum vector into a new vector.Vector.
// Length limits follow vector.New.
func VectorFromVecDense(x mat.Vector) (*vector.Vector[float64], error) {
	if x == nil {
		return nil, convErrorf(opVectorFromVecDense, vector.ErrNilVector)
	}
	n := x.Len()
	v, err := vector.New[float64](n)
	if err != nil {
		return nil, convErrorf(opVectorFromVecDense, err)
	}
	for i := 0; i < n; i++ {
		_ = v.Set(i, x.AtVec(i)) // safe: i < n
	}

	return v, nil
}

// MatrixToDense copies m into a new n×n *mat.Dense (row-major).
func MatrixToDense(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf(opMatrixToDense, err)
	}
	n := m.Size()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, convErrorf(opMatrixToDense, err)
		}
		if row.Len() != n {
			return nil, convErrorf(opMatrixToDense, matrix.ErrSizeMismatch)
		}
		data = append(data, row.ToSlice()...)
	}

	return mat.NewDense(n, n, data), nil
}

// MatrixFromDense copies a square gonum matrix into a new matrix.Matrix.
// A non-square input fails with matrix.ErrSizeMismatch; dimension limits
// follow matrix.New.
func MatrixFromDense(d mat.Matrix) (*matrix.Matrix[float64], error) {
	if d == nil {
		return nil, convErrorf(opMatrixFromDense, matrix.ErrNilMatrix)
	}
	r, c := d.Dims()
	if r != c {
		return nil, convErrorf(opMatrixFromDense, matrix.ErrSizeMismatch)
	}
	m, err := matrix.New[float64](r)
	if err != nil {
		return nil, convErrorf(opMatrixFromDense, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, d.At(i, j)) // safe: m is r×r
		}
	}

	return m, nil
}
