// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic plus the dot product for numeric vectors.
//   - Every kernel validates first, allocates one result, then runs a single
//     fixed-order loop. Operands are never mutated.
//
// Fast paths:
//   - float64 Dot routes the pairwise products through algo-vecmath's
//     MulBlock kernel. Everything else uses the generic loop.
//
// Accumulation:
//   - Dot accumulates in T itself, left to right, so float and wide-integer
//     vectors are not truncated by a narrower accumulator.

package vector

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types that support vector arithmetic.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opDotBuf    = "DotBuf"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
)

// validateOperand rejects nil and moved-from vectors.
func validateOperand[T any](v *Vector[T]) error {
	if v == nil {
		return ErrNilVector
	}
	if v.sz == 0 {
		return ErrInvalidSize
	}

	return nil
}

// validatePair validates both operands and requires equal lengths.
func validatePair[T any](a, b *Vector[T]) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.sz != b.sz {
		return ErrSizeMismatch
	}

	return nil
}

// alloc returns a zeroed vector of length n; n is assumed already valid.
func alloc[T any](n int) *Vector[T] {
	return &Vector[T]{sz: n, mem: make([]T, n)}
}

// AddScalar returns a new vector with s added to every element of v.
//
// Inputs: v (non-nil, non-empty) and the scalar s.
// Returns: a fresh vector, or wrapped ErrNilVector / ErrInvalidSize.
// Complexity: O(n).
func AddScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateOperand(v); err != nil {
		return nil, vectorErrorf(opAddScalar, err)
	}
	res := alloc[T](v.sz)
	for i := 0; i < v.sz; i++ {
		res.mem[i] = v.mem[i] + s
	}

	return res, nil
}

// SubScalar returns a new vector with s subtracted from every element of v.
// Complexity: O(n).
func SubScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateOperand(v); err != nil {
		return nil, vectorErrorf(opSubScalar, err)
	}
	res := alloc[T](v.sz)
	for i := 0; i < v.sz; i++ {
		res.mem[i] = v.mem[i] - s
	}

	return res, nil
}

// MulScalar returns a new vector with every element of v multiplied by s.
// Complexity: O(n).
func MulScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := validateOperand(v); err != nil {
		return nil, vectorErrorf(opMulScalar, err)
	}
	res := alloc[T](v.sz)
	for i := 0; i < v.sz; i++ {
		res.mem[i] = v.mem[i] * s
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
//
// Inputs: two vectors of equal, non-zero length.
// Returns: a fresh vector, or wrapped ErrNilVector / ErrInvalidSize /
// ErrSizeMismatch. Operands are never padded or truncated.
// Stage 1 (Validate): non-nil operands of equal length.
// Stage 2 (Prepare): allocate the result.
// Stage 3 (Execute): single i-loop.
// Complexity: O(n).
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	res := alloc[T](a.sz)
	// Single pass, fixed order.
	for i := 0; i < a.sz; i++ {
		res.mem[i] = a.mem[i] + b.mem[i]
	}

	return res, nil
}

// Sub returns the element-wise difference a - b.
// Complexity: O(n).
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	res := alloc[T](a.sz)
	for i := 0; i < a.sz; i++ {
		res.mem[i] = a.mem[i] - b.mem[i]
	}

	return res, nil
}

// Dot returns the sum of pairwise products of a and b.
//
// Inputs: two non-nil vectors of equal, non-zero length.
// Returns: the dot product, or ErrNilVector / ErrInvalidSize / ErrSizeMismatch.
// The accumulator has type T; see the package notes on accumulation.
// Complexity: O(n). The float64 path allocates one scratch slice per call;
// use DotBuf in loops.
func Dot[T Number](a, b *Vector[T]) (T, error) {
	sum, _, err := dot(opDot, a, b, nil)

	return sum, err
}

// DotBuf is Dot with a caller-owned scratch buffer for the float64 kernel.
// buf is grown when its capacity is below Len() and returned for reuse, so a
// caller running many dot products of one length allocates once.
// Other element types never touch buf and get it back unchanged.
//
// Inputs: as Dot, plus buf (may be nil).
// Returns: the dot product, the buffer to pass next time, and an error.
// Complexity: O(n).
func DotBuf[T Number](a, b *Vector[T], buf []T) (T, []T, error) {
	return dot(opDotBuf, a, b, buf)
}

// dot is the shared kernel behind Dot and DotBuf.
// Stage 1 (Validate): non-nil operands of equal length.
// Stage 2 (Execute): float64 products via vecmath.MulBlock into buf, then a
// left-to-right sum; other types use the generic loop.
func dot[T Number](tag string, a, b *Vector[T], buf []T) (T, []T, error) {
	var sum T
	// Stage 1: Validate operands
	if err := validatePair(a, b); err != nil {
		return sum, buf, vectorErrorf(tag, err)
	}

	// Stage 2a: float64 fast path
	if af, ok := any(a.mem).([]float64); ok {
		if cap(buf) < a.sz {
			buf = make([]T, a.sz)
		}
		buf = buf[:a.sz]
		vecmath.MulBlock(any(buf).([]float64), af, any(b.mem).([]float64))
		for _, p := range buf { // left-to-right keeps results reproducible
			sum += p
		}

		return sum, buf, nil
	}

	// Stage 2b: generic loop
	for i := 0; i < a.sz; i++ {
		sum += a.mem[i] * b.mem[i]
	}

	return sum, buf, nil
}
