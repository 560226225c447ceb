// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for construction and kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// mustMatrix builds a matrix from a square grid or fails the test.
func mustMatrix[T any](tb testing.TB, data [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromSlices(data)
	if err != nil {
		tb.Fatalf("FromSlices(%v): %v", data, err)
	}

	return m
}

// mustVec builds a vector from elems or fails the test.
func mustVec[T any](tb testing.TB, elems ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.Of(elems...)
	if err != nil {
		tb.Fatalf("vector.Of(%v): %v", elems, err)
	}

	return v
}

// mustIdentity returns I_n or fails the test.
func mustIdentity[T vector.Number](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	I, err := matrix.NewIdentity[T](n)
	if err != nil {
		tb.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// grid returns an n×n matrix with entry (i, j) = f(i, j).
func grid[T any](tb testing.TB, n int, f func(i, j int) T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, f(i, j)); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// toSlices reads m back into a [][]T for compact assertions.
func toSlices[T any](tb testing.TB, m *matrix.Matrix[T]) [][]T {
	tb.Helper()
	n := m.Size()
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			tb.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = row.ToSlice()
	}

	return out
}
