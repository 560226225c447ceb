// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures for the vector tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

// mustOf builds a vector from elems or fails the test.
func mustOf[T any](tb testing.TB, elems ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.Of(elems...)
	if err != nil {
		tb.Fatalf("Of(%v): %v", elems, err)
	}

	return v
}

// mustNew allocates a zero vector of length n or fails the test.
func mustNew[T any](tb testing.TB, n int) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// ramp returns a float64 vector 0, 1, ..., n-1 scaled by step.
func ramp(tb testing.TB, n int, step float64) *vector.Vector[float64] {
	tb.Helper()
	v := mustNew[float64](tb, n)
	for i := 0; i < n; i++ {
		if err := v.Set(i, float64(i)*step); err != nil {
			tb.Fatalf("Set(%d): %v", i, err)
		}
	}

	return v
}

// errWriter is an io.Writer that rejects every write with err.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }
