// Package converters provides two-way adapters between dynmat containers and
// gonum's float64 linear-algebra types:
//   - vector.Vector[float64] <-> mat.VecDense
//   - matrix.Matrix[float64] <-> mat.Dense
//
// Data is copied in both directions; the results never alias their source.
// Use converters to hand dynmat values to gonum routines (factorizations,
// solvers) and to bring the results back.
package converters
