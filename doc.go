// Package dynmat is a small container library: a bounds-checked dynamic
// vector and a square matrix built from a vector of row vectors, both generic
// over their element type.
//
// What is inside?
//
//   - vector/     : Vector[T]: construction, copy/move/swap, checked access,
//     scalar and element-wise arithmetic, dot product, text I/O
//   - matrix/     : Matrix[T]: rows of vector.Vector[T]; transpose, scale,
//     matrix·vector, add/sub, matrix·matrix via transpose + dot products
//   - converters/ : float64 adapters to gonum's mat.Dense and mat.VecDense
//   - examples/   : a runnable walkthrough
//
// Errors are package sentinels (ErrInvalidSize, ErrSizeMismatch,
// ErrOutOfRange, ...) matched with errors.Is. Containers are synchronous and
// unlocked; distinct instances never share storage.
//
// Quick example:
//
//	m, _ := matrix.FromSlices([][]int{{1, 2}, {3, 4}})
//	v, _ := vector.Of(1, 1)
//	y, _ := matrix.MulVec(m, v) // [3 7]
//
//	go get github.com/katalvlaran/dynmat
package dynmat
