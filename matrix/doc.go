// Package matrix provides Matrix[T], a bounds-checked square matrix stored as
// a vector of row vectors.
//
// The matrix package provides:
//
//   - Construction with dimension validation (New, FromSlices, NewIdentity)
//     and an unvalidated wrapper over an existing vector of rows (FromRows).
//   - Row access by reference (Row) and element helpers (At/Set).
//   - Value semantics: Clone deep-copies every row; Assign copies into a
//     temporary and swaps it in.
//   - Kernels for numeric element types: Scale, MulVec, Add, Sub and Mul.
//     Mul transposes the right operand once and takes row·row dot products.
//   - Transpose for any element type.
//   - Row-per-line text I/O via Scan and WriteTo.
//
// Row-level work is delegated to package vector, so the vector sentinels
// (ErrInvalidSize, ErrSizeMismatch, ErrOutOfRange, ErrMalformedInput) are
// re-exported here unchanged; errors.Is works against either name.
//
// Vector-level scalar addition and subtraction are intentionally not
// forwarded: they are not matrix operations.
package matrix
