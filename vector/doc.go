// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a bounds-checked, value-semantic,
// fixed-length container generic over its element type.
//
// The vector package provides:
//
//   - Construction with strict size validation (New, FromSlice, Of).
//   - Explicit ownership helpers: Clone (copy), Move (transfer), Assign
//     (temporary-then-swap copy assignment), AssignMove and Swap.
//   - Bounds-checked access: At/Set by value and Elem by reference.
//   - Arithmetic for numeric element types: scalar Add/Sub/Mul, element-wise
//     Add/Sub and Dot. Arithmetic never mutates its operands.
//   - Whitespace-delimited text I/O via Scan and WriteTo.
//
// Every recoverable failure is reported as one of the package sentinels
// (ErrInvalidSize, ErrSizeMismatch, ErrOutOfRange, ErrNilVector,
// ErrMalformedInput), wrapped with the operation name; match them with
// errors.Is. Broken preconditions on raw-buffer construction panic instead.
//
// Vectors are not safe for concurrent mutation; distinct vectors never share
// storage, so using different instances from different goroutines is fine.
package vector
