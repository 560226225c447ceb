// SPDX-License-Identifier: MIT

// Package vector - Vector storage, ownership & safe accessors.
//
// Purpose:
//   - Own a contiguous buffer whose length always equals the vector size.
//   - Guarantee safety at the public surface: At/Set/Elem return errors instead of panicking.
//   - Make ownership transfers explicit: Clone copies, Move transfers, Swap exchanges.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); Len/At/Set/Elem/Move/Swap/AssignMove: O(1); Assign: O(n).

package vector

// ---------- Limits & defaults (single source of truth) ----------

const (
	// MaxSize is the largest length a vector may be constructed with.
	MaxSize = 100_000_000

	// DefaultSize is the conventional length of a default vector.
	DefaultSize = 1
)

// ---------- error context tags ----------

const (
	opNew        = "New"
	opFromSlice  = "FromSlice"
	opOf         = "Of"
	opAssign     = "Assign"
	opAssignMove = "AssignMove"
	opAt         = "At"
	opSet        = "Set"
	opElem       = "Elem"
)

// Vector is a fixed-length sequence of T with exclusive ownership of its storage.
//   - sz is the element count (1..MaxSize for every constructed vector,
//     0 only for a vector that has been moved from).
//   - mem holds exactly sz elements.
type Vector[T any] struct {
	sz  int
	mem []T
}

// validateSize reports ErrInvalidSize unless 1 <= n <= MaxSize.
func validateSize(n int) error {
	if n <= 0 || n > MaxSize {
		return ErrInvalidSize
	}

	return nil
}

// New creates a vector of the given size with every element set to T's zero value.
// Stage 1 (Validate): 1 <= size <= MaxSize.
// Stage 2 (Allocate): zero-filled backing slice.
// Complexity: O(size).
func New[T any](size int) (*Vector[T], error) {
	if err := validateSize(size); err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vector[T]{sz: size, mem: make([]T, size)}, nil
}

// FromSlice creates a vector holding a copy of the first n elements of buf.
//
// A nil buf, or n larger than len(buf), is a programming error and panics.
// An n outside [1, MaxSize] returns ErrInvalidSize.
func FromSlice[T any](buf []T, n int) (*Vector[T], error) {
	if buf == nil {
		panic(panicNilBuffer)
	}
	if err := validateSize(n); err != nil {
		return nil, vectorErrorf(opFromSlice, err)
	}
	if n > len(buf) {
		panic(panicShortBuffer)
	}

	mem := make([]T, n)
	copy(mem, buf[:n])

	return &Vector[T]{sz: n, mem: mem}, nil
}

// Of creates a vector from the given elements.
func Of[T any](elems ...T) (*Vector[T], error) {
	if len(elems) == 0 {
		return nil, vectorErrorf(opOf, ErrInvalidSize)
	}

	return FromSlice(elems, len(elems))
}

// Len returns the number of elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return v.sz
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, vectorErrorf(opAt, ErrNilVector)
	}
	if i < 0 || i >= v.sz {
		return zero, indexErrorf(opAt, i, v.sz)
	}

	return v.mem[i], nil
}

// Set assigns x to index i.
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil {
		return vectorErrorf(opSet, ErrNilVector)
	}
	if i < 0 || i >= v.sz {
		return indexErrorf(opSet, i, v.sz)
	}
	v.mem[i] = x

	return nil
}

// Elem returns a pointer to the element at index i, for in-place updates.
// The pointer stays valid until the vector's storage is moved or swapped away.
func (v *Vector[T]) Elem(i int) (*T, error) {
	if v == nil {
		return nil, vectorErrorf(opElem, ErrNilVector)
	}
	if i < 0 || i >= v.sz {
		return nil, indexErrorf(opElem, i, v.sz)
	}

	return &v.mem[i], nil
}

// ToSlice returns a copy of the elements in index order.
func (v *Vector[T]) ToSlice() []T {
	if v == nil {
		return nil
	}
	out := make([]T, v.sz)
	copy(out, v.mem)

	return out
}

// Clone returns a deep copy of v: the result owns a fresh buffer.
// Elements are copied by assignment, so pointer elements are shared;
// use CloneFunc to deep-copy those.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	mem := make([]T, v.sz)
	copy(mem, v.mem)

	return &Vector[T]{sz: v.sz, mem: mem}
}

// CloneFunc returns a copy of v with every element passed through f.
// Complexity: O(n) calls to f.
func (v *Vector[T]) CloneFunc(f func(T) T) *Vector[T] {
	if v == nil {
		return nil
	}
	mem := make([]T, v.sz)
	for i := 0; i < v.sz; i++ {
		mem[i] = f(v.mem[i])
	}

	return &Vector[T]{sz: v.sz, mem: mem}
}

// Move transfers v's storage into a new vector without copying elements.
// Afterwards v is an empty husk: Len() == 0 and every access fails with
// ErrOutOfRange. The husk may be reused as an Assign/AssignMove target.
func (v *Vector[T]) Move() *Vector[T] {
	if v == nil {
		return nil
	}
	moved := &Vector[T]{}
	Swap(moved, v)

	return moved
}

// Assign replaces v's contents with a copy of src.
// Stage 1: build the copy in a temporary.
// Stage 2: swap it into v.
// v is untouched if src is nil. Self-assignment is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == nil || src == nil {
		return vectorErrorf(opAssign, ErrNilVector)
	}
	if v == src {
		return nil
	}
	tmp := src.Clone()
	Swap(v, tmp)

	return nil
}

// AssignMove exchanges storage with src, so v takes over src's elements and
// src receives v's previous ones. No elements are copied.
func (v *Vector[T]) AssignMove(src *Vector[T]) error {
	if v == nil || src == nil {
		return vectorErrorf(opAssignMove, ErrNilVector)
	}
	Swap(v, src)

	return nil
}

// Swap exchanges size and storage of a and b in O(1).
// Swapping with nil is a no-op.
func Swap[T any](a, b *Vector[T]) {
	if a == nil || b == nil {
		return
	}
	a.sz, b.sz = b.sz, a.sz
	a.mem, b.mem = b.mem, a.mem
}

// Equal reports whether a and b have the same length and equal elements.
// A vector is always equal to itself; two nil vectors are equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.sz != b.sz {
		return false
	}
	for i := 0; i < a.sz; i++ {
		if !eq(a.mem[i], b.mem[i]) {
			return false
		}
	}

	return true
}
