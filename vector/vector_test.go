// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for construction, ownership and
// access on Vector.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidSizes(t *testing.T) {
	for _, n := range []int{1, 2, 17, 1024} {
		v, err := vector.New[int](n)
		require.NoError(t, err)
		require.Equal(t, n, v.Len())
		for i := 0; i < n; i++ {
			x, err := v.At(i)
			require.NoError(t, err)
			require.Zero(t, x) // default-initialized
		}
	}
}

func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, vector.MaxSize + 1} {
		v, err := vector.New[float64](n)
		require.ErrorIs(t, err, vector.ErrInvalidSize, "size %d", n)
		require.Nil(t, v)
	}
}

func TestNew_MaxSizeAccepted(t *testing.T) {
	// Zero-width elements keep the inclusive bound cheap to exercise.
	v, err := vector.New[struct{}](vector.MaxSize)
	require.NoError(t, err)
	require.Equal(t, vector.MaxSize, v.Len())

	_, err = v.At(vector.MaxSize - 1)
	require.NoError(t, err)
	_, err = v.At(vector.MaxSize)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestNew_DefaultSize(t *testing.T) {
	v, err := vector.New[string](vector.DefaultSize)
	require.NoError(t, err)
	require.Equal(t, 1, v.Len())
}

func TestFromSlice_CopiesPrefix(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v, err := vector.FromSlice(buf, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.ToSlice())

	// The vector owns its storage: mutating the buffer has no effect.
	buf[0] = 100
	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, x)
}

func TestFromSlice_Preconditions(t *testing.T) {
	require.PanicsWithValue(t, "vector: FromSlice: buffer must be non-nil", func() {
		_, _ = vector.FromSlice[int](nil, 1)
	})
	require.PanicsWithValue(t, "vector: FromSlice: length exceeds buffer", func() {
		_, _ = vector.FromSlice([]int{1, 2}, 3)
	})

	_, err := vector.FromSlice([]int{1, 2}, 0)
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

func TestOf_Empty(t *testing.T) {
	_, err := vector.Of[int]()
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

func TestAccess_OutOfRange(t *testing.T) {
	v := mustOf(t, 1, 2, 3)

	for _, i := range []int{-1, 3, 4} {
		_, err := v.At(i)
		require.ErrorIs(t, err, vector.ErrOutOfRange, "At(%d)", i)

		_, err = v.Elem(i)
		require.ErrorIs(t, err, vector.ErrOutOfRange, "Elem(%d)", i)

		err = v.Set(i, 0)
		require.ErrorIs(t, err, vector.ErrOutOfRange, "Set(%d)", i)
	}
}

func TestElem_IsReference(t *testing.T) {
	v := mustOf(t, 1, 2, 3)
	p, err := v.Elem(1)
	require.NoError(t, err)
	*p = 20

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, x)
}

func TestClone_Independence(t *testing.T) {
	v := mustOf(t, 1.5, 2.5)
	c := v.Clone()
	require.True(t, vector.Equal(v, c))

	require.NoError(t, c.Set(0, 9))
	x, _ := v.At(0)
	require.Equal(t, 1.5, x) // original unchanged
	require.True(t, vector.NotEqual(v, c))
}

func TestCloneFunc_DeepCopiesPointers(t *testing.T) {
	inner := mustOf(t, 1, 2)
	outer := mustOf(t, inner)

	deep := outer.CloneFunc(func(x *vector.Vector[int]) *vector.Vector[int] { return x.Clone() })
	row, err := deep.At(0)
	require.NoError(t, err)
	require.NoError(t, row.Set(0, 42))

	x, _ := inner.At(0)
	require.Equal(t, 1, x)
}

func TestMove_TransfersStorage(t *testing.T) {
	v := mustOf(t, 4, 5, 6)
	want := v.Clone()

	moved := v.Move()
	require.True(t, vector.Equal(want, moved))
	require.Equal(t, 0, v.Len())

	_, err := v.At(0)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	// The husk can be reused as an assignment target.
	require.NoError(t, v.Assign(moved))
	require.True(t, vector.Equal(want, v))
	require.NoError(t, v.Set(0, 0))
	x, _ := moved.At(0)
	require.Equal(t, 4, x) // no aliasing between husk and moved-to storage
}

func TestAssign(t *testing.T) {
	dst := mustOf(t, 1)
	src := mustOf(t, 7, 8, 9)

	require.NoError(t, dst.Assign(src))
	require.True(t, vector.Equal(src, dst))

	require.NoError(t, dst.Set(0, 0))
	x, _ := src.At(0)
	require.Equal(t, 7, x)

	// Self-assignment keeps the contents.
	require.NoError(t, dst.Assign(dst))
	require.Equal(t, []int{0, 8, 9}, dst.ToSlice())

	// A nil source leaves the target intact.
	require.ErrorIs(t, dst.Assign(nil), vector.ErrNilVector)
	require.Equal(t, []int{0, 8, 9}, dst.ToSlice())
}

func TestAssignMove(t *testing.T) {
	dst := mustOf(t, 1)
	src := mustOf(t, 2, 3)

	require.NoError(t, dst.AssignMove(src))
	require.Equal(t, []int{2, 3}, dst.ToSlice())
	require.Equal(t, []int{1}, src.ToSlice())

	require.NoError(t, dst.AssignMove(dst))
	require.Equal(t, []int{2, 3}, dst.ToSlice())
}

func TestSwap(t *testing.T) {
	a := mustOf(t, "a")
	b := mustOf(t, "b", "c")

	vector.Swap(a, b)
	require.Equal(t, []string{"b", "c"}, a.ToSlice())
	require.Equal(t, []string{"a"}, b.ToSlice())

	vector.Swap(a, nil) // no-op
	require.Equal(t, 2, a.Len())
}

func TestEqual(t *testing.T) {
	a := mustOf(t, 1, 2, 3)

	tests := []struct {
		name string
		b    *vector.Vector[int]
		want bool
	}{
		{"identity", a, true},
		{"same values", mustOf(t, 1, 2, 3), true},
		{"different value", mustOf(t, 1, 2, 4), false},
		{"shorter", mustOf(t, 1, 2), false},
		{"longer", mustOf(t, 1, 2, 3, 0), false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, vector.Equal(a, tc.b))
			require.Equal(t, !tc.want, vector.NotEqual(a, tc.b))
		})
	}

	require.True(t, vector.Equal[int](nil, nil))
}

func TestNilReceiver(t *testing.T) {
	var v *vector.Vector[int]
	require.Equal(t, 0, v.Len())
	require.Nil(t, v.Clone())
	require.Nil(t, v.Move())
	require.Nil(t, v.ToSlice())

	_, err := v.At(0)
	require.ErrorIs(t, err, vector.ErrNilVector)
	require.ErrorIs(t, v.Set(0, 1), vector.ErrNilVector)
	_, err = v.Elem(0)
	require.ErrorIs(t, err, vector.ErrNilVector)
}
