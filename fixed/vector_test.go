// SPDX-License-Identifier: MIT
// Package fixed_test contains unit tests for Vector.
package fixed_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hmatrix/fixed"
	"github.com/stretchr/testify/require"
)

// assertZeroVector checks size and zero fill of a fresh Vector[T,N].
func assertZeroVector[T fixed.Element, N fixed.Dim](t *testing.T, want int) {
	t.Helper()
	v := fixed.NewVector[T, N]()
	require.Equal(t, want, v.Len())
	var zero T
	for i := 0; i < want; i++ {
		x, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, zero, x)
	}
	_, err := v.At(want) // first invalid index
	require.ErrorIs(t, err, fixed.ErrOutOfRange)
}

func TestNewVectorZeroFilled(t *testing.T) {
	t.Run("double/3", func(t *testing.T) { assertZeroVector[float64, fixed.D3](t, 3) })
	t.Run("double/0", func(t *testing.T) { assertZeroVector[float64, fixed.D0](t, 0) })
	t.Run("int/16", func(t *testing.T) { assertZeroVector[int, fixed.D16](t, 16) })
	t.Run("complex/2", func(t *testing.T) { assertZeroVector[complex128, fixed.D2](t, 2) })
}

func TestVectorZeroValueAndNil(t *testing.T) {
	var v fixed.Vector[int, fixed.D3] // usable without a constructor
	require.Equal(t, 3, v.Len())
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 0, x)
	require.Equal(t, []int{0, 0, 0}, v.Slice())

	require.NoError(t, v.Set(1, 7))
	require.Equal(t, []int{0, 7, 0}, v.Slice())

	var p *fixed.Vector[int, fixed.D3]
	require.Equal(t, 3, p.Len())
	x, err = p.At(0)
	require.NoError(t, err)
	require.Equal(t, 0, x)
	require.ErrorIs(t, p.Set(0, 1), fixed.ErrNilReceiver)
}

func TestVectorAssignment(t *testing.T) {
	v := fixed.NewVector[float64, fixed.D3]()
	require.NoError(t, v.Set(0, 1))
	require.NoError(t, v.Set(1, 2))
	require.NoError(t, v.Set(2, 3))

	cp := v.Clone()
	require.Equal(t, 3, cp.Len())
	require.Equal(t, []float64{1, 2, 3}, cp.Slice())

	// the copy is independent of the source
	require.NoError(t, cp.Set(0, 9))
	x, _ := v.At(0)
	require.Equal(t, 1.0, x)
}

func TestVectorOutOfRange(t *testing.T) {
	v := fixed.NewVector[int, fixed.D3]()
	for _, i := range []int{-1, 3, 100} {
		_, err := v.At(i)
		require.ErrorIs(t, err, fixed.ErrOutOfRange)
		require.ErrorIs(t, v.Set(i, 1), fixed.ErrOutOfRange)
	}
	_, err := v.At(3)
	require.EqualError(t, err, "Vector.At(3): fixed: index out of range")

	empty := fixed.NewVector[int, fixed.D0]()
	_, err = empty.At(0)
	require.ErrorIs(t, err, fixed.ErrOutOfRange)
}

func TestVectorOfLengthMismatch(t *testing.T) {
	_, err := fixed.VectorOf[int, fixed.D3](1, 2)
	require.ErrorIs(t, err, fixed.ErrDimensionMismatch)
	_, err = fixed.VectorOf[int, fixed.D3](1, 2, 3, 4)
	require.ErrorIs(t, err, fixed.ErrDimensionMismatch)
}

func TestVectorAdd(t *testing.T) {
	ForEachMode(t, func(t *testing.T) {
		a := MustVector[int, fixed.D3](t, 1, 2, 3)
		b := MustVector[int, fixed.D3](t, 4, 5, 6)
		require.Equal(t, []int{5, 7, 9}, a.Add(b).Slice())
		require.True(t, a.Add(b).Equal(b.Add(a))) // commutative
		require.Equal(t, []int{1, 2, 3}, a.Slice()) // operands untouched

		af := MustVector[float32, fixed.D3](t, 1, 2, 3)
		bf := MustVector[float32, fixed.D3](t, 4, 5, 6)
		require.Equal(t, []float32{5, 7, 9}, af.Add(bf).Slice())

		ad := MustVector[float64, fixed.D3](t, 1, 2, 3)
		bd := MustVector[float64, fixed.D3](t, 4, 5, 6)
		require.Equal(t, []float64{5, 7, 9}, ad.Add(bd).Slice())
	})
}

func TestVectorSub(t *testing.T) {
	a := MustVector[int, fixed.D3](t, 4, 5, 6)
	b := MustVector[int, fixed.D3](t, 1, 2, 3)
	require.Equal(t, []int{3, 3, 3}, a.Sub(b).Slice())

	d := MustVector[float64, fixed.D2](t, 1.5, -2)
	e := MustVector[float64, fixed.D2](t, 0.5, 1)
	require.Equal(t, []float64{1, -3}, d.Sub(e).Slice())

	u := MustVector[uint8, fixed.D2](t, 5, 3)
	w := MustVector[uint8, fixed.D2](t, 3, 5)
	require.Equal(t, []uint8{2, 254}, u.Sub(w).Slice()) // modular, like uint8 arithmetic
}

func TestVectorScale(t *testing.T) {
	ForEachMode(t, func(t *testing.T) {
		v := MustVector[float64, fixed.D3](t, 1, 2, 3)
		require.Equal(t, []float64{2, 4, 6}, v.Scale(2).Slice())

		vi := MustVector[int, fixed.D3](t, 1, -2, 3)
		require.Equal(t, []int{-3, 6, -9}, vi.Scale(-3).Slice())
	})
}

func TestVectorDiv(t *testing.T) {
	v := MustVector[int, fixed.D3](t, 2, 4, 7)
	q, err := v.Div(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, q.Slice()) // integer division truncates

	d := MustVector[float64, fixed.D2](t, 1, 3)
	qd, err := d.Div(2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5}, qd.Slice())
}

func TestVectorDivByZero(t *testing.T) {
	_, err := fixed.NewVector[int, fixed.D3]().Div(0)
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)

	_, err = fixed.NewVector[float32, fixed.D3]().Div(0)
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)

	_, err = fixed.NewVector[float64, fixed.D3]().Div(0)
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)

	_, err = fixed.NewVector[float64, fixed.D3]().Div(float64(math.Copysign(0, -1))) // -0 == 0
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)

	_, err = fixed.NewVector[complex128, fixed.D1]().Div(0)
	require.ErrorIs(t, err, fixed.ErrDivisionByZero)
}

func TestVectorEqual(t *testing.T) {
	a := MustVector[int, fixed.D3](t, 1, 2, 3)
	require.True(t, a.Equal(a.Clone()))
	require.False(t, a.Equal(MustVector[int, fixed.D3](t, 1, 2, 4)))
	require.True(t, fixed.NewVector[int, fixed.D0]().Equal(fixed.NewVector[int, fixed.D0]()))

	n := MustVector[float64, fixed.D1](t, math.NaN())
	require.False(t, n.Equal(n))
}

func TestVectorDot(t *testing.T) {
	ForEachMode(t, func(t *testing.T) {
		ai := MustVector[int, fixed.D3](t, 1, 2, 3)
		bi := MustVector[int, fixed.D3](t, 4, 5, 6)
		require.Equal(t, 32, ai.Dot(bi))

		af := MustVector[float32, fixed.D3](t, 1, 2, 3)
		bf := MustVector[float32, fixed.D3](t, 4, 5, 6)
		require.Equal(t, float32(32), af.Dot(bf))

		ad := MustVector[float64, fixed.D3](t, 1, 2, 3)
		bd := MustVector[float64, fixed.D3](t, 4, 5, 6)
		require.Equal(t, 32.0, ad.Dot(bd))

		am := MustVector[meters, fixed.D3](t, 1, 2, 3)
		require.Equal(t, meters(14), am.Dot(am))

		require.Equal(t, 0.0, fixed.NewVector[float64, fixed.D0]().Dot(fixed.NewVector[float64, fixed.D0]()))
	})
}

func TestVectorIteration(t *testing.T) {
	v := MustVector[int, fixed.D3](t, 10, 20, 30)

	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int{10, 20, 30}, vals)

	// restartable: a second pass sees the same elements
	var again []int
	for x := range v.Values() {
		again = append(again, x)
	}
	require.Equal(t, vals, again)

	// early stop
	var first []int
	for x := range v.Values() {
		first = append(first, x)
		break
	}
	require.Equal(t, []int{10}, first)
}

func TestVectorString(t *testing.T) {
	v := MustVector[float64, fixed.D3](t, 1, 2.5, -3)
	require.Equal(t, "[1, 2.5, -3]", v.String())
	require.Equal(t, "[]", fixed.NewVector[int, fixed.D0]().String())
}

func TestNegativeDimPanics(t *testing.T) {
	require.Panics(t, func() { fixed.NewVector[int, negDim]() })
}

// negDim is a malformed dimension used to exercise the construction guard.
type negDim struct{}

func (negDim) Len() int { return -1 }
