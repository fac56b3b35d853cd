// SPDX-License-Identifier: MIT

// Package fixed - Vector: fixed-length contiguous storage & elementwise algebra.
//
// Purpose:
//   - Hold exactly N elements of T, zero-filled, with bounds-checked access.
//   - Provide elementwise Add/Sub/Scale/Div, Equal and Dot, each returning a
//     fresh Vector and leaving operands untouched.
//   - Delegate Add/Scale/Dot to package kernel (BLAS for float32/float64).
//
// Complexity quicksheet:
//   - NewVector: O(N) zero-init; At/Set/Len: O(1); Add/Sub/Scale/Div/Dot/Equal: O(N).

package fixed

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/hmatrix/kernel"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length vector of N elements of type T.
//   - data is nil until the first write (zero value reads as all zeros);
//     afterwards len(data) == N for the whole lifetime.
//   - Assignment copies the handle, not the elements; use Clone for a copy.
type Vector[T Element, N Dim] struct {
	data []T // contiguous storage, len == N once allocated
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int, D1])(nil)

// NewVector returns a zero-filled vector of length N.
// Complexity: O(N).
func NewVector[T Element, N Dim]() *Vector[T, N] {
	return &Vector[T, N]{data: make([]T, dimLen[N]())}
}

// VectorOf builds a vector from exactly N values, in order.
// MAIN DESCRIPTION:
//   - Initialize a Vector from another container (a slice or literal list).
//
// Errors:
//   - ErrDimensionMismatch when len(vals) != N.
//
// Complexity:
//   - Time O(N), Space O(N). vals is copied, never retained.
func VectorOf[T Element, N Dim](vals ...T) (*Vector[T, N], error) {
	n := dimLen[N]()
	if len(vals) != n {
		return nil, fmt.Errorf("VectorOf: %d values for length %d: %w", len(vals), n, ErrDimensionMismatch)
	}
	v := NewVector[T, N]()
	copy(v.data, vals)

	return v, nil
}

// Len returns N. Valid on a nil receiver.
// Complexity: O(1).
func (v *Vector[T, N]) Len() int { return dimLen[N]() }

// elems returns the element buffer for reading. Unallocated vectors yield a
// fresh zero buffer so reads never mutate the receiver.
func (v *Vector[T, N]) elems() []T {
	if v != nil && v.data != nil {
		return v.data
	}

	return make([]T, dimLen[N]())
}

// buf returns the element buffer for writing, allocating it on first use.
// Caller guarantees v != nil.
func (v *Vector[T, N]) buf() []T {
	if v.data == nil {
		v.data = make([]T, dimLen[N]())
	}

	return v.data
}

// At returns element i.
// MAIN DESCRIPTION:
//   - Safe element read; i must lie in [0, N).
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= N (wrapped as "Vector.At(i): ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T, N]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= dimLen[N]() {
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}
	if v == nil || v.data == nil {
		return zero, nil
	}

	return v.data[i], nil
}

// Set stores x at index i.
// MAIN DESCRIPTION:
//   - Safe element write; allocates the buffer on the first write to a zero value.
//
// Errors:
//   - ErrNilReceiver when v is nil.
//   - ErrOutOfRange when i < 0 or i >= N.
//
// Complexity:
//   - Time O(1) (O(N) on the first write to a zero value).
func (v *Vector[T, N]) Set(i int, x T) error {
	if v == nil {
		return vectorErrorf(ctxSet, i, ErrNilReceiver)
	}
	if i < 0 || i >= dimLen[N]() {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.buf()[i] = x

	return nil
}

// Add returns v + other, elementwise.
// Complexity: O(N). Never fails.
func (v *Vector[T, N]) Add(other *Vector[T, N]) *Vector[T, N] {
	res := NewVector[T, N]()
	kernel.Add(res.data, v.elems(), other.elems())

	return res
}

// Sub returns v − other, computed as v.Add(other.Scale(-1)).
// For unsigned T the negation wraps, so the result equals v − other modulo 2ⁿ.
// Complexity: O(N).
func (v *Vector[T, N]) Sub(other *Vector[T, N]) *Vector[T, N] {
	return v.Add(other.Scale(minusOne[T]()))
}

// Scale returns s·v, elementwise.
// Complexity: O(N).
func (v *Vector[T, N]) Scale(s T) *Vector[T, N] {
	res := NewVector[T, N]()
	kernel.Scale(res.data, v.elems(), s)

	return res
}

// Div returns v / s, elementwise.
// MAIN DESCRIPTION:
//   - Scalar division with a uniform zero-divisor rejection.
//
// Behavior highlights:
//   - s == 0 is rejected for every T, floats included (no ±Inf/NaN results
//     from a zero divisor). The check runs before any work.
//
// Errors:
//   - ErrDivisionByZero when s equals T's zero.
//
// Complexity:
//   - Time O(N), Space O(N).
func (v *Vector[T, N]) Div(s T) (*Vector[T, N], error) {
	if s == 0 {
		return nil, fmt.Errorf("Vector.%s: %w", ctxDiv, ErrDivisionByZero)
	}
	src := v.elems()
	res := NewVector[T, N]()
	for i := range src {
		res.data[i] = src[i] / s
	}

	return res, nil
}

// Equal reports whether all N elements compare equal with ==.
// NaN never equals NaN.
// Complexity: O(N).
func (v *Vector[T, N]) Equal(other *Vector[T, N]) bool {
	a, b := v.elems(), other.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Dot returns the inner product Σ v[i]·other[i].
// float32/float64 use BLAS Sdot/Ddot with unit strides; other types
// accumulate from T's zero in index order.
// Complexity: O(N).
func (v *Vector[T, N]) Dot(other *Vector[T, N]) T {
	return kernel.Dot(v.elems(), other.elems())
}

// All yields (index, value) pairs in order. Each call starts a new pass.
func (v *Vector[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elems() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements in order. Each call starts a new pass.
func (v *Vector[T, N]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.elems() {
			if !yield(x) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
// Complexity: O(N).
func (v *Vector[T, N]) Clone() *Vector[T, N] {
	res := NewVector[T, N]()
	copy(res.data, v.elems())

	return res
}

// Slice returns a copy of the elements.
func (v *Vector[T, N]) Slice() []T {
	return append([]T(nil), v.elems()...)
}

// String renders the vector as "[a, b, c]".
func (v *Vector[T, N]) String() string {
	var b strings.Builder
	writeRow(&b, v.elems())

	return b.String()
}

// writeRow appends "[x0, x1, ...]" to b.
func writeRow[T Element](b *strings.Builder, xs []T) {
	b.WriteString(_fmtOpen)
	for i, x := range xs {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(b, x)
	}
	b.WriteString(_fmtClose)
}

// minusOne returns −1 in T (wrapping to the maximum value for unsigned T).
func minusOne[T Element]() T {
	var one T = 1

	return -one
}
