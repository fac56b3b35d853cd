// SPDX-License-Identifier: MIT

package fixed

import "iter"

// Span is a non-owning strided view over a matrix buffer: element k lives at
// data[off + k*stride]. Spans share storage with their matrix, so they see
// later writes to it and Set writes through to it.
//
// Lifetime: a Span keeps its matrix's buffer reachable but carries no shape
// of its own beyond (off, n, stride); treat it as borrowed from the matrix
// and do not hold it past the matrix's use.
type Span[T Element] struct {
	data   []T // borrowed parent buffer
	off    int // offset of element 0
	n      int // declared length
	stride int // distance between consecutive elements
}

// Len returns the declared number of elements.
func (s Span[T]) Len() int { return s.n }

// Stride returns the buffer distance between consecutive elements
// (1 for rows, the column count for columns).
func (s Span[T]) Stride() int { return s.stride }

// At returns element k; ErrOutOfRange when k is outside [0, Len()).
func (s Span[T]) At(k int) (T, error) {
	if k < 0 || k >= s.n {
		var zero T
		return zero, indexErrorf("Span", ctxAt, k, ErrOutOfRange)
	}

	return s.data[s.off+k*s.stride], nil
}

// Set writes x through to the parent matrix at position k.
func (s Span[T]) Set(k int, x T) error {
	if k < 0 || k >= s.n {
		return indexErrorf("Span", ctxSet, k, ErrOutOfRange)
	}
	s.data[s.off+k*s.stride] = x

	return nil
}

// All walks Len() elements, advancing by Stride() each step, yielding
// (position, value). Values are read lazily, so writes made to the parent
// before a step are observed by that step.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, p := 0, s.off; k < s.n; k, p = k+1, p+s.stride {
			if !yield(k, s.data[p]) {
				return
			}
		}
	}
}

// Values is All without positions.
func (s Span[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Slice copies the viewed elements into a new slice (a snapshot).
func (s Span[T]) Slice() []T {
	out := make([]T, 0, s.n)
	for x := range s.Values() {
		out = append(out, x)
	}

	return out
}
