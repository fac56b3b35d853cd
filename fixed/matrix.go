// SPDX-License-Identifier: MIT

// Package fixed - Matrix: fixed-shape row-major storage, safe accessors and views.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*N + j.
//   - Guarantee safety at the public surface: At/Set/AtLinear/SetLinear/Row/Col
//     return errors instead of panicking.
//   - Support no-copy strided views (Span) over rows, columns and the diagonal.
//
// Complexity quicksheet:
//   - NewMatrix: O(M*N) zero-init; At/Set: O(1); Row/Col/Diag: O(1); Add/Scale: O(M*N).

package fixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hmatrix/kernel"
)

// Matrix is an M×N matrix of T stored row-major.
//   - data is nil until first written or viewed; afterwards len(data) == M*N.
//   - Element (i,j) lives at data[i*N + j].
//   - Assignment copies the handle; use Clone for an independent copy.
type Matrix[T Element, M, N Dim] struct {
	data []T // contiguous row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int, D1, D1])(nil)

// NewMatrix returns a zero-filled M×N matrix.
// Complexity: O(M*N).
func NewMatrix[T Element, M, N Dim]() *Matrix[T, M, N] {
	return &Matrix[T, M, N]{data: make([]T, dimLen[M]()*dimLen[N]())}
}

// MatrixOf builds a matrix from exactly M*N values given in row-major order.
//
// Errors:
//   - ErrDimensionMismatch when len(rowMajor) != M*N.
//
// Complexity: O(M*N). rowMajor is copied, never retained.
func MatrixOf[T Element, M, N Dim](rowMajor ...T) (*Matrix[T, M, N], error) {
	r, c := dimLen[M](), dimLen[N]()
	if len(rowMajor) != r*c {
		return nil, fmt.Errorf("MatrixOf: %d values for shape %dx%d: %w", len(rowMajor), r, c, ErrDimensionMismatch)
	}
	m := NewMatrix[T, M, N]()
	copy(m.data, rowMajor)

	return m, nil
}

// Rows returns M. Valid on a nil receiver.
func (m *Matrix[T, M, N]) Rows() int { return dimLen[M]() }

// Cols returns N. Valid on a nil receiver.
func (m *Matrix[T, M, N]) Cols() int { return dimLen[N]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T, M, N]) Shape() (rows, cols int) { return dimLen[M](), dimLen[N]() }

// elems returns the buffer for reading without allocating into m.
func (m *Matrix[T, M, N]) elems() []T {
	if m != nil && m.data != nil {
		return m.data
	}

	return make([]T, dimLen[M]()*dimLen[N]())
}

// buf returns the buffer for writing, allocating on first use. m != nil.
func (m *Matrix[T, M, N]) buf() []T {
	if m.data == nil {
		m.data = make([]T, dimLen[M]()*dimLen[N]())
	}

	return m.data
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Matrix[T, M, N]) indexOf(i, j int) (int, error) {
	rows, cols := dimLen[M](), dimLen[N]()
	if i < 0 || i >= rows {
		return 0, ErrOutOfRange
	}
	if j < 0 || j >= cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*N + j.
	return i*cols + j, nil
}

// At returns element (i,j).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0,M) or j ∉ [0,N).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T, M, N]) At(i, j int) (T, error) {
	var zero T
	off, err := m.indexOf(i, j)
	if err != nil {
		return zero, matrixErrorf(ctxAt, i, j, err)
	}
	if m == nil || m.data == nil {
		return zero, nil
	}

	return m.data[off], nil
}

// Set stores x at (i,j).
//
// Errors:
//   - ErrNilReceiver when m is nil.
//   - ErrOutOfRange when i ∉ [0,M) or j ∉ [0,N).
func (m *Matrix[T, M, N]) Set(i, j int, x T) error {
	if m == nil {
		return matrixErrorf(ctxSet, i, j, ErrNilReceiver)
	}
	off, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	m.buf()[off] = x

	return nil
}

// AtLinear returns the element at row-major offset k = i*N + j.
// ErrOutOfRange when k ∉ [0, M*N).
func (m *Matrix[T, M, N]) AtLinear(k int) (T, error) {
	var zero T
	if k < 0 || k >= dimLen[M]()*dimLen[N]() {
		return zero, indexErrorf("Matrix", ctxAtLinear, k, ErrOutOfRange)
	}
	if m == nil || m.data == nil {
		return zero, nil
	}

	return m.data[k], nil
}

// SetLinear stores x at row-major offset k.
// ErrNilReceiver on nil m; ErrOutOfRange when k ∉ [0, M*N).
func (m *Matrix[T, M, N]) SetLinear(k int, x T) error {
	if m == nil {
		return indexErrorf("Matrix", ctxSetLinear, k, ErrNilReceiver)
	}
	if k < 0 || k >= dimLen[M]()*dimLen[N]() {
		return indexErrorf("Matrix", ctxSetLinear, k, ErrOutOfRange)
	}
	m.buf()[k] = x

	return nil
}

// Row returns a view of row i: length N, stride 1, offset i*N.
// MAIN DESCRIPTION:
//   - No-copy window over one row; writes through the span reach m.
//
// Behavior highlights:
//   - Allocates m's buffer if m is still a zero value, so the span and m
//     share storage from then on.
//
// Errors:
//   - ErrNilReceiver when m is nil; ErrOutOfRange when i ∉ [0,M).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T, M, N]) Row(i int) (Span[T], error) {
	if m == nil {
		return Span[T]{}, indexErrorf("Matrix", ctxRow, i, ErrNilReceiver)
	}
	rows, cols := dimLen[M](), dimLen[N]()
	if i < 0 || i >= rows {
		return Span[T]{}, indexErrorf("Matrix", ctxRow, i, ErrOutOfRange)
	}

	return Span[T]{data: m.buf(), off: i * cols, n: cols, stride: 1}, nil
}

// Col returns a view of column j: length M, stride N, offset j.
// Errors: ErrNilReceiver when m is nil; ErrOutOfRange when j ∉ [0,N).
// Complexity: O(1).
func (m *Matrix[T, M, N]) Col(j int) (Span[T], error) {
	if m == nil {
		return Span[T]{}, indexErrorf("Matrix", ctxCol, j, ErrNilReceiver)
	}
	rows, cols := dimLen[M](), dimLen[N]()
	if j < 0 || j >= cols {
		return Span[T]{}, indexErrorf("Matrix", ctxCol, j, ErrOutOfRange)
	}

	return Span[T]{data: m.buf(), off: j, n: rows, stride: cols}, nil
}

// Diag returns a view of the main diagonal: length min(M,N), stride N+1,
// offset 0. ErrNilReceiver when m is nil.
func (m *Matrix[T, M, N]) Diag() (Span[T], error) {
	if m == nil {
		return Span[T]{}, fmt.Errorf("Matrix.%s: %w", ctxDiag, ErrNilReceiver)
	}
	rows, cols := dimLen[M](), dimLen[N]()

	return Span[T]{data: m.buf(), off: 0, n: min(rows, cols), stride: cols + 1}, nil
}

// Add returns m + other over all M*N elements.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Add(other *Matrix[T, M, N]) *Matrix[T, M, N] {
	res := NewMatrix[T, M, N]()
	kernel.Add(res.data, m.elems(), other.elems())

	return res
}

// Sub returns m − other, computed as m.Add(other.Scale(-1)).
func (m *Matrix[T, M, N]) Sub(other *Matrix[T, M, N]) *Matrix[T, M, N] {
	return m.Add(other.Scale(minusOne[T]()))
}

// Scale returns s·m, elementwise.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Scale(s T) *Matrix[T, M, N] {
	res := NewMatrix[T, M, N]()
	kernel.Scale(res.data, m.elems(), s)

	return res
}

// Equal reports whether every element compares equal with ==.
func (m *Matrix[T, M, N]) Equal(other *Matrix[T, M, N]) bool {
	a, b := m.elems(), other.elems()
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy (new buffer). Spans taken from m do not
// see writes to the clone.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Clone() *Matrix[T, M, N] {
	res := NewMatrix[T, M, N]()
	copy(res.data, m.elems())

	return res
}

// Data returns the row-major buffer itself (not a copy) for raw interop,
// allocating it if m is a zero value. Returns nil for a nil m.
func (m *Matrix[T, M, N]) Data() []T {
	if m == nil {
		return nil
	}

	return m.buf()
}

// String renders one "[a, b, ...]" line per row.
// Complexity: O(M*N); intended for diagnostics.
func (m *Matrix[T, M, N]) String() string {
	var b strings.Builder
	rows, cols := dimLen[M](), dimLen[N]()
	data := m.elems()
	for i := 0; i < rows; i++ {
		writeRow(&b, data[i*cols:(i+1)*cols])
		b.WriteString("\n")
	}

	return b.String()
}
