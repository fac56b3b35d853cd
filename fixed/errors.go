// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods return
// these wrapped with call-site context via %w; tests and callers match them
// with errors.Is. No method panics on user-triggered error conditions.

package fixed

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fixed: ..." for consistency. Context is
// added at the detection site, e.g. "Matrix.At(2,0): fixed: index out of range".

var (
	// ErrOutOfRange indicates that an index (element, linear, row, column or
	// span position) is outside its declared bound. Never clamped or wrapped.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrDivisionByZero is returned by scalar division when the divisor equals
	// the element type's zero, for every element type including floats.
	ErrDivisionByZero = errors.New("fixed: division by zero")

	// ErrDimensionMismatch indicates that a source container does not have the
	// element count required by the target shape (VectorOf, MatrixOf).
	ErrDimensionMismatch = errors.New("fixed: dimension mismatch")

	// ErrNilReceiver indicates a write, or a view request, on a nil pointer.
	ErrNilReceiver = errors.New("fixed: nil receiver")
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAtLinear  = "AtLinear"
	ctxSetLinear = "SetLinear"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxDiag      = "Diag"
	ctxDiv       = "Div"
)

// vectorErrorf wraps err with a Vector method tag and index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// matrixErrorf wraps err with a Matrix method tag and coordinates.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// indexErrorf wraps err with a single-index Matrix or Span method tag.
func indexErrorf(owner, method string, k int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", owner, method, k, err)
}
