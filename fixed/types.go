// SPDX-License-Identifier: MIT

// Package fixed: shape and element types.
// This file contains ONLY the type-level vocabulary: the element constraint,
// the Dim interface and the predeclared dimensions D0…D16.
package fixed

import (
	"fmt"

	"github.com/katalvlaran/hmatrix/kernel"
)

// Element is the set of element types a Vector or Matrix may hold: every
// integer, floating-point and complex kind. Exactly float32 and float64 are
// dispatched to BLAS; all others use the generic loops.
type Element interface {
	kernel.Scalar
}

// Dim is a type-level dimension. Implementations should be empty value
// types whose Len is a constant, for example:
//
//	type D32 struct{}
//
//	func (D32) Len() int { return 32 }
type Dim interface {
	Len() int
}

// Predeclared dimensions.
type (
	D0  struct{}
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

func (D0) Len() int  { return 0 }
func (D1) Len() int  { return 1 }
func (D2) Len() int  { return 2 }
func (D3) Len() int  { return 3 }
func (D4) Len() int  { return 4 }
func (D5) Len() int  { return 5 }
func (D6) Len() int  { return 6 }
func (D7) Len() int  { return 7 }
func (D8) Len() int  { return 8 }
func (D9) Len() int  { return 9 }
func (D10) Len() int { return 10 }
func (D11) Len() int { return 11 }
func (D12) Len() int { return 12 }
func (D13) Len() int { return 13 }
func (D14) Len() int { return 14 }
func (D15) Len() int { return 15 }
func (D16) Len() int { return 16 }

// dimLen returns D's length. A negative length is a programmer error in the
// Dim declaration and panics.
func dimLen[D Dim]() int {
	var d D
	n := d.Len()
	if n < 0 {
		panic(fmt.Sprintf("fixed: %T.Len() = %d: dimension must be >= 0", d, n))
	}

	return n
}
