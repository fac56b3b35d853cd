// SPDX-License-Identifier: MIT

package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

// Scalar is the set of element types the kernels accept: every integer,
// floating-point and complex kind, including named types built on them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Accelerated reports whether operations on T are delegated to the BLAS
// backend. It is true only for exactly float32 and float64, and only while
// generic-only mode is off.
func Accelerated[T Scalar]() bool {
	if genericOnly() {
		return false
	}
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// genericOnly reads the forced-generic flag from the shared CPU feature set.
func genericOnly() bool {
	return cpu.DetectFeatures().ForceGeneric
}

// mustSameLen panics when a kernel receives slices of different lengths.
func mustSameLen(op string, want int, got ...int) {
	for _, n := range got {
		if n != want {
			panic("kernel: " + op + ": slice length mismatch")
		}
	}
}
