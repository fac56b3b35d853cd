// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dot returns Σ a[i]·b[i].
//
// float32 and float64 call Sdot/Ddot with n = len(a) and unit strides;
// everything else accumulates in index order starting from T's zero.
// Panics if len(a) != len(b).
func Dot[T Scalar](a, b []T) T {
	mustSameLen("Dot", len(a), len(b))
	n := len(a)
	if n == 0 {
		var zero T
		return zero
	}
	if Accelerated[T]() {
		switch x := any(a).(type) {
		case []float32:
			y := any(b).([]float32)
			return any(blas32.Implementation().Sdot(n, x, 1, y, 1)).(T)
		case []float64:
			y := any(b).([]float64)
			return any(blas64.Implementation().Ddot(n, x, 1, y, 1)).(T)
		}
	}

	return dotLoop(a, b)
}

func dotLoop[T Scalar](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
