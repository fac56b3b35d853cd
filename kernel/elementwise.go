// SPDX-License-Identifier: MIT

package kernel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas/blas32"
)

// Add writes a[i] + b[i] into dst. dst may alias a but not b.
//
// float64 runs algo-vecmath's block add, float32 runs Saxpy with alpha 1.
// Each element is a single IEEE addition in every path, so results are
// identical to the loop. Panics on length mismatch.
func Add[T Scalar](dst, a, b []T) {
	mustSameLen("Add", len(dst), len(a), len(b))
	if len(dst) == 0 {
		return
	}
	if Accelerated[T]() {
		switch d := any(dst).(type) {
		case []float64:
			copy(d, any(a).([]float64))
			vecmath.AddBlockInPlace(d, any(b).([]float64))
			return
		case []float32:
			copy(d, any(a).([]float32))
			blas32.Implementation().Saxpy(len(d), 1, any(b).([]float32), 1, d, 1)
			return
		}
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Scale writes src[i]·s into dst. dst may alias src.
//
// float64 runs algo-vecmath's ScaleBlock, float32 runs Sscal. Panics on
// length mismatch.
func Scale[T Scalar](dst, src []T, s T) {
	mustSameLen("Scale", len(dst), len(src))
	if len(dst) == 0 {
		return
	}
	if Accelerated[T]() {
		switch d := any(dst).(type) {
		case []float64:
			vecmath.ScaleBlock(d, any(src).([]float64), any(s).(float64))
			return
		case []float32:
			// Sscal zeroes outright for alpha 0, which would swallow NaN/Inf.
			if f := any(s).(float32); f != 0 {
				copy(d, any(src).([]float32))
				blas32.Implementation().Sscal(len(d), f, d, 1)
				return
			}
		}
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}
