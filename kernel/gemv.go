// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatTVec reduces the row-major rows×cols matrix a against x along the rows:
//
//	dst[col] = Σ_row a[row*cols+col] · x[row]
//
// len(x) must be rows and len(dst) must be cols.
//
// Accelerated path: Sgemv/Dgemv over the same row-major buffer (lda = cols,
// unit strides, alpha = 1, beta = 0) with the transpose flag set, which is
// the parameterization that yields the reduction above for every shape.
// Generic path: col outer, row inner, seeded at T's zero.
//
// Panics if the slice lengths disagree with the shape.
func MatTVec[T Scalar](dst, a, x []T, rows, cols int) {
	mustSameLen("MatTVec", rows*cols, len(a))
	mustSameLen("MatTVec", rows, len(x))
	mustSameLen("MatTVec", cols, len(dst))
	if rows == 0 || cols == 0 {
		clear(dst)
		return
	}
	if Accelerated[T]() {
		switch y := any(dst).(type) {
		case []float32:
			blas32.Implementation().Sgemv(blas.Trans, rows, cols,
				1, any(a).([]float32), cols, any(x).([]float32), 1, 0, y, 1)
			return
		case []float64:
			blas64.Implementation().Dgemv(blas.Trans, rows, cols,
				1, any(a).([]float64), cols, any(x).([]float64), 1, 0, y, 1)
			return
		}
	}
	matTVecLoop(dst, a, x, rows, cols)
}

func matTVecLoop[T Scalar](dst, a, x []T, rows, cols int) {
	var r, c int
	for c = 0; c < cols; c++ {
		var acc T
		for r = 0; r < rows; r++ {
			acc += a[r*cols+c] * x[r]
		}
		dst[c] = acc
	}
}
