// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul writes the row-major product of a (m×inner) and b (inner×n) into
// dst (m×n), overwriting it.
//
// Accelerated path: Sgemm/Dgemm row-major, no transpose on either operand,
// alpha = 1, beta = 0, lda = inner, ldb = ldc = n.
// Generic path: i outer, j middle, k inner; each dst(i,j) is seeded with
// T's zero before accumulation.
//
// Any zero extent yields an all-zero dst without touching the backend.
// Panics if the slice lengths disagree with the shape.
func MatMul[T Scalar](dst, a, b []T, m, inner, n int) {
	mustSameLen("MatMul", m*inner, len(a))
	mustSameLen("MatMul", inner*n, len(b))
	mustSameLen("MatMul", m*n, len(dst))
	if m == 0 || n == 0 || inner == 0 {
		clear(dst)
		return
	}
	if Accelerated[T]() {
		switch c := any(dst).(type) {
		case []float32:
			blas32.Implementation().Sgemm(blas.NoTrans, blas.NoTrans, m, n, inner,
				1, any(a).([]float32), inner, any(b).([]float32), n, 0, c, n)
			return
		case []float64:
			blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans, m, n, inner,
				1, any(a).([]float64), inner, any(b).([]float64), n, 0, c, n)
			return
		}
	}
	matMulLoop(dst, a, b, m, inner, n)
}

func matMulLoop[T Scalar](dst, a, b []T, m, inner, n int) {
	var i, j, k int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			var acc T // T's zero
			for k = 0; k < inner; k++ {
				acc += a[i*inner+k] * b[k*n+j]
			}
			dst[i*n+j] = acc
		}
	}
}
