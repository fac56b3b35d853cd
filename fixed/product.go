// SPDX-License-Identifier: MIT

// Package fixed - algebraic products between fixed-shape containers.
//
// Both products route through package kernel, so float32/float64 operands
// are computed by BLAS (gemm/gemv) and every other T by nested loops.
// Shapes are enforced by the type parameters; nothing here can fail.

package fixed

import "github.com/katalvlaran/hmatrix/kernel"

// MatMul returns the M×K product a·b, result(i,j) = Σ_k a(i,k)·b(k,j).
// MAIN DESCRIPTION:
//   - Standard matrix product between Matrix[T,M,N] and Matrix[T,N,K].
//
// Implementation:
//   - float32/float64: row-major gemm, no transposes, alpha 1, beta 0.
//   - otherwise: i outer, j middle, k inner, each cell seeded with T's zero.
//
// Determinism:
//   - Fixed loop order on the generic path; result cells are written in
//     row-major order.
//
// Complexity:
//   - Time O(M*N*K), Space O(M*K).
func MatMul[T Element, M, N, K Dim](a *Matrix[T, M, N], b *Matrix[T, N, K]) *Matrix[T, M, K] {
	res := NewMatrix[T, M, K]()
	kernel.MatMul(res.data, a.elems(), b.elems(), dimLen[M](), dimLen[N](), dimLen[K]())

	return res
}

// MulVec multiplies m by a length-M vector, reducing along the rows:
//
//	result[col] = Σ_row m(row,col) · v[row],  len(result) = N
//
// This is the product of m's transpose with v. Both dispatch paths compute
// exactly this reduction for every shape (square or not, symmetric or not).
//
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) MulVec(v *Vector[T, M]) *Vector[T, N] {
	res := NewVector[T, N]()
	kernel.MatTVec(res.data, m.elems(), v.elems(), dimLen[M](), dimLen[N]())

	return res
}
