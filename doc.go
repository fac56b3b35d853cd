// Package hmatrix is a home for small dense linear algebra whose shapes are
// part of the type: a 3×4 matrix and a 4×3 matrix are different Go types, so
// mismatched products do not compile.
//
// 🚀 What is hmatrix?
//
//	A compact, generic library split into two subpackages:
//		• fixed/   Vector[T,N], Matrix[T,M,N], strided Span views, products
//		• kernel/  element dispatch: float32/float64 go to BLAS, every other
//		            integer, float or complex type runs a plain loop
//
// ✨ Highlights
//
//   - Bounds-checked access returns errors, never panics on user input
//   - Row, column and diagonal views with no copying
//   - Pure Go by default (gonum BLAS); build with -tags netlib for system BLAS
//
// Quick example:
//
//	a, _ := fixed.MatrixOf[float64, fixed.D2, fixed.D3](1, 2, 3, 4, 5, 6)
//	b, _ := fixed.MatrixOf[float64, fixed.D3, fixed.D2](1, 2, 3, 4, 5, 6)
//	c := fixed.MatMul(a, b) // *fixed.Matrix[float64, fixed.D2, fixed.D2]
//
//	go get github.com/katalvlaran/hmatrix
package hmatrix
