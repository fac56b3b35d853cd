// SPDX-License-Identifier: MIT

// Package fixed provides dense vectors and matrices whose shape is part of
// their type.
//
// What & Why:
//
//	Go has no const generics, so a dimension is a phantom type implementing
//	Dim (D0…D16 are predeclared; declare your own for larger shapes). The
//	compiler then rejects shape errors that would otherwise surface at run
//	time: Vector[float64, D3] cannot be added to Vector[float64, D4], and
//	MatMul only accepts Matrix[T, M, N] × Matrix[T, N, K].
//
//	    a := fixed.NewMatrix[float64, fixed.D2, fixed.D3]()
//	    b := fixed.NewMatrix[float64, fixed.D3, fixed.D2]()
//	    c := fixed.MatMul(a, b) // *Matrix[float64, D2, D2]
//
// Storage:
//
//	Vector holds N elements, Matrix holds M·N elements in row-major order
//	(element (i,j) at offset i·N+j). Both are zero-filled; their zero values
//	read as all-zero and allocate on first write. Arithmetic never mutates
//	operands and always returns a fresh container; Clone gives an independent
//	copy.
//
// Views:
//
//	Row, Col and Diag return Span values that borrow the matrix buffer with
//	an (offset, length, stride) triple. Spans observe later writes to the
//	matrix and write through to it. A span is only meaningful while its
//	matrix is in use; it never copies unless asked (Span.Slice).
//
// Dispatch:
//
//	Dot, MatMul and MulVec (plus Add/Scale) delegate to package kernel, which
//	runs BLAS for exactly float32/float64 and plain loops otherwise.
//
// Errors:
//
//	Out-of-range indices and division by zero return sentinels wrapped with
//	call-site context (match with errors.Is). Nothing panics on user input.
//
// Concurrency:
//
//	No locks. Concurrent reads are safe; concurrent writes to one instance
//	must be serialized by the caller.
package fixed
