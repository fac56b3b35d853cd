// SPDX-License-Identifier: MIT

// Package kernel is the dispatch layer behind the fixed-shape containers.
//
// Every kernel operates on flat, row-major slices and picks one of two paths
// from the element type alone:
//
//	float32 → blas32 (Sdot, Sgemv, Sgemm, Saxpy, Sscal)
//	float64 → blas64 (Ddot, Dgemv, Dgemm) + algo-vecmath block kernels
//	other   → plain nested loops seeded at T's zero value
//
// The match is exact: a named type such as `type Meters float64` runs the
// generic loops. Both paths produce the same values for inputs that are
// exactly representable (small integers), which the tests pin down.
//
// Backends:
//   - By default blas32/blas64 use gonum's pure-Go implementation.
//   - Install(WithFloat64(...)) swaps in any blas.Float64 (e.g. netlib).
//   - Building with `-tags netlib` (cgo required) installs system BLAS at init.
//   - Install(WithGenericOnly(true)) routes float32/float64 through the loops too.
//
// Kernels never allocate, never log and never return errors: shapes come from
// type-level dimensions, so a length mismatch is a programmer error and panics.
package kernel
