// SPDX-License-Identifier: MIT
// Package fixed_test contains test helpers
//
// Purpose:
//   - Build small, deterministic fixtures without error boilerplate.
//   - Run product tests under both dispatch modes (BLAS and generic-only).

package fixed_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/fixed"
	"github.com/katalvlaran/hmatrix/kernel"
)

// meters is a named float type; it must take the generic path.
type meters float64

// MustVector BUILDS a vector from vals or fails the test.
func MustVector[T fixed.Element, N fixed.Dim](t testing.TB, vals ...T) *fixed.Vector[T, N] {
	t.Helper()
	v, err := fixed.VectorOf[T, N](vals...)
	if err != nil {
		t.Fatalf("VectorOf: %v", err)
	}

	return v
}

// MustMatrix BUILDS a matrix from row-major vals or fails the test.
func MustMatrix[T fixed.Element, M, N fixed.Dim](t testing.TB, vals ...T) *fixed.Matrix[T, M, N] {
	t.Helper()
	m, err := fixed.MatrixOf[T, M, N](vals...)
	if err != nil {
		t.Fatalf("MatrixOf: %v", err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt[T fixed.Element, M, N fixed.Dim](t testing.TB, m *fixed.Matrix[T, M, N], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j) or fails the test.
func MustSet[T fixed.Element, M, N fixed.Dim](t testing.TB, m *fixed.Matrix[T, M, N], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// ForEachMode RUNS body once with BLAS dispatch and once generic-only.
// Mode switches are global; do not combine with t.Parallel.
func ForEachMode(t *testing.T, body func(t *testing.T)) {
	t.Helper()
	for _, mode := range []struct {
		name        string
		genericOnly bool
	}{{"blas", false}, {"generic", true}} {
		t.Run(mode.name, func(t *testing.T) {
			kernel.Install(kernel.WithGenericOnly(mode.genericOnly))
			t.Cleanup(func() { kernel.Install(kernel.WithGenericOnly(false)) })
			body(t)
		})
	}
}
