// SPDX-License-Identifier: MIT
// Package kernel_test contains shared helpers for the dispatch tests.
//
// Purpose:
//   - Run one assertion body under both dispatch modes (BLAS and generic-only).
//   - Restore the global dispatch state after every mode switch.

package kernel_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/kernel"
)

// dispatchModes lists the two paths every product must agree on.
var dispatchModes = []struct {
	name        string
	genericOnly bool
}{
	{"blas", false},
	{"generic", true},
}

// ForEachMode RUNS body once per dispatch mode as a named subtest.
// Mode switches are global, so callers must not use t.Parallel.
func ForEachMode(t *testing.T, body func(t *testing.T)) {
	t.Helper()
	for _, mode := range dispatchModes {
		t.Run(mode.name, func(t *testing.T) {
			kernel.Install(kernel.WithGenericOnly(mode.genericOnly))
			t.Cleanup(func() { kernel.Install(kernel.WithGenericOnly(false)) })
			body(t)
		})
	}
}
