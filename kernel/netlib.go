// SPDX-License-Identifier: MIT

//go:build cgo && netlib

package kernel

// Built with `-tags netlib`: route both precisions to the system BLAS
// (OpenBLAS on Linux, Accelerate on macOS) through gonum's netlib bindings.

import "gonum.org/v1/netlib/blas/netlib"

func init() {
	Install(WithFloat32(netlib.Implementation{}), WithFloat64(netlib.Implementation{}))
}
