// SPDX-License-Identifier: MIT

// Package kernel: functional configuration of the BLAS backends and of the
// dispatch rule. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - Install, which applies a resolved option set globally,
//   - Describe, a snapshot of the effective configuration.
//
// Notes:
//   - Backend state is process-global (blas32.Use / blas64.Use). Install before
//     any concurrent use of the containers, as with gonum itself.
//   - Generic-only mode is stored in algo-vecmath's forced CPU features, so the
//     vecmath block kernels fall back to their generic variants at the same time.
package kernel

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// ---------- Defaults (single source of truth) ----------

// DefaultGenericOnly keeps float32/float64 on the BLAS path.
const DefaultGenericOnly = false

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilFloat32 = "kernel: WithFloat32: nil implementation"
	panicNilFloat64 = "kernel: WithFloat64: nil implementation"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the resolved configuration. Nil backends and an unset
// generic flag mean "leave the current global state alone".
type options struct {
	f32         blas.Float32
	f64         blas.Float64
	genericOnly bool
	genericSet  bool
}

// WithFloat32 installs impl as the single-precision backend.
// Panics on nil (programmer error).
func WithFloat32(impl blas.Float32) Option {
	if impl == nil {
		panic(panicNilFloat32)
	}

	return func(o *options) { o.f32 = impl }
}

// WithFloat64 installs impl as the double-precision backend.
// Panics on nil (programmer error).
func WithFloat64(impl blas.Float64) Option {
	if impl == nil {
		panic(panicNilFloat64)
	}

	return func(o *options) { o.f64 = impl }
}

// WithGenericOnly forces (true) or releases (false) the generic loop path
// for float32 and float64. Releasing also clears any other forced CPU
// features and re-runs detection.
func WithGenericOnly(on bool) Option {
	return func(o *options) {
		o.genericOnly = on
		o.genericSet = true
	}
}

// gatherOptions resolves opts in order; later options win.
func gatherOptions(opts ...Option) options {
	o := options{genericOnly: DefaultGenericOnly}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Install applies opts to the process-wide dispatch state.
//
// Example:
//
//	kernel.Install(kernel.WithFloat64(netlib.Implementation{}))
//	defer kernel.Install(kernel.WithFloat64(gonum.Implementation{}))
func Install(opts ...Option) {
	o := gatherOptions(opts...)

	if o.f32 != nil {
		blas32.Use(o.f32)
		log.Debug().Str("float32", backendName(o.f32)).Msg("kernel: blas backend installed")
	}
	if o.f64 != nil {
		blas64.Use(o.f64)
		log.Debug().Str("float64", backendName(o.f64)).Msg("kernel: blas backend installed")
	}
	if o.genericSet {
		if o.genericOnly {
			f := cpu.DetectFeatures()
			f.ForceGeneric = true
			if f.Architecture == "" {
				f.Architecture = runtime.GOARCH
			}
			cpu.SetForcedFeatures(f)
		} else {
			cpu.ResetDetection()
		}
		log.Debug().Bool("generic_only", o.genericOnly).Msg("kernel: dispatch mode changed")
	}
}

// Info is a read-only snapshot of the dispatch configuration.
type Info struct {
	Float32     string       // dynamic type of the blas32 backend
	Float64     string       // dynamic type of the blas64 backend
	GenericOnly bool         // float32/float64 forced onto the loop path
	Features    cpu.Features // CPU features seen by algo-vecmath
}

// Describe reports the backends and dispatch mode currently in effect.
func Describe() Info {
	f := cpu.DetectFeatures()

	return Info{
		Float32:     backendName(blas32.Implementation()),
		Float64:     backendName(blas64.Implementation()),
		GenericOnly: f.ForceGeneric,
		Features:    f,
	}
}

func backendName(impl any) string { return fmt.Sprintf("%T", impl) }
