// Package generic registers the portable float32 kernels.
package generic

import (
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/interp/internal/registry"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/internal/cpu"
)

// init registers kernels that round every product before adding it. They are
// the fallback on every platform and the only set in purego builds.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Linear:      simplex.Linear[float32, float32, vec.F32x4, simplex.F32],
		Tetrahedral: simplex.Tetrahedral[float32, float32, vec.F32x4, simplex.F32],
		Pyramidal:   simplex.Pyramidal[float32, float32, vec.F32x4, simplex.F32],
		Prismatic:   simplex.Prismatic[float32, float32, vec.F32x4, simplex.F32],

		LinearPair:      simplex.LinearPair[float32, float32, vec.F32x4, simplex.F32],
		TetrahedralPair: simplex.TetrahedralPair[float32, float32, vec.F32x4, simplex.F32],
		PyramidalPair:   simplex.PyramidalPair[float32, float32, vec.F32x4, simplex.F32],
		PrismaticPair:   simplex.PrismaticPair[float32, float32, vec.F32x4, simplex.F32],
	})
}
