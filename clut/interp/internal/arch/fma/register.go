// Package fma registers float32 kernels whose multiply-adds are fused.
//
// The kernels are portable Go built on math.FMA. They are only selected when
// the CPU executes FMA in hardware; the software fallback of math.FMA is far
// slower than the generic kernels.
package fma

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/interp/internal/registry"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
	"github.com/cwbudde/algo-clut/internal/cpu"
)

type (
	fusedKernel     func(*grid.Grid[float32], []weight.Weight[float32]) vec.F32x4FMA
	fusedPairKernel func(
		*grid.Grid[float32], []weight.Weight[float32],
		*grid.Grid[float32], []weight.Weight[float32],
	) (vec.F32x4FMA, vec.F32x4FMA)
)

func single(k fusedKernel) registry.Kernel {
	return func(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4 {
		return vec.F32x4(k(g, ws))
	}
}

func pair(k fusedPairKernel) registry.PairKernel {
	return func(
		ga *grid.Grid[float32], wa []weight.Weight[float32],
		gb *grid.Grid[float32], wb []weight.Weight[float32],
	) (vec.F32x4, vec.F32x4) {
		a, b := k(ga, wa, gb, wb)
		return vec.F32x4(a), vec.F32x4(b)
	}
}

// Priority: 20
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "fma",
		SIMDLevel: cpu.SIMDFMA,
		Priority:  20,

		Linear:      single(simplex.Linear[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		Tetrahedral: single(simplex.Tetrahedral[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		Pyramidal:   single(simplex.Pyramidal[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		Prismatic:   single(simplex.Prismatic[float32, float32, vec.F32x4FMA, simplex.F32FMA]),

		LinearPair:      pair(simplex.LinearPair[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		TetrahedralPair: pair(simplex.TetrahedralPair[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		PyramidalPair:   pair(simplex.PyramidalPair[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
		PrismaticPair:   pair(simplex.PrismaticPair[float32, float32, vec.F32x4FMA, simplex.F32FMA]),
	})
}
