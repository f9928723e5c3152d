package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

type (
	f32Grid    = *grid.Grid[float32]
	q15Grid    = *grid.Grid[int16]
	f32Weights = []weight.Weight[float32]
	q15Weights = []weight.Weight[int32]
)

// kernelF32 exposes both float kernel sets with a common result type.
type kernelF32 struct {
	name   string
	single func(f32Grid, f32Weights) vec.F32x4
	pair   func(f32Grid, f32Weights, f32Grid, f32Weights) (vec.F32x4, vec.F32x4)
}

type kernelQ15 struct {
	name   string
	single func(q15Grid, q15Weights) vec.Q15x4
	pair   func(q15Grid, q15Weights, q15Grid, q15Weights) (vec.Q15x4, vec.Q15x4)
}

func fused(single func(f32Grid, f32Weights) vec.F32x4FMA) func(f32Grid, f32Weights) vec.F32x4 {
	return func(g f32Grid, ws f32Weights) vec.F32x4 { return vec.F32x4(single(g, ws)) }
}

func fusedPair(
	pair func(f32Grid, f32Weights, f32Grid, f32Weights) (vec.F32x4FMA, vec.F32x4FMA),
) func(f32Grid, f32Weights, f32Grid, f32Weights) (vec.F32x4, vec.F32x4) {
	return func(ga f32Grid, wa f32Weights, gb f32Grid, wb f32Weights) (vec.F32x4, vec.F32x4) {
		a, b := pair(ga, wa, gb, wb)
		return vec.F32x4(a), vec.F32x4(b)
	}
}

var floatKernels = []kernelF32{
	{"linear", Linear[float32, float32, vec.F32x4, F32], LinearPair[float32, float32, vec.F32x4, F32]},
	{"tetrahedral", Tetrahedral[float32, float32, vec.F32x4, F32], TetrahedralPair[float32, float32, vec.F32x4, F32]},
	{"pyramidal", Pyramidal[float32, float32, vec.F32x4, F32], PyramidalPair[float32, float32, vec.F32x4, F32]},
	{"prismatic", Prismatic[float32, float32, vec.F32x4, F32], PrismaticPair[float32, float32, vec.F32x4, F32]},
	{
		"linear/fma",
		fused(Linear[float32, float32, vec.F32x4FMA, F32FMA]),
		fusedPair(LinearPair[float32, float32, vec.F32x4FMA, F32FMA]),
	},
	{
		"tetrahedral/fma",
		fused(Tetrahedral[float32, float32, vec.F32x4FMA, F32FMA]),
		fusedPair(TetrahedralPair[float32, float32, vec.F32x4FMA, F32FMA]),
	},
	{
		"pyramidal/fma",
		fused(Pyramidal[float32, float32, vec.F32x4FMA, F32FMA]),
		fusedPair(PyramidalPair[float32, float32, vec.F32x4FMA, F32FMA]),
	},
	{
		"prismatic/fma",
		fused(Prismatic[float32, float32, vec.F32x4FMA, F32FMA]),
		fusedPair(PrismaticPair[float32, float32, vec.F32x4FMA, F32FMA]),
	},
}

var fixedKernels = []kernelQ15{
	{"linear", Linear[int16, int32, vec.Q15x4, Q15], LinearPair[int16, int32, vec.Q15x4, Q15]},
	{"tetrahedral", Tetrahedral[int16, int32, vec.Q15x4, Q15], TetrahedralPair[int16, int32, vec.Q15x4, Q15]},
	{"pyramidal", Pyramidal[int16, int32, vec.Q15x4, Q15], PyramidalPair[int16, int32, vec.Q15x4, Q15]},
	{"prismatic", Prismatic[int16, int32, vec.Q15x4, Q15], PrismaticPair[int16, int32, vec.Q15x4, Q15]},
}

// evalF32 evaluates a gather of the unfused float regime at a single cube.
func evalF32(t terms[vec.F32x4]) vec.F32x4 { return t.eval() }

func evalQ15(t terms[vec.Q15x4]) vec.Q15x4 { return t.eval().Finish() }
