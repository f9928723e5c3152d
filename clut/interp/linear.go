package interp

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// LinearF32 evaluates g at ws by multilinear interpolation over all 2^D
// corners of the enclosing cell. Four-axis grids are handled natively.
func LinearF32(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4 {
	return floatKernels().Linear(g, ws)
}

// LinearF32Pair evaluates ga at wa and gb at wb.
func LinearF32Pair(
	ga *grid.Grid[float32], wa []weight.Weight[float32],
	gb *grid.Grid[float32], wb []weight.Weight[float32],
) (vec.F32x4, vec.F32x4) {
	return floatKernels().LinearPair(ga, wa, gb, wb)
}

// LinearQ15 is the fixed-point form of LinearF32.
func LinearQ15(g *grid.Grid[int16], ws []weight.Weight[int32]) vec.Q15x4 {
	return simplex.Linear[int16, int32, vec.Q15x4, simplex.Q15](g, ws)
}

// LinearQ15Pair is the fixed-point form of LinearF32Pair.
func LinearQ15Pair(
	ga *grid.Grid[int16], wa []weight.Weight[int32],
	gb *grid.Grid[int16], wb []weight.Weight[int32],
) (vec.Q15x4, vec.Q15x4) {
	return simplex.LinearPair[int16, int32, vec.Q15x4, simplex.Q15](ga, wa, gb, wb)
}
