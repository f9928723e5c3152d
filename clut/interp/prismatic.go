package interp

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// PrismaticF32 evaluates g at ws by prismatic interpolation: the cell is cut
// along the plane where the weights of axes 0 and 2 are equal.
func PrismaticF32(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4 {
	return floatKernels().Prismatic(g, ws)
}

// PrismaticF32Pair evaluates ga at wa and gb at wb.
func PrismaticF32Pair(
	ga *grid.Grid[float32], wa []weight.Weight[float32],
	gb *grid.Grid[float32], wb []weight.Weight[float32],
) (vec.F32x4, vec.F32x4) {
	return floatKernels().PrismaticPair(ga, wa, gb, wb)
}

// PrismaticQ15 is the fixed-point form of PrismaticF32.
func PrismaticQ15(g *grid.Grid[int16], ws []weight.Weight[int32]) vec.Q15x4 {
	return simplex.Prismatic[int16, int32, vec.Q15x4, simplex.Q15](g, ws)
}

// PrismaticQ15Pair is the fixed-point form of PrismaticF32Pair.
func PrismaticQ15Pair(
	ga *grid.Grid[int16], wa []weight.Weight[int32],
	gb *grid.Grid[int16], wb []weight.Weight[int32],
) (vec.Q15x4, vec.Q15x4) {
	return simplex.PrismaticPair[int16, int32, vec.Q15x4, simplex.Q15](ga, wa, gb, wb)
}
