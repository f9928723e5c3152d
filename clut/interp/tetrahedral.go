package interp

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// TetrahedralF32 evaluates g at ws by tetrahedral interpolation. For 4 axes the
// result is blended along axis 3 between two tetrahedral evaluations.
func TetrahedralF32(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4 {
	return floatKernels().Tetrahedral(g, ws)
}

// TetrahedralF32Pair evaluates ga at wa and gb at wb.
func TetrahedralF32Pair(
	ga *grid.Grid[float32], wa []weight.Weight[float32],
	gb *grid.Grid[float32], wb []weight.Weight[float32],
) (vec.F32x4, vec.F32x4) {
	return floatKernels().TetrahedralPair(ga, wa, gb, wb)
}

// TetrahedralQ15 is the fixed-point form of TetrahedralF32.
func TetrahedralQ15(g *grid.Grid[int16], ws []weight.Weight[int32]) vec.Q15x4 {
	return simplex.Tetrahedral[int16, int32, vec.Q15x4, simplex.Q15](g, ws)
}

// TetrahedralQ15Pair is the fixed-point form of TetrahedralF32Pair.
func TetrahedralQ15Pair(
	ga *grid.Grid[int16], wa []weight.Weight[int32],
	gb *grid.Grid[int16], wb []weight.Weight[int32],
) (vec.Q15x4, vec.Q15x4) {
	return simplex.TetrahedralPair[int16, int32, vec.Q15x4, simplex.Q15](ga, wa, gb, wb)
}
