package interp

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/internal/simplex"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// PyramidalF32 evaluates g at ws by pyramidal interpolation. The cell is
// split into three pyramids that share the far corner. Adjoining pyramids
// agree exactly only on the cell edges of their common face.
func PyramidalF32(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4 {
	return floatKernels().Pyramidal(g, ws)
}

func PyramidalF32Pair(
	ga *grid.Grid[float32], wa []weight.Weight[float32],
	gb *grid.Grid[float32], wb []weight.Weight[float32],
) (vec.F32x4, vec.F32x4) {
	return floatKernels().PyramidalPair(ga, wa, gb, wb)
}

// PyramidalQ15 is the fixed-point form of PyramidalF32.
func PyramidalQ15(g *grid.Grid[int16], ws []weight.Weight[int32]) vec.Q15x4 {
	return simplex.Pyramidal[int16, int32, vec.Q15x4, simplex.Q15](g, ws)
}

func PyramidalQ15Pair(
	ga *grid.Grid[int16], wa []weight.Weight[int32],
	gb *grid.Grid[int16], wb []weight.Weight[int32],
) (vec.Q15x4, vec.Q15x4) {
	return simplex.PyramidalPair[int16, int32, vec.Q15x4, simplex.Q15](ga, wa, gb, wb)
}
