package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// The cube splits into three square pyramids with apex at corner 7. Each has
// the cube face on which the smallest weight is zero as its base; the
// product term is the bilinear correction across that base.
var pyramids = [3]solid{
	{ // db smallest: base z = 0
		n:       4,
		corners: [maxTerms]uint8{7, cX | cY, cX, cY},
		coefs:   [maxTerms]coef{diff(1, 2), diff(3, 0), diff(4, 0), cross(0, 4, 3, 2)},
		prods:   [2][2]uint8{{0, 1}},
	},
	{ // dr smallest: base x = 0
		n:       4,
		corners: [maxTerms]uint8{cZ, 7, cY | cZ, cY},
		coefs:   [maxTerms]coef{diff(1, 0), diff(2, 3), diff(4, 0), cross(0, 4, 1, 3)},
		prods:   [2][2]uint8{{1, 2}},
	},
	{ // dg smallest: base y = 0
		n:       4,
		corners: [maxTerms]uint8{cZ, cX, cX | cZ, 7},
		coefs:   [maxTerms]coef{diff(1, 0), diff(2, 0), diff(4, 3), cross(0, 2, 1, 3)},
		prods:   [2][2]uint8{{2, 0}},
	},
}

// pyramidCase picks the pyramid whose base weight is the smallest. Ties
// resolve to the first matching pyramid, so every lattice corner lands in a
// pyramid that contains it.
func pyramidCase[W weight.Scalar](dr, dg, db W) int {
	if dr >= db && dg >= db {
		return 0
	}
	if db >= dr && dg >= dr {
		return 1
	}
	return 2
}

func gatherPyramid[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], c *cube, ws []weight.Weight[W],
) terms[V] {
	k := pyramidCase(ws[0].W, ws[1].W, ws[2].W)
	return gatherSolid[T, W, V, R](g, c, ws, &pyramids[k])
}

// Pyramidal evaluates g at ws by pyramidal interpolation.
func Pyramidal[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W],
) V {
	return evalSingle[T, W, V, R](g, ws, gatherPyramid[T, W, V, R])
}

// PyramidalPair evaluates ga at wa and gb at wb in one packed pass.
func PyramidalPair[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	ga *grid.Grid[T], wa []weight.Weight[W], gb *grid.Grid[T], wb []weight.Weight[W],
) (V, V) {
	return evalPair[T, W, V, R](ga, wa, gb, wb, gatherPyramid[T, W, V, R])
}
