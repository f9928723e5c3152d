package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// The cube splits into two triangular prisms along the plane dr = db; both
// prisms run the full length of the y axis.
var prisms = [2]solid{
	{ // db >= dr
		n:       5,
		corners: [maxTerms]uint8{cZ, cX | cZ, cY, cY | cZ, 7},
		coefs: [maxTerms]coef{
			diff(1, 0), diff(2, 1), diff(3, 0), cross(0, 3, 1, 4), cross(1, 4, 2, 5),
		},
		prods: [2][2]uint8{{1, 2}, {0, 1}},
	},
	{ // dr > db
		n:       5,
		corners: [maxTerms]uint8{cX, cX | cZ, cY, cX | cY, 7},
		coefs: [maxTerms]coef{
			diff(2, 1), diff(1, 0), diff(3, 0), cross(1, 4, 2, 5), cross(0, 3, 1, 4),
		},
		prods: [2][2]uint8{{1, 2}, {0, 1}},
	},
}

func prismCase[W weight.Scalar](dr, db W) int {
	if db >= dr {
		return 0
	}
	return 1
}

func gatherPrism[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], c *cube, ws []weight.Weight[W],
) terms[V] {
	return gatherSolid[T, W, V, R](g, c, ws, &prisms[prismCase(ws[0].W, ws[2].W)])
}

// Prismatic evaluates g at ws by prismatic interpolation.
func Prismatic[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W],
) V {
	return evalSingle[T, W, V, R](g, ws, gatherPrism[T, W, V, R])
}

// PrismaticPair evaluates ga at wa and gb at wb in one packed pass. Each lane
// reads its base corner from its own grid.
func PrismaticPair[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	ga *grid.Grid[T], wa []weight.Weight[W], gb *grid.Grid[T], wb []weight.Weight[W],
) (V, V) {
	return evalPair[T, W, V, R](ga, wa, gb, wb, gatherPrism[T, W, V, R])
}
