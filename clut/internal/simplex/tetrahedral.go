package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// tetraPath is the walk from corner 0 to corner 7 through one tetrahedron:
// the three corners visited and the axis crossed to reach each of them.
type tetraPath struct {
	corner [3]uint8
	axis   [3]uint8
}

var tetraPaths = [6]tetraPath{
	{corner: [3]uint8{cX, cX | cY, 7}, axis: [3]uint8{0, 1, 2}}, // rx >= ry >= rz
	{corner: [3]uint8{cX, cX | cZ, 7}, axis: [3]uint8{0, 2, 1}}, // rx >= rz > ry
	{corner: [3]uint8{cZ, cX | cZ, 7}, axis: [3]uint8{2, 0, 1}}, // rz > rx >= ry
	{corner: [3]uint8{cY, cX | cY, 7}, axis: [3]uint8{1, 0, 2}}, // ry > rx >= rz
	{corner: [3]uint8{cY, cY | cZ, 7}, axis: [3]uint8{1, 2, 0}}, // ry >= rz > rx
	{corner: [3]uint8{cZ, cY | cZ, 7}, axis: [3]uint8{2, 1, 0}}, // rz > ry > rx
}

// tetraBranch picks the tetrahedron containing (rx, ry, rz). rx >= ry is
// compared first, then the remaining pair.
func tetraBranch[W weight.Scalar](rx, ry, rz W) int {
	if rx >= ry {
		if ry >= rz {
			return 0
		}
		if rx >= rz {
			return 1
		}
		return 2
	}
	if rx >= rz {
		return 3
	}
	if ry >= rz {
		return 4
	}
	return 5
}

func gatherTetra[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], c *cube, ws []weight.Weight[W],
) terms[V] {
	return gatherTetraBranch[T, W, V, R](g, c, ws, tetraBranch(ws[0].W, ws[1].W, ws[2].W))
}

// gatherTetraBranch fetches the four corners of tetrahedron b. The
// coefficients are stored per axis, so the result is always
// c0 + cx*rx + cy*ry + cz*rz whatever the branch.
func gatherTetraBranch[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], c *cube, ws []weight.Weight[W], b int,
) terms[V] {
	var r R
	p := &tetraPaths[b]

	t := terms[V]{n: 3}
	t.c[0] = r.Load(g.At(c.at(0)))
	prev := t.c[0]
	for i, m := range p.corner {
		v := r.Load(g.At(c.at(m)))
		t.c[1+p.axis[i]] = v.Sub(prev)
		prev = v
	}

	t.w[0] = r.Splat(ws[0].W)
	t.w[1] = r.Splat(ws[1].W)
	t.w[2] = r.Splat(ws[2].W)
	return t
}

// Tetrahedral evaluates g at ws by tetrahedral interpolation.
func Tetrahedral[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W],
) V {
	return evalSingle[T, W, V, R](g, ws, gatherTetra[T, W, V, R])
}

// TetrahedralPair evaluates ga at wa and gb at wb in one packed pass.
func TetrahedralPair[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	ga *grid.Grid[T], wa []weight.Weight[W], gb *grid.Grid[T], wb []weight.Weight[W],
) (V, V) {
	return evalPair[T, W, V, R](ga, wa, gb, wb, gatherTetra[T, W, V, R])
}
