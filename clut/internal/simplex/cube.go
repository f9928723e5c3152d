package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// Corner masks address the 8 corners of a unit cube: bit 2 selects the upper
// index on axis 0 (x), bit 1 on axis 1 (y), bit 0 on axis 2 (z).
const (
	cX = 4
	cY = 2
	cZ = 1
)

// cube holds the value offsets of the lower and upper index along each of the
// three interpolated axes. The offset of a held fourth axis is folded into x.
type cube struct {
	x, y, z [2]int
}

func (c *cube) at(m uint8) int {
	return c.x[m>>2&1] + c.y[m>>1&1] + c.z[m&1]
}

func axisOffsets[T grid.Elem, W weight.Scalar](g *grid.Grid[T], axis int, w weight.Weight[W]) [2]int {
	g.AssertCoord(axis, int(w.Lower))
	g.AssertCoord(axis, int(w.Upper))
	s := g.Stride(axis)
	return [2]int{int(w.Lower) * s, int(w.Upper) * s}
}

// newCube builds the cube over axes 0..2, shifted by base.
func newCube[T grid.Elem, W weight.Scalar](g *grid.Grid[T], ws []weight.Weight[W], base int) cube {
	x := axisOffsets(g, 0, ws[0])
	return cube{
		x: [2]int{x[0] + base, x[1] + base},
		y: axisOffsets(g, 1, ws[1]),
		z: axisOffsets(g, 2, ws[2]),
	}
}

// heldCubes returns the two cubes of a 4-axis grid with axis 3 held at its
// lower and upper index.
func heldCubes[T grid.Elem, W weight.Scalar](g *grid.Grid[T], ws []weight.Weight[W]) (lo, hi cube) {
	h := axisOffsets(g, 3, ws[3])
	return newCube(g, ws, h[0]), newCube(g, ws, h[1])
}
