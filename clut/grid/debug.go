//go:build clutdebug

package grid

import "fmt"

const debug = true

// AssertCoord panics if c is outside axis. It compiles to nothing unless the
// clutdebug build tag is set.
func (g *Grid[T]) AssertCoord(axis, c int) {
	if axis < 0 || axis >= g.dims {
		panic(fmt.Sprintf("grid: axis %d out of range for %d-axis grid", axis, g.dims))
	}
	if c < 0 || c >= g.sizes[axis] {
		panic(fmt.Sprintf("grid: coordinate %d out of range [0,%d) on axis %d", c, g.sizes[axis], axis))
	}
}

func (g *Grid[T]) assertOffset(off int) {
	if off < 0 || off%g.channels != 0 || off+g.channels > len(g.values) {
		panic(fmt.Sprintf("grid: offset %d invalid for %d values of %d channels", off, len(g.values), g.channels))
	}
}
