//go:build !clutdebug

package grid

const debug = false

// AssertCoord checks c against the bounds of axis in clutdebug builds and
// does nothing otherwise.
func (g *Grid[T]) AssertCoord(axis, c int) {}

func (g *Grid[T]) assertOffset(int) {}
