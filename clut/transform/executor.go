package transform

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// chunk is the number of pixels reduced and evaluated per batch.
const chunk = 64

// evaluator turns per-axis table indices into normalized output vectors.
// idx holds Dims indices per pixel, one pixel per element of out.
type evaluator interface {
	eval(idx []int, out []vec.F32x4)
}

type executor[T grid.Elem, W weight.Scalar, V any] struct {
	g      *grid.Grid[T]
	tables [grid.MaxDims][]weight.Weight[W]
	single func(*grid.Grid[T], []weight.Weight[W]) V
	pair   func(*grid.Grid[T], []weight.Weight[W], *grid.Grid[T], []weight.Weight[W]) (V, V)
	norm   func(V) vec.F32x4
}

// eval runs pixels through the pair kernel two at a time and finishes an
// odd count with the single kernel.
func (e *executor[T, W, V]) eval(idx []int, out []vec.F32x4) {
	d := e.g.Dims()
	var wa, wb [grid.MaxDims]weight.Weight[W]

	i := 0
	for ; i+1 < len(out); i += 2 {
		pa, pb := idx[i*d:], idx[(i+1)*d:]
		for a := range d {
			wa[a] = e.tables[a][pa[a]]
			wb[a] = e.tables[a][pb[a]]
		}
		ra, rb := e.pair(e.g, wa[:d], e.g, wb[:d])
		out[i], out[i+1] = e.norm(ra), e.norm(rb)
	}
	if i < len(out) {
		pa := idx[i*d:]
		for a := range d {
			wa[a] = e.tables[a][pa[a]]
		}
		out[i] = e.norm(e.single(e.g, wa[:d]))
	}
}

func identity(v vec.F32x4) vec.F32x4 { return v }
