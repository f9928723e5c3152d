package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// linearTerms holds the 2^dims hypercube corners and the weight and
// complement of every axis. Corner index bit dims-1-i selects the upper index
// on axis i, so neighbours along the last axis are adjacent.
type linearTerms[V vec.Vector[V]] struct {
	dims  int
	c     [1 << grid.MaxDims]V
	t, tc [grid.MaxDims]V
}

func gatherLinear[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W],
) linearTerms[V] {
	var r R
	n := g.Dims()

	var off [grid.MaxDims][2]int
	for i := range n {
		off[i] = axisOffsets(g, i, ws[i])
	}

	t := linearTerms[V]{dims: n}
	for m := range 1 << n {
		o := 0
		for i := range n {
			o += off[i][m>>(n-1-i)&1]
		}
		t.c[m] = r.Load(g.At(o))
	}
	for i := range n {
		t.t[i] = r.Splat(ws[i].W)
		t.tc[i] = r.Splat(r.One() - ws[i].W)
	}
	return t
}

// eval blends corner pairs along the last axis, then the next, finishing on
// the first.
func (l *linearTerms[V]) eval() V {
	c := l.c
	k := 1 << l.dims
	for axis := l.dims - 1; axis >= 0; axis-- {
		k >>= 1
		for j := range k {
			c[j] = vec.Lerp(c[2*j], c[2*j+1], l.t[axis], l.tc[axis])
		}
	}
	return c[0]
}

func joinLinear[V vec.Vector[V]](a, b *linearTerms[V]) linearTerms[vec.Pair[V]] {
	out := linearTerms[vec.Pair[V]]{dims: a.dims}
	for m := range 1 << a.dims {
		out.c[m] = vec.Join(a.c[m], b.c[m])
	}
	for i := range a.dims {
		out.t[i] = vec.Join(a.t[i], b.t[i])
		out.tc[i] = vec.Join(a.tc[i], b.tc[i])
	}
	return out
}

// Linear evaluates g at ws by multilinear interpolation over all 2^D corners.
func Linear[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W],
) V {
	t := gatherLinear[T, W, V, R](g, ws)
	return finish[T, W, V, R](t.eval())
}

// LinearPair evaluates ga at wa and gb at wb in one packed pass.
func LinearPair[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	ga *grid.Grid[T], wa []weight.Weight[W], gb *grid.Grid[T], wb []weight.Weight[W],
) (V, V) {
	if ga.Dims() != gb.Dims() {
		return Linear[T, W, V, R](ga, wa), Linear[T, W, V, R](gb, wb)
	}
	ta := gatherLinear[T, W, V, R](ga, wa)
	tb := gatherLinear[T, W, V, R](gb, wb)
	p := joinLinear(&ta, &tb)
	a, b := p.eval().Split()
	return finish[T, W, V, R](a), finish[T, W, V, R](b)
}
