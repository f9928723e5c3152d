package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

type gatherFunc[T grid.Elem, W weight.Scalar, V vec.Vector[V]] func(
	g *grid.Grid[T], c *cube, ws []weight.Weight[W],
) terms[V]

func evalSingle[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], ws []weight.Weight[W], gather gatherFunc[T, W, V],
) V {
	if g.Dims() == 3 {
		c := newCube(g, ws, 0)
		t := gather(g, &c, ws)
		return finish[T, W, V, R](t.eval())
	}

	lo, hi := heldCubes(g, ws)
	t0, t1 := gather(g, &lo, ws), gather(g, &hi, ws)
	p := join(&t0, &t1)
	a, b := p.eval().Split()
	return finish[T, W, V, R](blend[T, W, V, R](a, b, ws[3].W))
}

func evalPair[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	ga *grid.Grid[T], wa []weight.Weight[W], gb *grid.Grid[T], wb []weight.Weight[W],
	gather gatherFunc[T, W, V],
) (V, V) {
	if ga.Dims() != gb.Dims() {
		return evalSingle[T, W, V, R](ga, wa, gather), evalSingle[T, W, V, R](gb, wb, gather)
	}

	if ga.Dims() == 3 {
		ca, cb := newCube(ga, wa, 0), newCube(gb, wb, 0)
		ta, tb := gather(ga, &ca, wa), gather(gb, &cb, wb)
		p := join(&ta, &tb)
		ra, rb := p.eval().Split()
		return finish[T, W, V, R](ra), finish[T, W, V, R](rb)
	}

	la, ha := heldCubes(ga, wa)
	lb, hb := heldCubes(gb, wb)
	a0, a1 := gather(ga, &la, wa), gather(ga, &ha, wa)
	b0, b1 := gather(gb, &lb, wb), gather(gb, &hb, wb)
	pa, pb := join(&a0, &a1), join(&b0, &b1)
	q := join(&pa, &pb)

	ra, rb := q.eval().Split()
	ra0, ra1 := ra.Split()
	rb0, rb1 := rb.Split()
	return finish[T, W, V, R](blend[T, W, V, R](ra0, ra1, wa[3].W)),
		finish[T, W, V, R](blend[T, W, V, R](rb0, rb1, wb[3].W))
}
