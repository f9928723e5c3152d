package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// solid describes one case of the pyramidal or prismatic decomposition.
// Slot 0 is corner 0, slots 1..n are the listed corners. Coefficients are
// weighted by db, dr, dg and then by the listed weight products, where the
// weight axes are 0 = dr (x), 1 = dg (y), 2 = db (z).
type solid struct {
	n       int
	corners [maxTerms]uint8
	coefs   [maxTerms]coef
	prods   [2][2]uint8
}

func gatherSolid[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](
	g *grid.Grid[T], c *cube, ws []weight.Weight[W], s *solid,
) terms[V] {
	var r R

	var slot [maxTerms + 1]V
	slot[0] = r.Load(g.At(c.at(0)))
	for i := range s.n {
		slot[i+1] = r.Load(g.At(c.at(s.corners[i])))
	}

	t := terms[V]{n: s.n}
	t.c[0] = slot[0]
	for i := range s.n {
		t.c[i+1] = applyCoef(s.coefs[i], slot[:])
	}

	dr, dg, db := ws[0].W, ws[1].W, ws[2].W
	axes := [3]W{dr, dg, db}
	t.w[0] = r.Splat(db)
	t.w[1] = r.Splat(dr)
	t.w[2] = r.Splat(dg)
	// A product term scales its coefficient by the first weight here and by
	// the second in eval. Weights are never multiplied with each other, so
	// the fixed regime rounds only guarded values.
	for i := range s.n - 3 {
		p := s.prods[i]
		t.c[4+i] = t.c[4+i].Mul(r.Splat(axes[p[0]]))
		t.w[3+i] = r.Splat(axes[p[1]])
	}
	return t
}
