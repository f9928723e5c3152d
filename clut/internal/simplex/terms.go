package simplex

import (
	"github.com/cwbudde/algo-clut/clut/vec"
)

// maxTerms is the largest coefficient count (prismatic).
const maxTerms = 5

// terms is the gathered state of a simplex kernel: the base corner c[0],
// coefficients c[1..n] and their weights w[0..n-1].
type terms[V vec.Vector[V]] struct {
	n int
	c [maxTerms + 1]V
	w [maxTerms]V
}

// eval returns c0 + c1*w0 + c2*w1 + ... accumulated left to right.
func (t *terms[V]) eval() V {
	acc := t.c[0]
	for i := range t.n {
		acc = acc.MulAdd(t.c[i+1], t.w[i])
	}
	return acc
}

// join packs two gathers of the same kernel.
func join[V vec.Vector[V]](a, b *terms[V]) terms[vec.Pair[V]] {
	out := terms[vec.Pair[V]]{n: a.n}
	for i := range a.n + 1 {
		out.c[i] = vec.Join(a.c[i], b.c[i])
	}
	for i := range a.n {
		out.w[i] = vec.Join(a.w[i], b.w[i])
	}
	return out
}

// coef describes a coefficient as a combination of gathered corner slots:
// s[a]-s[b] when four is false, s[a]-s[b]-s[c]+s[d] otherwise.
type coef struct {
	four       bool
	a, b, c, d uint8
}

func diff(a, b uint8) coef        { return coef{a: a, b: b} }
func cross(a, b, c, d uint8) coef { return coef{four: true, a: a, b: b, c: c, d: d} }

func applyCoef[V vec.Vector[V]](k coef, s []V) V {
	v := s[k.a].Sub(s[k.b])
	if k.four {
		v = v.Sub(s[k.c]).Add(s[k.d])
	}
	return v
}
