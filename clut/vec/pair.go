package vec

// Pair packs two independent vectors of the same representation. Every
// operation applies the underlying operation to Lo and Hi separately.
type Pair[V Vector[V]] struct {
	Lo, Hi V
}

// Join packs a and b.
func Join[V Vector[V]](a, b V) Pair[V] {
	return Pair[V]{Lo: a, Hi: b}
}

// Split unpacks p.
func (p Pair[V]) Split() (V, V) {
	return p.Lo, p.Hi
}

func (p Pair[V]) Add(o Pair[V]) Pair[V] {
	return Pair[V]{p.Lo.Add(o.Lo), p.Hi.Add(o.Hi)}
}

func (p Pair[V]) Sub(o Pair[V]) Pair[V] {
	return Pair[V]{p.Lo.Sub(o.Lo), p.Hi.Sub(o.Hi)}
}

func (p Pair[V]) Mul(o Pair[V]) Pair[V] {
	return Pair[V]{p.Lo.Mul(o.Lo), p.Hi.Mul(o.Hi)}
}

func (p Pair[V]) MulAdd(b, c Pair[V]) Pair[V] {
	return Pair[V]{p.Lo.MulAdd(b.Lo, c.Lo), p.Hi.MulAdd(b.Hi, c.Hi)}
}
