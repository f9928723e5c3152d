// Package vec provides the 4-lane channel vectors that CLUT kernels compute
// with.
//
// Three representations implement Vector: F32x4 (float32, every product
// rounded to float32 before it is added), F32x4FMA (float32, fused
// multiply-add) and Q15x4 (Q0.15 fixed point widened to int32 lanes). Pair
// packs two vectors of one representation so a kernel can evaluate two
// independent inputs per call; its operations are lane-wise, so a paired
// evaluation is bit-identical to two single evaluations.
package vec

// Vector is the arithmetic a CLUT kernel needs from a channel vector.
// All operations are lane-wise and return a new value.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
	// MulAdd returns v + b*c.
	MulAdd(b, c V) V
}

// Lerp blends a and b with weight t and its complement tc = max - t, as
// a*tc + b*t. The result is exactly a when t is zero and exactly b when tc is
// zero, for every representation.
func Lerp[V Vector[V]](a, b, t, tc V) V {
	return a.Mul(tc).MulAdd(b, t)
}
