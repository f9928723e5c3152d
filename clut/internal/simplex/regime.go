package simplex

import (
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// Regime ties a grid sample type and a weight type to the vector type the
// kernels compute in. Implementations are zero-size.
type Regime[T grid.Elem, W weight.Scalar, V any] interface {
	// Load widens a fetched channel vector.
	Load(p [4]T) V
	// Splat broadcasts a weight to every lane.
	Splat(w W) V
	// One is the weight that represents 1.0.
	One() W
	// Finish converts a kernel result to the regime's output scale.
	Finish(v V) V
}

// F32 computes in vec.F32x4 with products rounded before addition.
type F32 struct{}

func (F32) Load(p [4]float32) vec.F32x4  { return vec.F32x4(p) }
func (F32) Splat(w float32) vec.F32x4    { return vec.SplatF32(w) }
func (F32) One() float32                 { return 1 }
func (F32) Finish(v vec.F32x4) vec.F32x4 { return v }

// F32FMA computes in vec.F32x4FMA.
type F32FMA struct{}

func (F32FMA) Load(p [4]float32) vec.F32x4FMA     { return vec.F32x4FMA(p) }
func (F32FMA) Splat(w float32) vec.F32x4FMA       { return vec.F32x4FMA(vec.SplatF32(w)) }
func (F32FMA) One() float32                       { return 1 }
func (F32FMA) Finish(v vec.F32x4FMA) vec.F32x4FMA { return v }

// Q15 computes in vec.Q15x4 over int16 grids with weights in [0, vec.One].
// Results are Q0.15.
type Q15 struct{}

func (Q15) Load(p [4]int16) vec.Q15x4    { return vec.LoadQ15(p) }
func (Q15) Splat(w int32) vec.Q15x4      { return vec.SplatQ15(w) }
func (Q15) One() int32                   { return vec.One }
func (Q15) Finish(v vec.Q15x4) vec.Q15x4 { return v.Finish() }

// blend lerps a and b along a held axis with weight w.
func blend[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](a, b V, w W) V {
	var r R
	return vec.Lerp(a, b, r.Splat(w), r.Splat(r.One()-w))
}

func finish[T grid.Elem, W weight.Scalar, V vec.Vector[V], R Regime[T, W, V]](v V) V {
	var r R
	return r.Finish(v)
}
