package accuracy

import (
	"math"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// GridF32 returns an Evaluator over a float grid using method m.
func GridF32(g *grid.Grid[float32], m interp.Method) (Evaluator, error) {
	k, err := interp.F32KernelFor(m)
	if err != nil {
		return nil, err
	}
	return func(p []float64) [4]float64 {
		var ws [grid.MaxDims]weight.Weight[float32]
		for i := range g.Dims() {
			ws[i] = WeightAt(p[i], g.Size(i))
		}
		v := k(g, ws[:g.Dims()])
		return [4]float64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
	}, nil
}

// GridQ15 returns an Evaluator over a Q0.15 grid using method m. Weights
// are quantized the same way the weight tables quantize them.
func GridQ15(g *grid.Grid[int16], m interp.Method) (Evaluator, error) {
	k, err := interp.Q15KernelFor(m)
	if err != nil {
		return nil, err
	}
	return func(p []float64) [4]float64 {
		var ws [grid.MaxDims]weight.Weight[int32]
		for i := range g.Dims() {
			ws[i] = weight.ToQ15(WeightAt(p[i], g.Size(i)))
		}
		v := k(g, ws[:g.Dims()]).F32()
		return [4]float64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
	}, nil
}

// WeightAt brackets the normalized coordinate x on an axis of size samples.
// x is clamped to [0,1].
func WeightAt(x float64, size int) weight.Weight[float32] {
	pos := min(max(x, 0), 1) * float64(size-1)
	lo := min(int(math.Floor(pos)), size-1)
	hi := min(lo+1, size-1)
	return weight.F32(int32(lo), int32(hi), float32(pos-float64(lo)))
}
