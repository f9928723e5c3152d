// Package testutil provides deterministic CLUT fixtures and tolerance checks
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// DyadicGrid returns a grid whose samples are multiples of 1/256 in
// [-1, 1). Sums and differences of such samples multiplied by weights with
// few fractional bits are exact in float32 and in Q0.15, which makes exact
// comparisons across regimes and branches possible.
func DyadicGrid(seed int64, sizes []int, channels int) *grid.Grid[float32] {
	rng := rand.New(rand.NewSource(seed))
	return mustSample(sizes, channels, func(_ []float64, out []float32) {
		for i := range out {
			out[i] = float32(rng.Intn(512)-256) / 256
		}
	})
}

// RandomGrid returns a grid of uniform samples in [0, 1).
func RandomGrid(seed int64, sizes []int, channels int) *grid.Grid[float32] {
	rng := rand.New(rand.NewSource(seed))
	return mustSample(sizes, channels, func(_ []float64, out []float32) {
		for i := range out {
			out[i] = rng.Float32()
		}
	})
}

// FullRangeGrid returns a grid of uniform multiples of 2^-15 covering the
// whole Q0.15 range [-1, 1). Neighbouring samples are unrelated, so edge and
// cross differences reach their largest magnitudes.
func FullRangeGrid(seed int64, sizes []int, channels int) *grid.Grid[float32] {
	rng := rand.New(rand.NewSource(seed))
	return mustSample(sizes, channels, func(_ []float64, out []float32) {
		for i := range out {
			out[i] = float32(rng.Intn(1<<16)-1<<15) / vec.One
		}
	})
}

// SmoothGrid samples a smooth nonlinear transform and rounds every sample to
// a multiple of 2^-15, so the grid converts to Q0.15 without loss.
func SmoothGrid(sizes []int, channels int) *grid.Grid[float32] {
	return mustSample(sizes, channels, func(p []float64, out []float32) {
		s := 0.0
		for _, v := range p {
			s += v
		}
		for c := range out {
			x := p[c%len(p)]
			v := 0.5 + 0.3*math.Sin(2.1*x+0.7*float64(c)) + 0.15*math.Cos(1.3*s)
			out[c] = float32(grid.QuantizeQ15(float32(v))) / vec.One
		}
	})
}

// RandomWeightsF32 returns one random bracketing weight per axis of g.
// Weights are multiples of 2^-15, so they convert to Q0.15 exactly.
func RandomWeightsF32[T grid.Elem](rng *rand.Rand, g *grid.Grid[T]) []weight.Weight[float32] {
	ws := make([]weight.Weight[float32], g.Dims())
	for i := range ws {
		lo := int32(rng.Intn(g.Size(i) - 1))
		ws[i] = weight.F32(lo, lo+1, float32(rng.Intn(vec.One+1))/vec.One)
	}
	return ws
}

// ToQ15Weights converts float weights to Q0.15.
func ToQ15Weights(ws []weight.Weight[float32]) []weight.Weight[int32] {
	out := make([]weight.Weight[int32], len(ws))
	for i, w := range ws {
		out[i] = weight.ToQ15(w)
	}
	return out
}

func mustSample(sizes []int, channels int, fn func(p []float64, out []float32)) *grid.Grid[float32] {
	g, err := grid.Sample(sizes, channels, fn)
	if err != nil {
		panic(err)
	}
	return g
}
