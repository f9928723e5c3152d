package accuracy

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/internal/testutil"
)

func constant(v [4]float64) Evaluator {
	return func([]float64) [4]float64 { return v }
}

func TestCompareIdentical(t *testing.T) {
	f := func(p []float64) [4]float64 { return [4]float64{p[0], p[1], p[2], 0} }
	res, err := Compare(f, f, Config{PointsPerAxis: 5, RandomPoints: 10})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if res.Points != 5*5*5+10 {
		t.Fatalf("points = %d, want %d", res.Points, 5*5*5+10)
	}
	if res.MaxAbsAll != 0 || res.RMSChroma != 0 || res.MaxChroma != 0 {
		t.Fatalf("expected zero error, got %+v", res)
	}
}

func TestCompareConstantOffset(t *testing.T) {
	ref := constant([4]float64{0.5, 0.5, 0.5, 0})
	got := constant([4]float64{0.5, 0.53, 0.46, 0})

	// More points than one block, so flushing is exercised.
	res, err := Compare(ref, got, Config{Dims: 4, PointsPerAxis: 9})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if res.Points != 9*9*9*9 {
		t.Fatalf("points = %d", res.Points)
	}
	if math.Abs(res.MaxAbs[1]-0.03) > 1e-12 || math.Abs(res.MaxAbs[2]-0.04) > 1e-12 {
		t.Fatalf("MaxAbs = %v", res.MaxAbs)
	}
	if math.Abs(res.RMS[2]-0.04) > 1e-12 {
		t.Fatalf("RMS = %v", res.RMS)
	}
	if math.Abs(res.MaxChroma-0.05) > 1e-12 || math.Abs(res.RMSChroma-0.05) > 1e-12 {
		t.Fatalf("chroma = %v / %v, want 0.05", res.MaxChroma, res.RMSChroma)
	}
	if math.Abs(res.MaxSteps-0.04*32768) > 1e-6 {
		t.Fatalf("MaxSteps = %v", res.MaxSteps)
	}
}

func TestCompareWorstPoint(t *testing.T) {
	ref := constant([4]float64{})
	got := func(p []float64) [4]float64 {
		if p[0] == 1 && p[1] == 0 && p[2] == 0.5 {
			return [4]float64{0.25}
		}
		return [4]float64{}
	}
	res, err := Compare(ref, got, Config{PointsPerAxis: 3})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(res.WorstPoint) != 3 || res.WorstPoint[0] != 1 || res.WorstPoint[1] != 0 || res.WorstPoint[2] != 0.5 {
		t.Fatalf("WorstPoint = %v", res.WorstPoint)
	}
}

func TestCompareValidation(t *testing.T) {
	f := constant([4]float64{})
	if _, err := Compare(f, f, Config{Dims: 5}); !errors.Is(err, ErrDims) {
		t.Fatalf("dims: err = %v", err)
	}
	if _, err := Compare(f, f, Config{Channels: 6}); !errors.Is(err, ErrChannels) {
		t.Fatalf("channels: err = %v", err)
	}
}

func TestWeightAt(t *testing.T) {
	tests := []struct {
		x      float64
		size   int
		lo, hi int32
		w      float32
	}{
		{0, 5, 0, 1, 0},
		{0.5, 5, 2, 3, 0},
		{0.625, 5, 2, 3, 0.5},
		{1, 5, 4, 4, 0},
		{-1, 5, 0, 1, 0},
		{2, 3, 2, 2, 0},
	}
	for _, tt := range tests {
		got := WeightAt(tt.x, tt.size)
		if got.Lower != tt.lo || got.Upper != tt.hi || got.W != tt.w {
			t.Fatalf("WeightAt(%v, %d) = %+v, want {%d %d %v}", tt.x, tt.size, got, tt.lo, tt.hi, tt.w)
		}
	}
}

func TestFixedPointTracksFloat(t *testing.T) {
	// Kernel rounding stays within 2 steps; quantizing arbitrary weights to
	// Q0.15 adds a fraction of a step on top.
	const bound = 2.5

	for _, sizes := range [][]int{{9, 9, 9}, {5, 5, 5, 5}} {
		g := testutil.SmoothGrid(sizes, 3)
		q := grid.ToQ15(g)
		for _, m := range interp.Methods() {
			ref, err := GridF32(g, m)
			if err != nil {
				t.Fatalf("GridF32: %v", err)
			}
			got, err := GridQ15(q, m)
			if err != nil {
				t.Fatalf("GridQ15: %v", err)
			}
			res, err := Compare(ref, got, Config{Dims: len(sizes), PointsPerAxis: 11, RandomPoints: 500, Seed: 3})
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if res.MaxSteps > bound {
				t.Fatalf("%v %v: max error %.3f steps at %v", m, sizes, res.MaxSteps, res.WorstPoint)
			}
		}
	}
}

func TestDenserGridIsMoreAccurate(t *testing.T) {
	analytic := func(p []float64) [4]float64 {
		return [4]float64{p[0] * p[0], math.Sqrt(p[1]), 0.5 * (p[0] + p[2]), 0}
	}
	sample := func(n int) *grid.Grid[float32] {
		g, err := grid.Sample([]int{n, n, n}, 3, func(p []float64, out []float32) {
			v := analytic(p)
			for c := range out {
				out[c] = float32(v[c])
			}
		})
		if err != nil {
			t.Fatalf("grid.Sample: %v", err)
		}
		return g
	}

	var prev float64
	for i, n := range []int{5, 17, 33} {
		ev, err := GridF32(sample(n), interp.MethodTetrahedral)
		if err != nil {
			t.Fatalf("GridF32: %v", err)
		}
		res, err := Compare(analytic, ev, Config{PointsPerAxis: 13, RandomPoints: 200})
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if i > 0 && res.RMS[0] >= prev {
			t.Fatalf("grid %d: RMS %v did not improve on %v", n, res.RMS[0], prev)
		}
		prev = res.RMS[0]
	}
}
