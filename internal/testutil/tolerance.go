package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-clut/clut/vec"
)

// RequireVecNearlyEqual fails t if any lane of got and want differs by more
// than eps.
func RequireVecNearlyEqual(t *testing.T, got, want vec.F32x4, eps float64) {
	t.Helper()
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("lane %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// Widen returns a Q0.15 sample vector as it is returned by a fixed-point
// kernel, without guard bits.
func Widen(p [4]int16) vec.Q15x4 {
	return vec.Q15x4{int32(p[0]), int32(p[1]), int32(p[2]), int32(p[3])}
}
