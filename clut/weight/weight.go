// Package weight maps quantized input samples to barycentric weights.
//
// A Weight names the two lattice indices that bracket an input along one axis
// and the fractional position between them. Tables are built once per grid
// size and input quantization; evaluation then costs a single index per axis.
package weight

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-clut/clut"
	"github.com/cwbudde/algo-clut/clut/vec"
)

// RangedBins is the table length for 8-bit inputs.
const RangedBins = 256

// MaxBins is the largest supported table length (16-bit inputs).
const MaxBins = 1 << 16

var (
	// ErrGridSize is returned for an axis with fewer than 2 samples.
	ErrGridSize = errors.New("weight: grid size must be at least 2")
	// ErrBins is returned for a table length outside [2, MaxBins].
	ErrBins = errors.New("weight: bin count out of range")
)

// Scalar is a weight representation: float32 in [0,1], or int32 Q0.15 in
// [0, vec.One].
type Scalar interface {
	float32 | int32
}

// Weight brackets one input along one axis. Upper is Lower+1, or Lower at
// the last lattice index.
type Weight[W Scalar] struct {
	Lower, Upper int32
	W            W
}

// F32 builds a float weight directly. Mostly useful in tests and for callers
// that compute positions themselves.
func F32(lower, upper int32, w float32) Weight[float32] {
	return Weight[float32]{Lower: lower, Upper: upper, W: w}
}

// Q15 builds a fixed-point weight directly.
func Q15(lower, upper int32, w int32) Weight[int32] {
	return Weight[int32]{Lower: lower, Upper: upper, W: w}
}

// ToQ15 converts a float weight to Q0.15, rounding and clamping to [0, vec.One].
func ToQ15(w Weight[float32]) Weight[int32] {
	return Weight[int32]{Lower: w.Lower, Upper: w.Upper, W: QuantizeQ15(w.W)}
}

// QuantizeQ15 converts a fractional position to a Q0.15 weight.
func QuantizeQ15(w float32) int32 {
	return int32(min(max(math.Round(float64(w)*vec.One), 0), vec.One))
}

// At computes the weight for bin index of a table with bins entries over an
// axis of gridSize samples. The lower index is floor(index*(gridSize-1)/(bins-1))
// computed in integers.
func At(index, gridSize, bins int) Weight[float32] {
	span := index * (gridSize - 1)
	x := span / (bins - 1)
	xn := min(x+1, gridSize-1)
	w := float64(span)/float64(bins-1) - float64(x)
	return Weight[float32]{Lower: int32(x), Upper: int32(xn), W: float32(w)}
}

// NewRangedF32 returns the 256-entry table for 8-bit inputs.
func NewRangedF32(gridSize int) ([]Weight[float32], error) {
	return NewBinnedF32(gridSize, RangedBins)
}

// NewRangedQ15 returns the 256-entry fixed-point table for 8-bit inputs.
func NewRangedQ15(gridSize int) ([]Weight[int32], error) {
	return NewBinnedQ15(gridSize, RangedBins)
}

// NewBinnedF32 returns a table of bins entries spanning the axis.
func NewBinnedF32(gridSize, bins int) ([]Weight[float32], error) {
	if err := check(gridSize, bins); err != nil {
		return nil, err
	}
	table := make([]Weight[float32], bins)
	for i := range table {
		table[i] = At(i, gridSize, bins)
	}
	clut.Logger().Debug("weight: table built", "grid", gridSize, "bins", bins, "regime", "f32")
	return table, nil
}

// NewBinnedQ15 returns a fixed-point table of bins entries spanning the axis.
func NewBinnedQ15(gridSize, bins int) ([]Weight[int32], error) {
	if err := check(gridSize, bins); err != nil {
		return nil, err
	}
	table := make([]Weight[int32], bins)
	for i := range table {
		table[i] = ToQ15(At(i, gridSize, bins))
	}
	clut.Logger().Debug("weight: table built", "grid", gridSize, "bins", bins, "regime", "q15")
	return table, nil
}

func check(gridSize, bins int) error {
	if gridSize < 2 {
		return fmt.Errorf("%w: got %d", ErrGridSize, gridSize)
	}
	if bins < 2 || bins > MaxBins {
		return fmt.Errorf("%w: got %d", ErrBins, bins)
	}
	return nil
}
