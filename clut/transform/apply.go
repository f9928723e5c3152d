package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

type sample interface {
	uint8 | uint16 | float32
}

// Apply8 transforms 8-bit pixels from src into dst. dst may alias src when
// OutStride does not exceed the input stride.
func (t *Transform) Apply8(dst, src []uint8) error {
	if _, err := t.pixels(len(src), len(dst)); err != nil {
		return err
	}
	bins := t.cfg.WeightScale.Bins()
	apply(t, dst, src,
		func(v uint8) int { return weight.ExpandU8(v, bins) },
		func(v float32) uint8 { return uint8(quantize(v, math.MaxUint8)) })
	return nil
}

// Apply16 transforms pixels with bitDepth significant bits stored in uint16
// samples. Output uses the same depth. Samples above the depth's range are
// clamped.
func (t *Transform) Apply16(dst, src []uint16, bitDepth int) error {
	if bitDepth < 8 || bitDepth > 16 {
		return fmt.Errorf("%w: got %d", ErrBitDepth, bitDepth)
	}
	if _, err := t.pixels(len(src), len(dst)); err != nil {
		return err
	}
	apply16(t, dst, src, bitDepth)
	return nil
}

func apply16(t *Transform, dst, src []uint16, bitDepth int) {
	bins := t.cfg.WeightScale.Bins()
	maxIn := uint16(int(1)<<bitDepth - 1)
	maxOut := float64(maxIn)
	apply(t, dst, src,
		func(v uint16) int { return weight.ReduceU16(min(v, maxIn), bitDepth, bins) },
		func(v float32) uint16 { return uint16(quantize(v, maxOut)) })
}

// ApplyF32 transforms normalized float pixels. Inputs are clamped to [0,1]
// and quantized to the configured bin count; outputs are not clamped.
func (t *Transform) ApplyF32(dst, src []float32) error {
	if _, err := t.pixels(len(src), len(dst)); err != nil {
		return err
	}
	bins := t.cfg.WeightScale.Bins()
	apply(t, dst, src,
		func(v float32) int { return weight.ReduceF32(v, bins) },
		func(v float32) float32 { return v })
	return nil
}

// apply runs validated buffers through the executor one chunk at a time.
// Each chunk is fully reduced before any of its outputs are written.
func apply[S sample](t *Transform, dst, src []S, reduce func(S) int, store func(float32) S) {
	l := t.cfg.Layout
	in, out, d, ch := l.Stride(), t.OutStride(), l.Dims(), t.grid.Channels()
	n := len(src) / in

	var idx [chunk * grid.MaxDims]int
	var res [chunk]vec.F32x4
	for p0 := 0; p0 < n; p0 += chunk {
		m := min(chunk, n-p0)
		for k := range m {
			s := src[(p0+k)*in:]
			for a := range d {
				idx[k*d+a] = reduce(s[a])
			}
		}

		t.exec.eval(idx[:m*d], res[:m])

		for k := range m {
			o := dst[(p0+k)*out:]
			if l.hasAlpha() {
				o[3] = src[(p0+k)*in+3]
			}
			for c := range ch {
				o[c] = store(res[k][c])
			}
		}
	}
}

// quantize scales a normalized value to [0, maxOut] with rounding.
func quantize(v float32, maxOut float64) float64 {
	return min(max(math.Round(float64(v)*maxOut), 0), maxOut)
}
