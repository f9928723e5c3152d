// Package transform applies a CLUT to interleaved pixel buffers and images.
//
// A Transform binds a grid to an interpolation method, a regime and an input
// quantization. Inputs are reduced to weight-table indices, evaluated two
// pixels at a time and converted to the output sample type with rounding and
// clamping. A Transform is immutable and safe for concurrent use.
package transform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-clut/clut"
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

var (
	// ErrLayout is returned when the input layout does not match the grid.
	ErrLayout = errors.New("transform: layout does not match grid")
	// ErrBufferSize is returned for a source that is not a whole number of
	// pixels or a destination that is too short.
	ErrBufferSize = errors.New("transform: buffer size mismatch")
	// ErrBitDepth is returned for a 16-bit container depth outside [8, 16].
	ErrBitDepth = errors.New("transform: bit depth must be in [8, 16]")
	// ErrChannels is returned when the grid's channel count cannot be
	// written in the requested layout.
	ErrChannels = errors.New("transform: unsupported channel count for layout")
)

// Transform evaluates one grid over pixel buffers.
type Transform struct {
	cfg  Config
	grid *grid.Grid[float32]
	exec evaluator
}

// New validates g against the configuration and builds the weight tables and,
// in fixed-point mode, the quantized grid.
func New(g *grid.Grid[float32], opts ...Option) (*Transform, error) {
	cfg := ApplyOptions(opts...)

	if g.Dims() != cfg.Layout.Dims() {
		return nil, fmt.Errorf("%w: %v input needs %d axes, grid has %d",
			ErrLayout, cfg.Layout, cfg.Layout.Dims(), g.Dims())
	}
	if cfg.Layout.hasAlpha() && g.Channels() != 3 {
		return nil, fmt.Errorf("%w: %v output needs 3 grid channels, got %d",
			ErrChannels, cfg.Layout, g.Channels())
	}

	t := &Transform{cfg: cfg, grid: g}
	var err error
	if cfg.FixedPoint {
		t.exec, err = newFixedExecutor(g, cfg)
	} else {
		t.exec, err = newFloatExecutor(g, cfg)
	}
	if err != nil {
		return nil, err
	}

	clut.Logger().Debug("transform: created",
		"method", cfg.Method.String(),
		"fixed", cfg.FixedPoint,
		"bins", cfg.WeightScale.Bins(),
		"layout", cfg.Layout.String(),
		"sizes", g.Sizes())
	return t, nil
}

func newFloatExecutor(g *grid.Grid[float32], cfg Config) (evaluator, error) {
	single, err := interp.F32KernelFor(cfg.Method)
	if err != nil {
		return nil, err
	}
	pair, err := interp.F32PairKernelFor(cfg.Method)
	if err != nil {
		return nil, err
	}

	e := &executor[float32, float32, vec.F32x4]{g: g, single: single, pair: pair, norm: identity}
	for a := range g.Dims() {
		if e.tables[a], err = weight.NewBinnedF32(g.Size(a), cfg.WeightScale.Bins()); err != nil {
			return nil, fmt.Errorf("transform: axis %d: %w", a, err)
		}
	}
	return e, nil
}

func newFixedExecutor(g *grid.Grid[float32], cfg Config) (evaluator, error) {
	single, err := interp.Q15KernelFor(cfg.Method)
	if err != nil {
		return nil, err
	}
	pair, err := interp.Q15PairKernelFor(cfg.Method)
	if err != nil {
		return nil, err
	}

	q := grid.ToQ15(g)
	e := &executor[int16, int32, vec.Q15x4]{g: q, single: single, pair: pair, norm: vec.Q15x4.F32}
	for a := range q.Dims() {
		if e.tables[a], err = weight.NewBinnedQ15(q.Size(a), cfg.WeightScale.Bins()); err != nil {
			return nil, fmt.Errorf("transform: axis %d: %w", a, err)
		}
	}
	return e, nil
}

// Config returns the effective configuration.
func (t *Transform) Config() Config { return t.cfg }

// Grid returns the float grid the transform was built from.
func (t *Transform) Grid() *grid.Grid[float32] { return t.grid }

// OutStride returns the samples written per output pixel: the grid channel
// count, or 4 for LayoutRGBA.
func (t *Transform) OutStride() int {
	if t.cfg.Layout.hasAlpha() {
		return 4
	}
	return t.grid.Channels()
}

// pixels validates buffer lengths and returns the pixel count.
func (t *Transform) pixels(srcLen, dstLen int) (int, error) {
	in := t.cfg.Layout.Stride()
	if srcLen%in != 0 {
		return 0, fmt.Errorf("%w: source length %d is not a multiple of %d", ErrBufferSize, srcLen, in)
	}
	n := srcLen / in
	if need := n * t.OutStride(); dstLen < need {
		return 0, fmt.Errorf("%w: destination holds %d samples, need %d", ErrBufferSize, dstLen, need)
	}
	return n, nil
}
