// Package grid stores CLUT lattices and fetches their corner vectors.
//
// A Grid is row-major: the stride of the last axis equals the channel count
// and every earlier stride is the product of the later axis sizes times the
// channel count. Shape is validated once in New; Offset and At trust their
// arguments unless the module is built with the clutdebug tag.
package grid

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-clut/clut"
)

// MaxDims is the largest supported axis count.
const MaxDims = 4

var (
	// ErrAxisCount is returned when a grid does not have 3 or 4 axes.
	ErrAxisCount = errors.New("grid: axis count must be 3 or 4")
	// ErrAxisSize is returned when an axis has fewer than 2 samples.
	ErrAxisSize = errors.New("grid: axis size must be at least 2")
	// ErrChannels is returned when the channel count is not 3 or 4.
	ErrChannels = errors.New("grid: channel count must be 3 or 4")
	// ErrValueCount is returned when the value slice does not match the shape.
	ErrValueCount = errors.New("grid: value count does not match shape")
)

// Elem is the sample type of a grid: float32 for the float regime, int16
// Q0.15 for the fixed-point regime.
type Elem interface {
	float32 | int16
}

// Grid is an immutable lattice of channel vectors. It is safe for concurrent
// reads.
type Grid[T Elem] struct {
	dims     int
	channels int
	sizes    [MaxDims]int
	strides  [MaxDims]int
	values   []T
}

// New validates the shape and wraps values without copying. The caller must
// not modify values afterwards.
func New[T Elem](sizes []int, channels int, values []T) (*Grid[T], error) {
	if len(sizes) != 3 && len(sizes) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrAxisCount, len(sizes))
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrChannels, channels)
	}

	g := &Grid[T]{dims: len(sizes), channels: channels, values: values}
	n := channels
	for i := len(sizes) - 1; i >= 0; i-- {
		if sizes[i] < 2 {
			return nil, fmt.Errorf("%w: axis %d has %d", ErrAxisSize, i, sizes[i])
		}
		g.sizes[i] = sizes[i]
		g.strides[i] = n
		n *= sizes[i]
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrValueCount, len(values), n)
	}

	clut.Logger().Debug("grid: created",
		"dims", g.dims, "sizes", sizes, "channels", channels, "points", n/channels)
	return g, nil
}

// Dims returns the axis count.
func (g *Grid[T]) Dims() int { return g.dims }

// Channels returns the channel count.
func (g *Grid[T]) Channels() int { return g.channels }

// Size returns the number of samples along axis.
func (g *Grid[T]) Size(axis int) int { return g.sizes[axis] }

// Stride returns the value-slice distance between neighbours along axis.
func (g *Grid[T]) Stride(axis int) int { return g.strides[axis] }

// Sizes returns a copy of the axis sizes.
func (g *Grid[T]) Sizes() []int { return append([]int(nil), g.sizes[:g.dims]...) }

// Values returns the backing slice. It must be treated as read-only.
func (g *Grid[T]) Values() []T { return g.values }

// Points returns the number of lattice points.
func (g *Grid[T]) Points() int { return len(g.values) / g.channels }

// Offset returns the value-slice index of the lattice point at coords.
func (g *Grid[T]) Offset(coords []int) int {
	off := 0
	for i, c := range coords[:g.dims] {
		g.AssertCoord(i, c)
		off += c * g.strides[i]
	}
	return off
}

// At returns the channel vector starting at off. For three channels the
// fourth lane is zero.
func (g *Grid[T]) At(off int) [4]T {
	if debug {
		g.assertOffset(off)
	}
	if g.channels == 4 {
		return [4]T(g.values[off : off+4])
	}
	p := g.values[off : off+3]
	return [4]T{p[0], p[1], p[2], 0}
}

// Fetch returns the channel vector at coords.
func (g *Grid[T]) Fetch(coords []int) [4]T {
	return g.At(g.Offset(coords))
}
