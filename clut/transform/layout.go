package transform

import "fmt"

// Layout describes interleaved input pixels.
type Layout int

const (
	// LayoutRGB has three samples per pixel and needs a 3-axis grid.
	LayoutRGB Layout = iota
	// LayoutRGBA has four samples per pixel; the fourth is passed through
	// to the output unchanged. Needs a 3-axis, 3-channel grid.
	LayoutRGBA
	// LayoutCMYK has four samples per pixel and needs a 4-axis grid.
	LayoutCMYK
)

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "rgb"
	case LayoutRGBA:
		return "rgba"
	case LayoutCMYK:
		return "cmyk"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout returns the layout named s ("rgb", "rgba" or "cmyk").
func ParseLayout(s string) (Layout, error) {
	for _, l := range []Layout{LayoutRGB, LayoutRGBA, LayoutCMYK} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLayout, s)
}

func (l Layout) valid() bool {
	return l >= LayoutRGB && l <= LayoutCMYK
}

// Dims returns the grid axis count l feeds.
func (l Layout) Dims() int {
	if l == LayoutCMYK {
		return 4
	}
	return 3
}

// Stride returns the samples per input pixel.
func (l Layout) Stride() int {
	if l == LayoutRGB {
		return 3
	}
	return 4
}

func (l Layout) hasAlpha() bool { return l == LayoutRGBA }
