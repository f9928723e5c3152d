package grid

import "math"

// Sample builds a float32 grid by evaluating fn at every lattice point. The
// point is passed as normalized coordinates in [0,1] per axis; fn writes
// channels values into out.
func Sample(sizes []int, channels int, fn func(p []float64, out []float32)) (*Grid[float32], error) {
	n := channels
	for _, s := range sizes {
		n *= max(s, 0)
	}
	values := make([]float32, n)
	g, err := New(sizes, channels, values)
	if err != nil {
		return nil, err
	}

	var idx [MaxDims]int
	var pt [MaxDims]float64
	dims := g.dims
	for off := 0; off < len(values); off += channels {
		for i := range dims {
			pt[i] = float64(idx[i]) / float64(g.sizes[i]-1)
		}
		fn(pt[:dims], values[off:off+channels])

		for i := dims - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < g.sizes[i] {
				break
			}
			idx[i] = 0
		}
	}
	return g, nil
}

// ToQ15 quantizes a float32 grid to Q0.15: round(v*32768), saturated to the
// int16 range.
func ToQ15(g *Grid[float32]) *Grid[int16] {
	q := make([]int16, len(g.values))
	for i, v := range g.values {
		q[i] = QuantizeQ15(v)
	}
	return &Grid[int16]{dims: g.dims, channels: g.channels, sizes: g.sizes, strides: g.strides, values: q}
}

// QuantizeQ15 converts one sample to Q0.15 with rounding and saturation.
func QuantizeQ15(v float32) int16 {
	r := math.Round(float64(v) * 32768)
	return int16(min(max(r, -32768), 32767))
}
