package vec

import "math"

// F32x4 is a float32 channel vector. Every product is converted to float32
// explicitly, which rounds it before any addition; results do not depend on
// whether the target fuses multiply and add.
type F32x4 [4]float32

// SplatF32 returns an F32x4 with w in every lane.
func SplatF32(w float32) F32x4 {
	return F32x4{w, w, w, w}
}

func (v F32x4) Add(o F32x4) F32x4 {
	return F32x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v F32x4) Sub(o F32x4) F32x4 {
	return F32x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v F32x4) Mul(o F32x4) F32x4 {
	return F32x4{float32(v[0] * o[0]), float32(v[1] * o[1]), float32(v[2] * o[2]), float32(v[3] * o[3])}
}

func (v F32x4) MulAdd(b, c F32x4) F32x4 {
	return F32x4{
		v[0] + float32(b[0]*c[0]),
		v[1] + float32(b[1]*c[1]),
		v[2] + float32(b[2]*c[2]),
		v[3] + float32(b[3]*c[3]),
	}
}

// F32x4FMA is a float32 channel vector whose MulAdd is fused: the product is
// not rounded before the addition. On processors without FMA it falls back to
// the slower software path of math.FMA, which is why kernels over this type are
// only selected when the hardware provides it.
type F32x4FMA [4]float32

func (v F32x4FMA) Add(o F32x4FMA) F32x4FMA {
	return F32x4FMA{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v F32x4FMA) Sub(o F32x4FMA) F32x4FMA {
	return F32x4FMA{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v F32x4FMA) Mul(o F32x4FMA) F32x4FMA {
	return F32x4FMA{float32(v[0] * o[0]), float32(v[1] * o[1]), float32(v[2] * o[2]), float32(v[3] * o[3])}
}

func (v F32x4FMA) MulAdd(b, c F32x4FMA) F32x4FMA {
	return F32x4FMA{
		fma32(b[0], c[0], v[0]),
		fma32(b[1], c[1], v[1]),
		fma32(b[2], c[2], v[2]),
		fma32(b[3], c[3], v[3]),
	}
}

func fma32(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}
