package vec

// One is the Q0.15 weight that represents 1.0. It is one step above the
// largest storable grid value, so weights are carried in int32.
const One = 1 << 15

// Guard is the number of extra fractional bits a loaded Q15x4 carries while a
// kernel runs. Multiplications by Q0.15 weights keep the scale of the value
// operand, so their rounding stays 2^-Guard of an output step; Finish rounds
// back to Q0.15 once at the end.
const Guard = 8

// Q15x4 is a fixed-point channel vector. Grid samples are int16 Q0.15; lanes
// are widened to int32 so edge differences and their sums cannot wrap.
type Q15x4 [4]int32

// MulQ15 multiplies two Q0.15 values, rounding half up.
func MulQ15(a, b int32) int32 {
	return int32((int64(a)*int64(b) + 1<<14) >> 15)
}

// SplatQ15 returns a Q15x4 with w in every lane.
func SplatQ15(w int32) Q15x4 {
	return Q15x4{w, w, w, w}
}

// LoadQ15 widens four stored samples and adds the guard bits.
func LoadQ15(p [4]int16) Q15x4 {
	return Q15x4{int32(p[0]) << Guard, int32(p[1]) << Guard, int32(p[2]) << Guard, int32(p[3]) << Guard}
}

// Finish drops the guard bits of a kernel result, rounding half up.
func (v Q15x4) Finish() Q15x4 {
	const half = 1 << (Guard - 1)
	return Q15x4{(v[0] + half) >> Guard, (v[1] + half) >> Guard, (v[2] + half) >> Guard, (v[3] + half) >> Guard}
}

func (v Q15x4) Add(o Q15x4) Q15x4 {
	return Q15x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Q15x4) Sub(o Q15x4) Q15x4 {
	return Q15x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Q15x4) Mul(o Q15x4) Q15x4 {
	return Q15x4{MulQ15(v[0], o[0]), MulQ15(v[1], o[1]), MulQ15(v[2], o[2]), MulQ15(v[3], o[3])}
}

func (v Q15x4) MulAdd(b, c Q15x4) Q15x4 {
	return Q15x4{
		v[0] + MulQ15(b[0], c[0]),
		v[1] + MulQ15(b[1], c[1]),
		v[2] + MulQ15(b[2], c[2]),
		v[3] + MulQ15(b[3], c[3]),
	}
}

// Narrow saturates Q0.15 lanes to int16 storage.
func (v Q15x4) Narrow() [4]int16 {
	var out [4]int16
	for i, x := range v {
		out[i] = int16(min(max(x, -1<<15), 1<<15-1))
	}
	return out
}

// F32 converts Q0.15 lanes to float32 (v/32768).
func (v Q15x4) F32() F32x4 {
	const scale = 1.0 / One
	return F32x4{float32(v[0]) * scale, float32(v[1]) * scale, float32(v[2]) * scale, float32(v[3]) * scale}
}
