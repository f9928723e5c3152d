package vec

import (
	"math"
	"testing"
)

func TestMulQ15Rounding(t *testing.T) {
	tests := []struct {
		a, b, want int32
	}{
		{0, 0, 0},
		{One, One, One},
		{12345, One, 12345},
		{-12345, One, -12345},
		{12345, 0, 0},
		{1, 1 << 14, 1},    // 0.5 step rounds up
		{-1, 1 << 14, 0},   // -0.5 step rounds up
		{3, 1 << 14, 2},    // 1.5 steps
		{16384, 16384, 8192},
		{65535, 16384, 32768}, // widened lanes do not overflow
	}
	for _, tt := range tests {
		if got := MulQ15(tt.a, tt.b); got != tt.want {
			t.Fatalf("MulQ15(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	a := F32x4{0.1, -0.7, 1e-8, 3}
	b := F32x4{0.9, 0.25, 1, -2}
	zero, one := SplatF32(0), SplatF32(1)
	if got := Lerp(a, b, zero, one); got != a {
		t.Fatalf("F32 lerp at 0: got %v want %v", got, a)
	}
	if got := Lerp(a, b, one, zero); got != b {
		t.Fatalf("F32 lerp at 1: got %v want %v", got, b)
	}

	af, bf := F32x4FMA(a), F32x4FMA(b)
	if got := Lerp(af, bf, F32x4FMA(zero), F32x4FMA(one)); got != af {
		t.Fatalf("FMA lerp at 0: got %v want %v", got, af)
	}
	if got := Lerp(af, bf, F32x4FMA(one), F32x4FMA(zero)); got != bf {
		t.Fatalf("FMA lerp at 1: got %v want %v", got, bf)
	}

	qa := Q15x4{-32768, -1, 0, 32767}
	qb := Q15x4{32767, 1234, -4321, 7}
	if got := Lerp(qa, qb, SplatQ15(0), SplatQ15(One)); got != qa {
		t.Fatalf("Q15 lerp at 0: got %v want %v", got, qa)
	}
	if got := Lerp(qa, qb, SplatQ15(One), SplatQ15(0)); got != qb {
		t.Fatalf("Q15 lerp at 1: got %v want %v", got, qb)
	}
}

func TestF32x4MulAddRoundsProduct(t *testing.T) {
	// 1+2^-12 squared needs 25 bits; the unfused form drops the last one.
	x := float32(1 + 1.0/4096)
	v := F32x4{-1, -1, -1, -1}
	got := v.MulAdd(SplatF32(x), SplatF32(x))[0]
	want := float32(float64(float32(float64(x)*float64(x))) - 1)
	if got != want {
		t.Fatalf("unfused MulAdd: got %g want %g", got, want)
	}

	fused := F32x4FMA(v).MulAdd(F32x4FMA(SplatF32(x)), F32x4FMA(SplatF32(x)))[0]
	exact := float32(float64(x)*float64(x) - 1)
	if fused != exact {
		t.Fatalf("fused MulAdd: got %g want %g", fused, exact)
	}
}

func TestF32x4LerpRoundsBothProducts(t *testing.T) {
	x := float32(1 + 1.0/4096)
	want := float32(float64(float32(float64(x)*float64(x))) - 1)

	got := Lerp(SplatF32(x), SplatF32(-1), SplatF32(1), SplatF32(x))
	for i := range got {
		if got[i] != want {
			t.Fatalf("lane %d: got %g want %g", i, got[i], want)
		}
	}
	if p := SplatF32(x).Mul(SplatF32(x))[0]; p != float32(float64(x)*float64(x)) {
		t.Fatalf("Mul: got %g want the float32-rounded square", p)
	}
}

func TestPairIsLaneWise(t *testing.T) {
	a := Q15x4{100, -200, 300, 0}
	b := Q15x4{-5000, 32767, 1, 2}
	wa, wb := SplatQ15(12000), SplatQ15(30001)

	p := Join(a, a).MulAdd(Join(b, a), Join(wa, wb))
	lo, hi := p.Split()
	if want := a.MulAdd(b, wa); lo != want {
		t.Fatalf("lo: got %v want %v", lo, want)
	}
	if want := a.MulAdd(a, wb); hi != want {
		t.Fatalf("hi: got %v want %v", hi, want)
	}

	pp := Join(Join(a, b), Join(b, a)).Sub(Join(Join(b, b), Join(a, a)))
	if pp.Lo.Lo != a.Sub(b) || pp.Lo.Hi != (Q15x4{}) || pp.Hi.Lo != b.Sub(a) || pp.Hi.Hi != (Q15x4{}) {
		t.Fatalf("nested pair Sub mismatch: %+v", pp)
	}
}

func TestNarrowSaturates(t *testing.T) {
	got := Q15x4{40000, -40000, 32767, -32768}.Narrow()
	want := [4]int16{32767, -32768, 32767, -32768}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestQ15ToF32(t *testing.T) {
	got := Q15x4{One / 2, -One / 4, 0, One}.F32()
	want := F32x4{0.5, -0.25, 0, 1}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) != 0 {
			t.Fatalf("lane %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLoadFinishRoundTrip(t *testing.T) {
	for _, p := range [][4]int16{{0, 1, -1, 32767}, {-32768, 12345, -12345, 2}} {
		if got := LoadQ15(p).Finish().Narrow(); got != p {
			t.Fatalf("got %v want %v", got, p)
		}
	}

	got := Q15x4{128, -128, 384, 127}.Finish()
	want := Q15x4{1, 0, 2, 0}
	if got != want {
		t.Fatalf("Finish rounding: got %v want %v", got, want)
	}
}
