package weight

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-clut/clut/vec"
)

func TestRangedTable(t *testing.T) {
	const gridSize = 17
	table, err := NewRangedF32(gridSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != RangedBins {
		t.Fatalf("len = %d, want %d", len(table), RangedBins)
	}

	first, last := table[0], table[255]
	if first != (Weight[float32]{Lower: 0, Upper: 1, W: 0}) {
		t.Fatalf("first = %+v", first)
	}
	if last != (Weight[float32]{Lower: 16, Upper: 16, W: 0}) {
		t.Fatalf("last = %+v", last)
	}

	for i, w := range table {
		if w.W < 0 || w.W >= 1 {
			t.Fatalf("index %d: weight %v outside [0,1)", i, w.W)
		}
		if w.Upper != min(w.Lower+1, gridSize-1) {
			t.Fatalf("index %d: upper %d for lower %d", i, w.Upper, w.Lower)
		}
		pos := float64(i) * (gridSize - 1) / 255
		if got := float64(w.Lower) + float64(w.W); math.Abs(got-pos) > 1e-6 {
			t.Fatalf("index %d: position %v, want %v", i, got, pos)
		}
	}
}

func TestBinnedQ15MatchesF32(t *testing.T) {
	f, err := NewBinnedF32(33, 4096)
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewBinnedQ15(33, 4096)
	if err != nil {
		t.Fatal(err)
	}
	for i := range f {
		if q[i].Lower != f[i].Lower || q[i].Upper != f[i].Upper {
			t.Fatalf("index %d: indices differ %+v vs %+v", i, q[i], f[i])
		}
		want := int32(math.Round(float64(f[i].W) * vec.One))
		if q[i].W != want {
			t.Fatalf("index %d: q15 weight %d, want %d", i, q[i].W, want)
		}
	}
}

func TestTableErrors(t *testing.T) {
	tests := []struct {
		name       string
		grid, bins int
		want       error
	}{
		{"grid 1", 1, 256, ErrGridSize},
		{"bins 1", 17, 1, ErrBins},
		{"bins too many", 17, MaxBins + 1, ErrBins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBinnedF32(tt.grid, tt.bins); !errors.Is(err, tt.want) {
				t.Fatalf("NewBinnedF32 error = %v, want %v", err, tt.want)
			}
			if _, err := NewBinnedQ15(tt.grid, tt.bins); !errors.Is(err, tt.want) {
				t.Fatalf("NewBinnedQ15 error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestQuantizeQ15Clamps(t *testing.T) {
	for _, tt := range []struct {
		in   float32
		want int32
	}{
		{0, 0}, {1, vec.One}, {0.5, vec.One / 2}, {-0.1, 0}, {1.5, vec.One},
	} {
		if got := QuantizeQ15(tt.in); got != tt.want {
			t.Fatalf("QuantizeQ15(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReduce(t *testing.T) {
	if got := ReduceU16(0xffff, 16, RangedBins); got != 255 {
		t.Fatalf("ReduceU16 16->8 = %d", got)
	}
	if got := ReduceU16(1023, 10, RangedBins); got != 255 {
		t.Fatalf("ReduceU16 10->8 = %d", got)
	}
	if got := ReduceU16(4095, 12, 4096); got != 4095 {
		t.Fatalf("ReduceU16 12->4096 = %d", got)
	}
	if got := ReduceU16(512, 10, 16384); got != 8200 {
		t.Fatalf("ReduceU16 10->16384 = %d", got)
	}
	if got := ExpandU8(0x80, MaxBins); got != 0x8080 {
		t.Fatalf("ExpandU8 = %#x", got)
	}
	if got := ExpandU8(200, RangedBins); got != 200 {
		t.Fatalf("ExpandU8 ranged = %d", got)
	}
	for _, tt := range []struct {
		in   float32
		want int
	}{
		{-1, 0}, {float32(math.NaN()), 0}, {0.5, 128}, {1, 255}, {2, 255},
	} {
		if got := ReduceF32(tt.in, RangedBins); got != tt.want {
			t.Fatalf("ReduceF32(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
