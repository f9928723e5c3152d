package transform

import (
	"testing"

	"github.com/cwbudde/algo-clut/clut/interp"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithLayout(LayoutCMYK),
		WithMethod(interp.MethodPrismatic),
		WithFixedPoint(true),
		WithWeightScale(WeightScaleHigh),
		WithWorkers(3),
	)
	want := Config{
		Layout:      LayoutCMYK,
		Method:      interp.MethodPrismatic,
		FixedPoint:  true,
		WeightScale: WeightScaleHigh,
		Workers:     3,
	}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(
		WithLayout(Layout(7)),
		WithMethod(interp.Method(42)),
		WithWeightScale(WeightScale(-1)),
		WithWorkers(0),
		nil,
	)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestWeightScaleBins(t *testing.T) {
	if got := WeightScaleLow.Bins(); got != 256 {
		t.Fatalf("low bins = %d, want 256", got)
	}
	if got := WeightScaleHigh.Bins(); got != 65536 {
		t.Fatalf("high bins = %d, want 65536", got)
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{LayoutRGB, LayoutRGBA, LayoutCMYK} {
		got, err := ParseLayout(l.String())
		if err != nil || got != l {
			t.Fatalf("ParseLayout(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLayout("lab"); err == nil {
		t.Fatal("expected error for unknown layout")
	}
}
