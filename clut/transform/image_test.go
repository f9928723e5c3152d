package transform

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

func testImage() *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, 7, 5))
	for y := range 5 {
		for x := range 7 {
			img.SetRGBA64(x, y, color.RGBA64{
				R: uint16(x * 9000), G: uint16(y * 13000), B: uint16((x + y) * 5000), A: 0xffff,
			})
		}
	}
	img.SetRGBA64(3, 2, color.RGBA64{})
	return img
}

func TestApplyImageIdentity(t *testing.T) {
	tr := mustNew(t, identityGrid(t, []int{17, 17, 17}),
		WithLayout(LayoutRGBA), WithWeightScale(WeightScaleHigh), WithWorkers(3))

	src := testImage()
	dst := image.NewRGBA64(src.Bounds())
	if err := tr.ApplyImage(context.Background(), dst, src); err != nil {
		t.Fatalf("ApplyImage: %v", err)
	}
	for y := range 5 {
		for x := range 7 {
			if got, want := dst.RGBA64At(x, y), src.RGBA64At(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestApplyImageTranslucent(t *testing.T) {
	tr := mustNew(t, identityGrid(t, []int{17, 17, 17}), WithLayout(LayoutRGBA), WithWeightScale(WeightScaleHigh))

	src := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	src.SetRGBA64(0, 0, color.RGBA64{R: 0x4000, G: 0x2000, B: 0, A: 0x8000})
	if err := tr.ApplyImage(context.Background(), src, src); err != nil {
		t.Fatalf("ApplyImage: %v", err)
	}
	got := src.RGBA64At(0, 0)
	if got.A != 0x8000 {
		t.Fatalf("alpha = %#x, want 0x8000", got.A)
	}
	for _, d := range []int{int(got.R) - 0x4000, int(got.G) - 0x2000, int(got.B)} {
		if d < -1 || d > 1 {
			t.Fatalf("got %v, want premultiplied color within 1", got)
		}
	}
}

func TestApplyImageErrors(t *testing.T) {
	g := identityGrid(t, []int{5, 5, 5})
	src := testImage()

	rgb := mustNew(t, g)
	if err := rgb.ApplyImage(context.Background(), src, src); !errors.Is(err, ErrLayout) {
		t.Fatalf("rgb layout: err = %v", err)
	}

	rgba := mustNew(t, g, WithLayout(LayoutRGBA))
	small := image.NewRGBA64(image.Rect(0, 0, 2, 2))
	if err := rgba.ApplyImage(context.Background(), small, src); !errors.Is(err, ErrBufferSize) {
		t.Fatalf("size mismatch: err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rgba.ApplyImage(ctx, src, src); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled: err = %v", err)
	}
}
