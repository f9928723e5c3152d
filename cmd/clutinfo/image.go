package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-clut/clut"
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/clut/transform"
)

func applyToImage(ctx context.Context, o options, g *grid.Grid[float32], m interp.Method) error {
	if o.out == "" {
		return fmt.Errorf("-out is required with -in")
	}
	if g.Dims() != 3 {
		return fmt.Errorf("images need a 3-axis transform, %q has %d axes", o.transform, g.Dims())
	}
	scale, err := parseScale(o.scale)
	if err != nil {
		return err
	}

	tr, err := transform.New(g,
		transform.WithLayout(transform.LayoutRGBA),
		transform.WithMethod(m),
		transform.WithFixedPoint(o.fixed),
		transform.WithWeightScale(scale),
		transform.WithWorkers(o.workers),
	)
	if err != nil {
		return err
	}

	img, err := readImage(o.in)
	if err != nil {
		return err
	}
	if err := tr.ApplyImage(ctx, img, img); err != nil {
		return err
	}
	clut.Logger().Info("clutinfo: image transformed",
		"in", o.in, "bounds", img.Bounds().String(), "method", m.String(), "fixed", o.fixed)

	return writeImage(o.out, img)
}

// readImage decodes any registered format into a 16-bit RGBA copy.
func readImage(path string) (*image.RGBA64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	dst := image.NewRGBA64(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

func writeImage(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}
