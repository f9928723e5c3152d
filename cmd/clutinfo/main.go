// Command clutinfo samples a color transform into a CLUT and reports how
// accurately each interpolation method reproduces it, in float32 and in
// Q0.15 fixed point. It can also apply the sampled CLUT to an image.
//
// Usage:
//
//	clutinfo [flags]
//
// Examples:
//
//	clutinfo -transform gamma -size 17
//	clutinfo -transform cmyk -size 9 -method tetrahedral
//	clutinfo -transform saturate -in photo.png -out photo.tif -fixed
//	clutinfo -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/cwbudde/algo-clut/clut"
	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/clut/transform"
)

type options struct {
	transform string
	size      int
	method    string
	points    int
	random    int
	seed      int64
	in, out   string
	fixed     bool
	scale     string
	workers   int
	verbose   bool
	list      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("clutinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.transform, "transform", "gamma", "analytic transform to sample (see -list)")
	fs.IntVar(&o.size, "size", 17, "grid points per axis")
	fs.StringVar(&o.method, "method", "all", "interpolation method, or all")
	fs.IntVar(&o.points, "points", 17, "regular sweep points per axis for the accuracy report")
	fs.IntVar(&o.random, "random", 2000, "additional random sweep points")
	fs.Int64Var(&o.seed, "seed", 1, "seed for the random sweep points")
	fs.StringVar(&o.in, "in", "", "input image (PNG, BMP or TIFF) to apply the CLUT to")
	fs.StringVar(&o.out, "out", "", "output image (PNG, BMP or TIFF); required with -in")
	fs.BoolVar(&o.fixed, "fixed", false, "apply images in Q0.15 fixed point")
	fs.StringVar(&o.scale, "scale", "high", "weight table scale for images: low (256 bins) or high (65536 bins)")
	fs.IntVar(&o.workers, "workers", 0, "image worker goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&o.verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&o.list, "list", false, "list available transforms and methods")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: clutinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Samples a color transform into a CLUT and reports interpolation accuracy.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if o.verbose {
		clut.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
		defer clut.SetLogger(nil)
	}

	if o.list {
		printList(stdout)
		return 0
	}

	if err := execute(ctx, o, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printList(w io.Writer) {
	fmt.Fprintf(w, "transforms: %s\n", strings.Join(transformNames(), ", "))
	names := make([]string, 0, 4)
	for _, m := range interp.Methods() {
		names = append(names, m.String())
	}
	fmt.Fprintf(w, "methods:    %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "kernels:    %s\n", interp.KernelName())
}

func execute(ctx context.Context, o options, stdout io.Writer) error {
	tf, err := lookupTransform(o.transform)
	if err != nil {
		return err
	}
	methods, err := selectMethods(o.method)
	if err != nil {
		return err
	}

	sizes := make([]int, tf.dims)
	for i := range sizes {
		sizes[i] = o.size
	}
	g, err := sampleGrid(tf, sizes)
	if err != nil {
		return err
	}
	clut.Logger().Info("clutinfo: grid sampled", "transform", tf.name, "sizes", sizes)

	if o.in != "" {
		return applyToImage(ctx, o, g, methods[0])
	}

	rows, err := measure(g, tf, methods, o)
	if err != nil {
		return err
	}
	return printReport(stdout, tf, sizes, rows)
}

func selectMethods(s string) ([]interp.Method, error) {
	if s == "" || s == "all" {
		return interp.Methods(), nil
	}
	m, err := interp.ParseMethod(s)
	if err != nil {
		return nil, err
	}
	return []interp.Method{m}, nil
}

func sampleGrid(tf analytic, sizes []int) (*grid.Grid[float32], error) {
	return grid.Sample(sizes, 3, func(p []float64, out []float32) {
		v := tf.fn(p)
		for c := range out {
			out[c] = float32(v[c])
		}
	})
}

func parseScale(s string) (transform.WeightScale, error) {
	switch s {
	case "low":
		return transform.WeightScaleLow, nil
	case "high":
		return transform.WeightScaleHigh, nil
	default:
		return 0, fmt.Errorf("unknown scale %q (want low or high)", s)
	}
}
