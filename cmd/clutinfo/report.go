package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/measure/accuracy"
)

type reportRow struct {
	method interp.Method
	regime string
	res    accuracy.Result
}

// measure compares every method in both regimes against the analytic
// transform the grid was sampled from.
func measure(g *grid.Grid[float32], tf analytic, methods []interp.Method, o options) ([]reportRow, error) {
	q := grid.ToQ15(g)
	cfg := accuracy.Config{
		Dims:          tf.dims,
		Channels:      3,
		PointsPerAxis: o.points,
		RandomPoints:  o.random,
		Seed:          o.seed,
	}

	var rows []reportRow
	for _, m := range methods {
		f, err := accuracy.GridF32(g, m)
		if err != nil {
			return nil, err
		}
		fq, err := accuracy.GridQ15(q, m)
		if err != nil {
			return nil, err
		}
		for _, ev := range []struct {
			regime string
			fn     accuracy.Evaluator
		}{{"f32", f}, {"q15", fq}} {
			res, err := accuracy.Compare(tf.fn, ev.fn, cfg)
			if err != nil {
				return nil, err
			}
			rows = append(rows, reportRow{method: m, regime: ev.regime, res: res})
		}
	}
	return rows, nil
}

func printReport(w io.Writer, tf analytic, sizes []int, rows []reportRow) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Transform %s, grid %v (%d points), kernels %s\n\n",
		tf.name, sizes, pointCount(sizes), interp.KernelName()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tRegime\tPoints\tMax err\tRMS err\tMax [Q15 steps]\tMax chroma\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t------\t-------\t-------\t---------------\t----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		rms := max(r.res.RMS[0], r.res.RMS[1], r.res.RMS[2])
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.6f\t%.6f\t%.1f\t%.6f\n",
			r.method,
			r.regime,
			p.Sprintf("%d", r.res.Points),
			r.res.MaxAbsAll,
			rms,
			r.res.MaxSteps,
			r.res.MaxChroma,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func pointCount(sizes []int) int {
	n := 1
	for _, s := range sizes {
		n *= s
	}
	return n
}
