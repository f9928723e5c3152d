package accuracy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultPointsPerAxis = 17
	blockSize            = 4096

	// stepsPerUnit converts a normalized error to Q0.15 steps.
	stepsPerUnit = 32768
)

var (
	// ErrDims is returned for an axis count other than 3 or 4.
	ErrDims = errors.New("accuracy: dims must be 3 or 4")
	// ErrChannels is returned for a channel count outside [1, 4].
	ErrChannels = errors.New("accuracy: channels must be in [1, 4]")
)

// Evaluator returns the output vector at the normalized input point p.
// len(p) is Config.Dims; lanes beyond Config.Channels are ignored.
type Evaluator func(p []float64) [4]float64

// Config holds sweep parameters.
type Config struct {
	Dims          int
	Channels      int
	PointsPerAxis int
	RandomPoints  int
	Seed          int64
}

// Result holds the error statistics of got relative to ref.
type Result struct {
	Points     int
	MaxAbs     [4]float64
	RMS        [4]float64
	MaxAbsAll  float64
	MaxSteps   float64
	MaxChroma  float64
	RMSChroma  float64
	WorstPoint []float64
}

// Compare evaluates ref and got over the configured point set.
func Compare(ref, got Evaluator, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)
	if cfg.Dims != 3 && cfg.Dims != 4 {
		return Result{}, fmt.Errorf("%w: got %d", ErrDims, cfg.Dims)
	}
	if cfg.Channels < 1 || cfg.Channels > 4 {
		return Result{}, fmt.Errorf("%w: got %d", ErrChannels, cfg.Channels)
	}

	acc := newAccumulator(cfg.Channels)
	sweep(cfg, func(p []float64) {
		r, g := ref(p), got(p)
		acc.add(p, r, g)
	})
	return acc.result(), nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.Dims == 0 {
		cfg.Dims = 3
	}
	if cfg.Channels == 0 {
		cfg.Channels = 3
	}
	if cfg.PointsPerAxis < 2 {
		cfg.PointsPerAxis = defaultPointsPerAxis
	}
	if cfg.RandomPoints < 0 {
		cfg.RandomPoints = 0
	}
	return cfg
}

// sweep calls fn for every point of a regular PointsPerAxis^Dims lattice
// spanning [0,1] and then for RandomPoints uniform points. p is reused.
func sweep(cfg Config, fn func(p []float64)) {
	n := cfg.PointsPerAxis
	p := make([]float64, cfg.Dims)
	idx := make([]int, cfg.Dims)
	total := 1
	for range cfg.Dims {
		total *= n
	}

	for range total {
		for i, v := range idx {
			p[i] = float64(v) / float64(n-1)
		}
		fn(p)
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < n {
				break
			}
			idx[i] = 0
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for range cfg.RandomPoints {
		for i := range p {
			p[i] = rng.Float64()
		}
		fn(p)
	}
}

// accumulator buffers per-channel errors and reduces them a block at a time.
type accumulator struct {
	channels int
	n        int
	errs     [4][]float64
	sq       []float64
	chroma   []float64

	points    int
	maxAbs    [4]float64
	sumSq     [4]float64
	maxChroma float64
	sumChroma float64
	worst     float64
	worstAt   []float64
}

func newAccumulator(channels int) *accumulator {
	a := &accumulator{
		channels: channels,
		sq:       make([]float64, blockSize),
		chroma:   make([]float64, blockSize),
	}
	for c := range channels {
		a.errs[c] = make([]float64, blockSize)
	}
	return a
}

func (a *accumulator) add(p []float64, ref, got [4]float64) {
	worst := 0.0
	for c := range a.channels {
		e := got[c] - ref[c]
		a.errs[c][a.n] = e
		worst = max(worst, math.Abs(e))
	}
	if worst > a.worst || a.worstAt == nil {
		a.worst = worst
		a.worstAt = append(a.worstAt[:0], p...)
	}
	a.n++
	if a.n == blockSize {
		a.flush()
	}
}

func (a *accumulator) flush() {
	n := a.n
	if n == 0 {
		return
	}
	for c := range a.channels {
		e := a.errs[c][:n]
		a.maxAbs[c] = max(a.maxAbs[c], vecmath.MaxAbs(e))
		vecmath.MulBlock(a.sq[:n], e, e)
		a.sumSq[c] += vecmath.Sum(a.sq[:n])
	}
	if a.channels >= 3 {
		vecmath.Magnitude(a.chroma[:n], a.errs[1][:n], a.errs[2][:n])
		a.maxChroma = max(a.maxChroma, vecmath.MaxAbs(a.chroma[:n]))
		vecmath.Power(a.chroma[:n], a.errs[1][:n], a.errs[2][:n])
		a.sumChroma += vecmath.Sum(a.chroma[:n])
	}
	a.points += n
	a.n = 0
}

func (a *accumulator) result() Result {
	a.flush()
	r := Result{
		Points:     a.points,
		MaxAbs:     a.maxAbs,
		MaxChroma:  a.maxChroma,
		WorstPoint: a.worstAt,
	}
	if a.points == 0 {
		return r
	}
	for c := range a.channels {
		r.RMS[c] = math.Sqrt(a.sumSq[c] / float64(a.points))
		r.MaxAbsAll = max(r.MaxAbsAll, a.maxAbs[c])
	}
	r.MaxSteps = r.MaxAbsAll * stepsPerUnit
	r.RMSChroma = math.Sqrt(a.sumChroma / float64(a.points))
	return r
}
