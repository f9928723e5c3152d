package transform

import (
	"runtime"
	"slices"

	"github.com/cwbudde/algo-clut/clut/interp"
	"github.com/cwbudde/algo-clut/clut/weight"
)

// WeightScale selects how finely inputs are quantized before weight lookup.
type WeightScale int

const (
	// WeightScaleLow uses 256 bins per axis. 8-bit inputs index it directly.
	WeightScaleLow WeightScale = iota
	// WeightScaleHigh uses 65536 bins per axis, one per 16-bit input value.
	WeightScaleHigh
)

// Bins returns the table length for s.
func (s WeightScale) Bins() int {
	if s == WeightScaleHigh {
		return weight.MaxBins
	}
	return weight.RangedBins
}

func (s WeightScale) String() string {
	if s == WeightScaleHigh {
		return "high"
	}
	return "low"
}

// Config defines how a Transform evaluates its grid.
type Config struct {
	Layout      Layout
	Method      interp.Method
	FixedPoint  bool
	WeightScale WeightScale
	Workers     int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns RGB input, tetrahedral float evaluation, 256 bins and
// one image worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Layout:      LayoutRGB,
		Method:      interp.MethodTetrahedral,
		WeightScale: WeightScaleLow,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// WithLayout sets the input pixel layout.
func WithLayout(l Layout) Option {
	return func(cfg *Config) {
		if l.valid() {
			cfg.Layout = l
		}
	}
}

// WithMethod sets the interpolation method.
func WithMethod(m interp.Method) Option {
	return func(cfg *Config) {
		if slices.Contains(interp.Methods(), m) {
			cfg.Method = m
		}
	}
}

// WithFixedPoint selects Q0.15 evaluation over a quantized copy of the grid.
func WithFixedPoint(enabled bool) Option {
	return func(cfg *Config) {
		cfg.FixedPoint = enabled
	}
}

// WithWeightScale sets the input quantization.
func WithWeightScale(s WeightScale) Option {
	return func(cfg *Config) {
		if s == WeightScaleLow || s == WeightScaleHigh {
			cfg.WeightScale = s
		}
	}
}

// WithWorkers bounds the goroutines ApplyImage uses.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
