package main

import (
	"fmt"
	"math"
	"sort"
)

// analytic is a synthesized color transform the CLUT is sampled from.
type analytic struct {
	name string
	dims int
	fn   func(p []float64) [4]float64
}

var transforms = []analytic{
	{"identity", 3, func(p []float64) [4]float64 {
		return [4]float64{p[0], p[1], p[2], 0}
	}},
	{"invert", 3, func(p []float64) [4]float64 {
		return [4]float64{1 - p[0], 1 - p[1], 1 - p[2], 0}
	}},
	{"gamma", 3, func(p []float64) [4]float64 {
		const g = 1 / 2.2
		return [4]float64{math.Pow(p[0], g), math.Pow(p[1], g), math.Pow(p[2], g), 0}
	}},
	{"saturate", 3, func(p []float64) [4]float64 {
		y := 0.299*p[0] + 0.587*p[1] + 0.114*p[2]
		var out [4]float64
		for c := range 3 {
			out[c] = min(max(y+1.5*(p[c]-y), 0), 1)
		}
		return out
	}},
	{"cmyk", 4, func(p []float64) [4]float64 {
		k := 1 - p[3]
		return [4]float64{(1 - p[0]) * k, (1 - p[1]) * k, (1 - p[2]) * k, 0}
	}},
}

func lookupTransform(name string) (analytic, error) {
	for _, t := range transforms {
		if t.name == name {
			return t, nil
		}
	}
	return analytic{}, fmt.Errorf("unknown transform %q (use -list to see available)", name)
}

func transformNames() []string {
	names := make([]string, len(transforms))
	for i, t := range transforms {
		names[i] = t.name
	}
	sort.Strings(names)
	return names
}
