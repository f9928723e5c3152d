// Package clut is the root of a multidimensional color lookup table (CLUT)
// interpolation engine.
//
// A CLUT is a regularly sampled color transform with 3 or 4 input axes and
// 3 or 4 output channels. The engine evaluates it at arbitrary points with
// one of four interpolation methods (linear, tetrahedral, pyramidal and
// prismatic) in float32 or Q0.15 fixed point, one or two points per call.
//
// Sub-packages:
//
//   - vec: 4-lane channel vectors (float32, fused float32, Q0.15, paired)
//   - grid: immutable lattice storage and corner fetch
//   - weight: barycentric weight tables and input quantization
//   - interp: evaluation entry points per method, regime and lane count
//   - transform: whole-buffer and whole-image application of a grid
//
// This package only carries the shared logger.
package clut
