// Package accuracy measures how far one CLUT evaluation path deviates from
// another.
//
// Compare sweeps a regular lattice of normalized input points, optionally
// extended by seeded random points, and reports the maximum and RMS error per
// channel, the maximum error in Q0.15 steps and the error of channels 1 and 2
// taken together as a chroma vector. Typical pairs are an analytic transform
// against a sampled grid, or Q15 evaluation against float evaluation of the
// same grid.
package accuracy
