// Package simplex implements the CLUT interpolation kernels once, generically
// over the numeric regime.
//
// Every kernel is split in two phases. Gather fetches the lattice corners of
// one input, forms the edge differences and splats the weights; all branching
// happens here. Eval combines the gathered terms with a fixed, branch-free
// sequence of vector operations. A dual-lane call gathers each input
// separately (each against its own grid and with its own branch), packs the
// terms into vec.Pair and evaluates once, so it performs exactly the
// operations of two single-lane calls.
//
// Tetrahedral, pyramidal and prismatic kernels are 3-axis. On a 4-axis grid
// they are gathered twice, with the last axis held at its lower and at its
// upper index, evaluated as one pair and blended along that axis. Linear
// handles 3 and 4 axes natively.
package simplex
