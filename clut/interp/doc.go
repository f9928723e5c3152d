// Package interp evaluates a CLUT at one or two points per call.
//
// There is one entry point per method, regime and lane count:
//
//	LinearF32       LinearF32Pair       LinearQ15       LinearQ15Pair
//	TetrahedralF32  TetrahedralF32Pair  TetrahedralQ15  TetrahedralQ15Pair
//	PyramidalF32    PyramidalF32Pair    PyramidalQ15    PyramidalQ15Pair
//	PrismaticF32    PrismaticF32Pair    PrismaticQ15    PrismaticQ15Pair
//
// Every function takes a grid and one weight per grid axis, either 3 or 4.
// Weights must bracket valid lattice indices and lie in [0, 1] (float) or
// [0, vec.One] (Q15); this is not checked. The Pair variants evaluate two
// independent points, each against its own grid, and return exactly what
// two single calls would.
//
// Float evaluation dispatches once, on first use, to the fastest registered
// kernel set for the CPU. Q15 evaluation is exact integer arithmetic and is
// identical on every platform. Q15 results are Q0.15 and may exceed the int16
// range slightly on grids that use it fully; use Narrow to store them.
//
// All functions are safe for concurrent use.
package interp
