package interp

import (
	"fmt"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
)

type (
	// F32Kernel is the signature shared by the float single-point functions.
	F32Kernel func(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4

	// F32PairKernel is the signature shared by the float two-point functions.
	F32PairKernel func(
		ga *grid.Grid[float32], wa []weight.Weight[float32],
		gb *grid.Grid[float32], wb []weight.Weight[float32],
	) (vec.F32x4, vec.F32x4)

	// Q15Kernel is the signature shared by the Q15 single-point functions.
	Q15Kernel func(g *grid.Grid[int16], ws []weight.Weight[int32]) vec.Q15x4

	// Q15PairKernel is the signature shared by the Q15 two-point functions.
	Q15PairKernel func(
		ga *grid.Grid[int16], wa []weight.Weight[int32],
		gb *grid.Grid[int16], wb []weight.Weight[int32],
	) (vec.Q15x4, vec.Q15x4)
)

// F32KernelFor returns the float single-point function for m, already bound
// to the selected kernel set. Resolve it once and call the result per pixel.
func F32KernelFor(m Method) (F32Kernel, error) {
	k := floatKernels()
	switch m {
	case MethodTetrahedral:
		return F32Kernel(k.Tetrahedral), nil
	case MethodPyramidal:
		return F32Kernel(k.Pyramidal), nil
	case MethodPrismatic:
		return F32Kernel(k.Prismatic), nil
	case MethodLinear:
		return F32Kernel(k.Linear), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// F32PairKernelFor returns the float two-point function for m.
func F32PairKernelFor(m Method) (F32PairKernel, error) {
	k := floatKernels()
	switch m {
	case MethodTetrahedral:
		return F32PairKernel(k.TetrahedralPair), nil
	case MethodPyramidal:
		return F32PairKernel(k.PyramidalPair), nil
	case MethodPrismatic:
		return F32PairKernel(k.PrismaticPair), nil
	case MethodLinear:
		return F32PairKernel(k.LinearPair), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// Q15KernelFor returns the Q15 single-point function for m.
func Q15KernelFor(m Method) (Q15Kernel, error) {
	switch m {
	case MethodTetrahedral:
		return TetrahedralQ15, nil
	case MethodPyramidal:
		return PyramidalQ15, nil
	case MethodPrismatic:
		return PrismaticQ15, nil
	case MethodLinear:
		return LinearQ15, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// Q15PairKernelFor returns the Q15 two-point function for m.
func Q15PairKernelFor(m Method) (Q15PairKernel, error) {
	switch m {
	case MethodTetrahedral:
		return TetrahedralQ15Pair, nil
	case MethodPyramidal:
		return PyramidalQ15Pair, nil
	case MethodPrismatic:
		return PrismaticQ15Pair, nil
	case MethodLinear:
		return LinearQ15Pair, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}
