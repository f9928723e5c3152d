package interp

import (
	"sync"

	"github.com/cwbudde/algo-clut/clut"
	"github.com/cwbudde/algo-clut/clut/interp/internal/registry"
	"github.com/cwbudde/algo-clut/internal/cpu"
)

var (
	floatImpl     *registry.OpEntry
	floatInitOnce sync.Once
)

func initFloatKernels() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("interp: no float kernels registered")
	}
	if entry.Linear == nil || entry.Tetrahedral == nil || entry.Pyramidal == nil || entry.Prismatic == nil ||
		entry.LinearPair == nil || entry.TetrahedralPair == nil ||
		entry.PyramidalPair == nil || entry.PrismaticPair == nil {
		panic("interp: selected kernel set " + entry.Name + " is incomplete")
	}
	floatImpl = entry

	clut.Logger().Info("interp: float kernels selected",
		"name", entry.Name, "simd", entry.SIMDLevel.String(), "arch", features.Architecture)
}

func floatKernels() *registry.OpEntry {
	floatInitOnce.Do(initFloatKernels)
	return floatImpl
}

// KernelName reports which float kernel set evaluation uses, for example
// "generic" or "fma".
func KernelName() string {
	return floatKernels().Name
}
