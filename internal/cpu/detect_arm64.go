//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports ASIMD on arm64. FMADD is part of the base
// floating-point ISA there, so FMA follows ASIMD.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       cpu.ARM64.HasASIMD,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
