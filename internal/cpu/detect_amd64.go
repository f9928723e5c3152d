//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through golang.org/x/sys/cpu. FMA3 is only
// trusted together with AVX, since the OS must save the YMM state for it.
func detectFeaturesImpl() Features {
	return Features{
		HasFMA:       cpu.X86.HasFMA && cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
