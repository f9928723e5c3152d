// Package cpu reports the processor features that decide which CLUT kernel
// set is used for float evaluation.
//
// Detection runs once, on the first call to DetectFeatures, and is cached.
// Tests can pin a feature set with SetForcedFeatures.
package cpu

import (
	"sync"
)

// SIMDLevel names a capability a kernel set may require.
type SIMDLevel int

const (
	// SIMDNone requires nothing beyond portable Go.
	SIMDNone SIMDLevel = iota

	// SIMDFMA requires a hardware fused multiply-add, so math.FMA compiles
	// to a single instruction instead of the software fallback.
	SIMDFMA

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON indicates ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDFMA:
		return "FMA"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the capabilities relevant to kernel selection.
type Features struct {
	HasFMA  bool // fused multiply-add (x86 FMA3, always present with ARM ASIMD)
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every accelerated kernel set.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the running processor, or the
// forced set if one was installed.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFMA reports whether fused multiply-add is available in hardware.
func HasFMA() bool {
	return DetectFeatures().HasFMA
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDFMA:
		return features.HasFMA
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
