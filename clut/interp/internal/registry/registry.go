// Package registry holds the float32 kernel sets available to clut/interp.
//
// Kernel packages register themselves from init functions. The interp package
// looks up the best set for the running CPU once, on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
	"github.com/cwbudde/algo-clut/internal/cpu"
)

// Kernel evaluates one weight set against a float32 grid.
type Kernel func(g *grid.Grid[float32], ws []weight.Weight[float32]) vec.F32x4

// PairKernel evaluates two weight sets, each against its own grid.
type PairKernel func(
	ga *grid.Grid[float32], wa []weight.Weight[float32],
	gb *grid.Grid[float32], wb []weight.Weight[float32],
) (vec.F32x4, vec.F32x4)

// OpEntry is one registered kernel set.
type OpEntry struct {
	// Name identifies the set in logs and tests (e.g. "generic", "fma").
	Name string

	// SIMDLevel is the CPU capability the set needs to be fast.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible sets; higher wins.
	//   - generic: 0
	//   - fma: 20
	Priority int

	Linear      Kernel
	Tetrahedral Kernel
	Pyramidal   Kernel
	Prismatic   Kernel

	LinearPair      PairKernel
	TetrahedralPair PairKernel
	PyramidalPair   PairKernel
	PrismaticPair   PairKernel
}

// OpRegistry keeps registered entries sorted by priority on demand.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry clut/interp dispatches through.
var Global = &OpRegistry{}

// Register adds an entry. All registrations should happen before the first
// Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry the CPU supports, or nil when
// nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by descending priority. Caller holds r.mu.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
