package registry

import (
	"testing"

	"github.com/cwbudde/algo-clut/clut/grid"
	"github.com/cwbudde/algo-clut/clut/vec"
	"github.com/cwbudde/algo-clut/clut/weight"
	"github.com/cwbudde/algo-clut/internal/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Linear: func(*grid.Grid[float32], []weight.Weight[float32]) vec.F32x4 {
			return vec.F32x4{}
		},
	})
	reg.Register(OpEntry{
		Name:      "fma",
		SIMDLevel: cpu.SIMDFMA,
		Priority:  20,
	})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Linear == nil {
		t.Fatal("Linear kernel lost on registration")
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Registration order must not matter.
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "fma", SIMDLevel: cpu.SIMDFMA, Priority: 20})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "FMA available - select fma",
			features: cpu.Features{HasFMA: true, HasAVX2: true},
			want:     "fma",
		},
		{
			name:     "AVX2 only - select avx2",
			features: cpu.Features{HasAVX2: true},
			want:     "avx2",
		},
		{
			name:     "nothing - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name:     "ForceGeneric - select generic",
			features: cpu.Features{HasFMA: true, HasAVX2: true, ForceGeneric: true},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_NoCompatible(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	if entry := reg.Lookup(cpu.Features{HasFMA: true}); entry != nil {
		t.Fatalf("expected nil, got %q", entry.Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic"})
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", n)
	}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil after Reset, got %q", entry.Name)
	}
}
