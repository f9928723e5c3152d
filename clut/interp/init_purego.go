//go:build purego

package interp

import (
	// Portable kernels only.
	_ "github.com/cwbudde/algo-clut/clut/interp/internal/arch/generic"
)
