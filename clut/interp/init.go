//go:build !purego

package interp

import (
	_ "github.com/cwbudde/algo-clut/clut/interp/internal/arch/fma"
	_ "github.com/cwbudde/algo-clut/clut/interp/internal/arch/generic"
)
