package interp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned for a method name or value that is not one of
// the four interpolation methods.
var ErrUnknownMethod = errors.New("interp: unknown method")

// Method selects an interpolation method.
type Method int

const (
	// MethodTetrahedral splits each cell into 6 tetrahedra and blends 4 corners.
	MethodTetrahedral Method = iota
	// MethodPyramidal splits each cell into 3 square pyramids and blends 5 corners.
	MethodPyramidal
	// MethodPrismatic splits each cell into 2 triangular prisms and blends 6 corners.
	MethodPrismatic
	// MethodLinear blends all 2^D corners of the cell.
	MethodLinear
)

// Methods lists every method in declaration order.
func Methods() []Method {
	return []Method{MethodTetrahedral, MethodPyramidal, MethodPrismatic, MethodLinear}
}

func (m Method) String() string {
	switch m {
	case MethodTetrahedral:
		return "tetrahedral"
	case MethodPyramidal:
		return "pyramidal"
	case MethodPrismatic:
		return "prismatic"
	case MethodLinear:
		return "linear"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method named s. Matching ignores case; "trilinear"
// is accepted for MethodLinear.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tetrahedral", "tetra":
		return MethodTetrahedral, nil
	case "pyramidal", "pyramid":
		return MethodPyramidal, nil
	case "prismatic", "prism":
		return MethodPrismatic, nil
	case "linear", "trilinear", "quadlinear":
		return MethodLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}
