package ped

import (
	"fmt"
	"math"
	"strings"
)

// FluidState is the physical state of the contained fluid.
type FluidState uint8

const (
	// StateGas covers gases, liquefied gases, dissolved gases and vapours.
	StateGas FluidState = 0
	// StateLiquid covers liquids with a vapour pressure at PS not above 0.5 bar.
	StateLiquid FluidState = 1
)

// String returns the state name used on the command line.
func (s FluidState) String() string {
	switch s {
	case StateGas:
		return "gas"
	case StateLiquid:
		return "liquid"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s FluidState) MarshalText() ([]byte, error) {
	switch s {
	case StateGas, StateLiquid:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFluidState, uint8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FluidState) UnmarshalText(text []byte) error {
	v, err := ParseFluidState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseFluidState parses exactly "gas" or "liquid".
// Any other value yields an *InputError wrapping ErrInvalidFluidState.
func ParseFluidState(s string) (FluidState, error) {
	switch s {
	case "gas":
		return StateGas, nil
	case "liquid":
		return StateLiquid, nil
	default:
		return 0, &InputError{
			Code:  CodeInvalidFluidState,
			Field: "fluid_state",
			Value: s,
			Err:   ErrInvalidFluidState,
		}
	}
}

// FluidGroup is the PED fluid group. The numeric value matches the group number.
type FluidGroup uint8

const (
	// Group1 covers dangerous fluids (explosive, flammable, toxic, oxidising).
	Group1 FluidGroup = 1
	// Group2 covers all other fluids.
	Group2 FluidGroup = 2
)

// String returns "group 1" or "group 2".
func (g FluidGroup) String() string {
	switch g {
	case Group1, Group2:
		return fmt.Sprintf("group %d", uint8(g))
	default:
		return fmt.Sprintf("unknown(%d)", uint8(g))
	}
}

// ParseFluidGroup converts 1 or 2 to a FluidGroup.
// Any other value yields an *InputError wrapping ErrInvalidFluidGroup.
func ParseFluidGroup(n int) (FluidGroup, error) {
	switch n {
	case 1:
		return Group1, nil
	case 2:
		return Group2, nil
	default:
		return 0, &InputError{
			Code:  CodeInvalidFluidGroup,
			Field: "fluid_group",
			Value: fmt.Sprintf("%d", n),
			Err:   ErrInvalidFluidGroup,
		}
	}
}

// Category is a PED conformity assessment category. Values are ordered by
// increasing obligation: SEP < I < II < III.
type Category uint8

const (
	// CategorySEP is Sound Engineering Practice (below mandatory assessment).
	CategorySEP Category = 0
	// CategoryI is the lowest conformity assessment category.
	CategoryI Category = 1
	// CategoryII is the intermediate conformity assessment category.
	CategoryII Category = 2
	// CategoryIII is the highest category reachable by piping.
	CategoryIII Category = 3
)

// Categories lists all categories in increasing order.
var Categories = []Category{CategorySEP, CategoryI, CategoryII, CategoryIII}

// String returns the category label.
func (c Category) String() string {
	switch c {
	case CategorySEP:
		return "SEP"
	case CategoryI:
		return "I"
	case CategoryII:
		return "II"
	case CategoryIII:
		return "III"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if c > CategoryIII {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCategory parses a category label ("SEP", "I", "II", "III").
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SEP":
		return CategorySEP, nil
	case "I":
		return CategoryI, nil
	case "II":
		return CategoryII, nil
	case "III":
		return CategoryIII, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// OperatingPoint is a (PS, DN) pair. Construct it with NewOperatingPoint.
type OperatingPoint struct {
	// PS is the maximum allowable pressure in bar.
	PS float64 `json:"ps" yaml:"ps"`
	// DN is the nominal diameter in mm.
	DN float64 `json:"dn" yaml:"dn"`
}

// NewOperatingPoint validates ps and dn and returns the operating point.
// Values that are not finite and strictly positive are rejected with an
// *InputError wrapping ErrInvalidInput.
func NewOperatingPoint(ps, dn float64) (OperatingPoint, error) {
	if err := checkPositive("ps", ps); err != nil {
		return OperatingPoint{}, err
	}
	if err := checkPositive("dn", dn); err != nil {
		return OperatingPoint{}, err
	}
	return OperatingPoint{PS: ps, DN: dn}, nil
}

// Product returns PS×DN, the quantity most table boundaries are drawn on.
func (p OperatingPoint) Product() float64 {
	return p.PS * p.DN
}

// String formats the point as "PS=<ps> bar, DN=<dn> mm".
func (p OperatingPoint) String() string {
	return fmt.Sprintf("PS=%g bar, DN=%g mm", p.PS, p.DN)
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InputError{
			Code:  CodeInvalidInput,
			Field: field,
			Value: fmt.Sprintf("%g", v),
			Err:   ErrInvalidInput,
		}
	}
	return nil
}
