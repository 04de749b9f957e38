package rules

import "github.com/ped-tools/ped-go/pkg/ped"

// Liquid, group 1 thresholds (Annex II Table 8).
const (
	liq1DNSep  = 25.0
	liq1K      = 2000.0
	liq1PSLow  = 10.0
	liq1PSHigh = 500.0
)

// Liquid, group 2 thresholds (Annex II Table 9).
const (
	liq2K      = 5000.0
	liq2PSLow  = 10.0
	liq2PSHigh = 500.0
)

// LiquidGroup1 classifies piping for dangerous liquids.
type LiquidGroup1 struct {
	*ped.BaseRule
}

// NewLiquidGroup1 creates the liquid, group 1 rule.
func NewLiquidGroup1() *LiquidGroup1 {
	return &LiquidGroup1{
		BaseRule: ped.NewBaseRule("LIQ-1", "Piping, Group 1 Liquid", ped.StateLiquid, ped.Group1, "Annex II Table 8"),
	}
}

// Classify implements ped.Rule.
func (r *LiquidGroup1) Classify(p ped.OperatingPoint) ped.Category {
	if p.PS <= psScope || p.DN <= liq1DNSep {
		return ped.CategorySEP
	}

	product := p.Product()
	switch {
	case product <= liq1K || p.PS <= liq1PSLow:
		return ped.CategoryI
	case p.PS <= liq1PSHigh:
		return ped.CategoryII
	default:
		return ped.CategoryIII
	}
}

// Chart implements ped.Rule.
func (r *LiquidGroup1) Chart() ped.ChartSpec {
	return ped.ChartSpec{
		Title: "PED Classification - " + r.Name(),
		Segments: []ped.Segment{
			ped.HLine("PS = 0.5", psScope, ped.ChartDNMin, ped.ChartDNMax, "blue"),
			ped.HLine("PS = 10", liq1PSLow, liq1K/liq1PSLow, ped.ChartDNMax, "green"),
			ped.HLine("PS = 500", liq1PSHigh, liq1DNSep, ped.ChartDNMax, "red"),
			ped.VLine("DN = 25", liq1DNSep, psScope, ped.ChartPSMax, "orange"),
		},
		Curves: []ped.IsoProduct{
			{Label: "PS·DN = 2000", K: liq1K, DNFrom: liq1DNSep, DNTo: liq1K / liq1PSLow, Color: "purple"},
		},
		Labels: []ped.Label{
			{Text: "SEP", DN: 5, PS: 1},
			{Text: "I", DN: 4500, PS: 6},
			{Text: "II", DN: 300, PS: 15},
			{Text: "III", DN: 100, PS: 600},
		},
	}
}

// LiquidGroup2 classifies piping for other liquids.
type LiquidGroup2 struct {
	*ped.BaseRule
}

// NewLiquidGroup2 creates the liquid, group 2 rule.
func NewLiquidGroup2() *LiquidGroup2 {
	return &LiquidGroup2{
		BaseRule: ped.NewBaseRule("LIQ-2", "Piping, Group 2 Liquid", ped.StateLiquid, ped.Group2, "Annex II Table 9"),
	}
}

// Classify implements ped.Rule.
//
// Both sides of PS = 500 yield II. The published table puts a category III
// region above 500 bar; that split is not applied here until it is confirmed
// against the directive text.
func (r *LiquidGroup2) Classify(p ped.OperatingPoint) ped.Category {
	if p.PS <= psScope {
		return ped.CategorySEP
	}

	product := p.Product()
	switch {
	case p.PS <= liq2PSLow || product <= liq2K:
		return ped.CategoryI
	case p.PS <= liq2PSHigh:
		return ped.CategoryII
	default:
		return ped.CategoryII
	}
}

// Chart implements ped.Rule.
func (r *LiquidGroup2) Chart() ped.ChartSpec {
	psHigh := ped.HLine("PS = 500", liq2PSHigh, liq2K/liq2PSHigh, ped.ChartDNMax, "red")
	psHigh.Reference = true

	return ped.ChartSpec{
		Title: "PED Classification - " + r.Name(),
		Segments: []ped.Segment{
			ped.HLine("PS = 0.5", psScope, ped.ChartDNMin, ped.ChartDNMax, "blue"),
			ped.HLine("PS = 10", liq2PSLow, liq2K/liq2PSLow, ped.ChartDNMax, "green"),
			psHigh,
		},
		Curves: []ped.IsoProduct{
			{Label: "PS·DN = 5000", K: liq2K, DNFrom: liq2K / ped.ChartPSMax, DNTo: liq2K / liq2PSLow, Color: "purple"},
		},
		Labels: []ped.Label{
			{Text: "I", DN: 50, PS: 20},
			{Text: "II", DN: 250, PS: 600},
		},
	}
}

// Compile-time interface satisfaction checks.
var (
	_ ped.Rule = (*LiquidGroup1)(nil)
	_ ped.Rule = (*LiquidGroup2)(nil)
)
