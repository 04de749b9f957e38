package rules

import "github.com/ped-tools/ped-go/pkg/ped"

// Thresholds shared by every table: at or below psScope the piping is outside
// mandatory conformity assessment.
const psScope = 0.5

// Gas, group 1 thresholds (Annex II Table 6).
const (
	gas1DNSep   = 25.0
	gas1DNBand  = 100.0
	gas1DNUpper = 350.0
	gas1KLow    = 1000.0
	gas1KHigh   = 3500.0
)

// Gas, group 2 thresholds (Annex II Table 7).
const (
	gas2DNSep  = 32.0
	gas2DNBand = 100.0
	gas2DNMid  = 250.0
	gas2KSep   = 1000.0
	gas2KI     = 3500.0
	gas2KII    = 5000.0
)

// GasGroup1 classifies piping for dangerous gases.
type GasGroup1 struct {
	*ped.BaseRule
}

// NewGasGroup1 creates the gas, group 1 rule.
func NewGasGroup1() *GasGroup1 {
	return &GasGroup1{
		BaseRule: ped.NewBaseRule("GAS-1", "Piping, Group 1 Gas", ped.StateGas, ped.Group1, "Annex II Table 6"),
	}
}

// Classify implements ped.Rule.
func (r *GasGroup1) Classify(p ped.OperatingPoint) ped.Category {
	if p.PS <= psScope {
		return ped.CategorySEP
	}
	if p.DN <= gas1DNSep {
		return ped.CategorySEP
	}

	product := p.Product()
	switch {
	case p.DN <= gas1DNBand:
		if product <= gas1KLow {
			return ped.CategoryI
		}
		if product <= gas1KHigh {
			return ped.CategoryII
		}
		return ped.CategoryIII
	case p.DN <= gas1DNUpper:
		if product <= gas1KHigh {
			return ped.CategoryI
		}
		return ped.CategoryIII
	default:
		return ped.CategoryIII
	}
}

// Chart implements ped.Rule.
func (r *GasGroup1) Chart() ped.ChartSpec {
	return ped.ChartSpec{
		Title: "PED Classification - " + r.Name(),
		Segments: []ped.Segment{
			ped.HLine("PS = 0.5", psScope, ped.ChartDNMin, ped.ChartDNMax, "black"),
			ped.VLine("DN = 25", gas1DNSep, psScope, ped.ChartPSMax, "green"),
			ped.VLine("DN = 100", gas1DNBand, gas1KLow/gas1DNBand, gas1KHigh/gas1DNBand, "blue"),
			ped.VLine("DN = 350", gas1DNUpper, psScope, gas1KHigh/gas1DNUpper, "purple"),
		},
		Curves: []ped.IsoProduct{
			{Label: "PS·DN = 1000", K: gas1KLow, DNFrom: gas1DNSep, DNTo: gas1DNBand, Color: "orange"},
			{Label: "PS·DN = 3500", K: gas1KHigh, DNFrom: gas1DNSep, DNTo: gas1DNUpper, Color: "red"},
		},
		Regions: []ped.Region{{
			Category: ped.CategoryI,
			Color:    "lightgray",
			Vertices: []ped.Vertex{
				{DN: gas1DNSep, PS: psScope},
				{DN: gas1DNUpper, PS: psScope},
				{DN: gas1DNUpper, PS: gas1KHigh / gas1DNUpper},
				{DN: gas1DNBand, PS: gas1KHigh / gas1DNBand},
				{DN: gas1DNBand, PS: gas1KLow / gas1DNBand},
				{DN: gas1DNSep, PS: gas1KLow / gas1DNSep},
			},
		}},
		Labels: []ped.Label{
			{Text: "SEP", DN: 15, PS: 1},
			{Text: "I", DN: 35, PS: 2},
			{Text: "II", DN: 70, PS: 20},
			{Text: "III", DN: 500, PS: 500},
		},
	}
}

// GasGroup2 classifies piping for other gases.
type GasGroup2 struct {
	*ped.BaseRule
}

// NewGasGroup2 creates the gas, group 2 rule.
func NewGasGroup2() *GasGroup2 {
	return &GasGroup2{
		BaseRule: ped.NewBaseRule("GAS-2", "Piping, Group 2 Gas", ped.StateGas, ped.Group2, "Annex II Table 7"),
	}
}

// Classify implements ped.Rule.
//
// The band conditions do not partition the plane: a point in a band whose
// product exceeds that band's limit falls through to III, as in the table
// this was taken from.
func (r *GasGroup2) Classify(p ped.OperatingPoint) ped.Category {
	if p.PS <= psScope {
		return ped.CategorySEP
	}

	product := p.Product()
	switch {
	case p.DN <= gas2DNSep || product <= gas2KSep:
		return ped.CategorySEP
	case p.DN > gas2DNSep && p.DN <= gas2DNBand && product <= gas2KI:
		return ped.CategoryI
	case p.DN > gas2DNBand && p.DN <= gas2DNMid && product <= gas2KII:
		return ped.CategoryII
	default:
		return ped.CategoryIII
	}
}

// Chart implements ped.Rule.
func (r *GasGroup2) Chart() ped.ChartSpec {
	return ped.ChartSpec{
		Title: "PED Classification - " + r.Name(),
		Segments: []ped.Segment{
			ped.HLine("PS = 0.5", psScope, ped.ChartDNMin, ped.ChartDNMax, "black"),
			ped.VLine("DN = 32", gas2DNSep, gas2KSep/gas2DNSep, ped.ChartPSMax, "green"),
			ped.VLine("DN = 100", gas2DNBand, gas2KSep/gas2DNBand, gas2KII/gas2DNBand, "blue"),
			ped.VLine("DN = 250", gas2DNMid, gas2KSep/gas2DNMid, gas2KII/gas2DNMid, "purple"),
		},
		Curves: []ped.IsoProduct{
			{Label: "PS·DN = 1000", K: gas2KSep, DNFrom: gas2DNSep, DNTo: gas2KSep / psScope, Color: "orange"},
			{Label: "PS·DN = 3500", K: gas2KI, DNFrom: gas2DNSep, DNTo: gas2DNBand, Color: "red"},
			{Label: "PS·DN = 5000", K: gas2KII, DNFrom: gas2DNBand, DNTo: gas2DNMid, Color: "brown"},
		},
		Labels: []ped.Label{
			{Text: "SEP", DN: 10, PS: 1},
			{Text: "I", DN: 50, PS: 40},
			{Text: "II", DN: 150, PS: 20},
			{Text: "III", DN: 500, PS: 500},
		},
	}
}

// Compile-time interface satisfaction checks.
var (
	_ ped.Rule = (*GasGroup1)(nil)
	_ ped.Rule = (*GasGroup2)(nil)
)
