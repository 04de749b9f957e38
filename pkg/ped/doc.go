// Package ped classifies pressurized piping into Pressure Equipment Directive
// (PED) risk categories.
//
// A classification takes an operating point (maximum allowable pressure PS in
// bar, nominal diameter DN in mm) and a fluid state/group pair, and returns one
// of the categories SEP, I, II or III. Each state/group pair is handled by a
// Rule that encodes the matching PED Annex II table as literal thresholds.
//
// # Basic Usage
//
// Rules are looked up through a Registry. The rules subpackage provides a
// registry populated with the four piping tables:
//
//	registry := rules.NewDefaultRegistry()
//	point, err := ped.NewOperatingPoint(80, 90)
//	if err != nil {
//	    return err
//	}
//	result, err := registry.Classify(ped.StateGas, ped.Group1, point)
//	// result.Category == ped.CategoryIII
//
// # Chart Geometry
//
// Every Rule also declares a ChartSpec describing its boundaries (threshold
// lines, iso-product curves PS = K/DN, region labels). The chart package
// renders a ChartSpec together with a Result; it never computes a category
// itself.
//
// # Input Policy
//
// NewOperatingPoint rejects PS or DN values that are not finite positive
// numbers with ErrInvalidInput. Rules therefore only ever see PS > 0 and
// DN > 0, over which every rule is total.
package ped
