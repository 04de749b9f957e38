// Package rules holds the four PED piping tables as ped.Rule implementations.
package rules

import "github.com/ped-tools/ped-go/pkg/ped"

// RegisterAllRules registers the gas and liquid piping rules with the given registry.
func RegisterAllRules(registry *ped.Registry) {
	registry.Register(NewGasGroup1())
	registry.Register(NewGasGroup2())
	registry.Register(NewLiquidGroup1())
	registry.Register(NewLiquidGroup2())
}

// NewDefaultRegistry creates a new registry with all rules registered.
func NewDefaultRegistry() *ped.Registry {
	registry := ped.NewRegistry()
	RegisterAllRules(registry)
	return registry
}

// Classify validates ps and dn and classifies them with the default rules.
func Classify(state ped.FluidState, group ped.FluidGroup, ps, dn float64) (ped.Category, error) {
	point, err := ped.NewOperatingPoint(ps, dn)
	if err != nil {
		return 0, err
	}
	result, err := NewDefaultRegistry().Classify(state, group, point)
	if err != nil {
		return 0, err
	}
	return result.Category, nil
}
