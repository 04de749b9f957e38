package ped

import "fmt"

// Rule classifies operating points for one fluid state/group pair.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "GAS-1").
	ID() string
	// Name returns a human-readable name for the rule.
	Name() string
	// State returns the fluid state the rule applies to.
	State() FluidState
	// Group returns the fluid group the rule applies to.
	Group() FluidGroup
	// Table returns the PED Annex II table the rule encodes.
	Table() string
	// Classify returns the category of p. p must come from NewOperatingPoint.
	Classify(p OperatingPoint) Category
	// Chart returns the boundary geometry matching Classify.
	Chart() ChartSpec
}

// Result is the outcome of a single classification.
type Result struct {
	RuleID   string         `json:"rule" yaml:"rule"`
	State    FluidState     `json:"fluid_state" yaml:"fluid_state"`
	Group    FluidGroup     `json:"fluid_group" yaml:"fluid_group"`
	Point    OperatingPoint `json:"point" yaml:"point"`
	Category Category       `json:"category" yaml:"category"`
}

// String returns a one-line summary of the result.
func (r Result) String() string {
	return fmt.Sprintf("[%s] %s %s, %s -> %s", r.RuleID, r.State, r.Group, r.Point, r.Category)
}

// BaseRule provides a default implementation of the descriptive Rule methods.
type BaseRule struct {
	id    string
	name  string
	state FluidState
	group FluidGroup
	table string
}

// ID returns the rule ID.
func (r *BaseRule) ID() string { return r.id }

// Name returns the rule name.
func (r *BaseRule) Name() string { return r.name }

// State returns the fluid state.
func (r *BaseRule) State() FluidState { return r.state }

// Group returns the fluid group.
func (r *BaseRule) Group() FluidGroup { return r.group }

// Table returns the Annex II table reference.
func (r *BaseRule) Table() string { return r.table }

// NewBaseRule creates a new BaseRule with the given properties.
func NewBaseRule(id, name string, state FluidState, group FluidGroup, table string) *BaseRule {
	return &BaseRule{
		id:    id,
		name:  name,
		state: state,
		group: group,
		table: table,
	}
}
