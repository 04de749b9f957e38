package ped

import (
	"fmt"
	"sync"
)

// ruleKey identifies the state/group slot a rule occupies.
type ruleKey struct {
	state FluidState
	group FluidGroup
}

// Registry manages classification rules, one per fluid state/group pair.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	rules     map[ruleKey]Rule
	ruleOrder []ruleKey // Maintain insertion order for deterministic iteration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:     make(map[ruleKey]Rule),
		ruleOrder: make([]ruleKey, 0, 4),
	}
}

// Register adds a rule to the registry. A rule registered for a state/group
// pair that is already taken replaces the previous rule in place.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ruleKey{state: rule.State(), group: rule.Group()}
	if _, exists := r.rules[key]; !exists {
		r.ruleOrder = append(r.ruleOrder, key)
	}
	r.rules[key] = rule
}

// Lookup returns the rule for a state/group pair.
func (r *Registry) Lookup(state FluidState, group FluidGroup) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[ruleKey{state: state, group: group}]
	return rule, ok
}

// GetRule returns a rule by ID, or nil if not found.
func (r *Registry) GetRule(id string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, key := range r.ruleOrder {
		if rule := r.rules[key]; rule.ID() == id {
			return rule
		}
	}
	return nil
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, len(r.ruleOrder))
	for i, key := range r.ruleOrder {
		rules[i] = r.rules[key]
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Classify dispatches p to the rule registered for state and group.
func (r *Registry) Classify(state FluidState, group FluidGroup, p OperatingPoint) (Result, error) {
	rule, ok := r.Lookup(state, group)
	if !ok {
		return Result{}, fmt.Errorf("%w for %s %s", ErrNoRule, state, group)
	}
	return Result{
		RuleID:   rule.ID(),
		State:    state,
		Group:    group,
		Point:    p,
		Category: rule.Classify(p),
	}, nil
}
