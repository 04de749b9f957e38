package rules

import (
	"testing"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultRegistry(t *testing.T) {
	registry := NewDefaultRegistry()
	require.Equal(t, 4, registry.Count())

	ids := make([]string, 0, 4)
	for _, r := range registry.Rules() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"GAS-1", "GAS-2", "LIQ-1", "LIQ-2"}, ids)

	for _, state := range []ped.FluidState{ped.StateGas, ped.StateLiquid} {
		for _, group := range []ped.FluidGroup{ped.Group1, ped.Group2} {
			rule, ok := registry.Lookup(state, group)
			require.True(t, ok, "%s %s", state, group)
			assert.Equal(t, state, rule.State())
			assert.Equal(t, group, rule.Group())
			assert.NotEmpty(t, rule.Table())
		}
	}
}

func TestClassify_DocumentedCases(t *testing.T) {
	tests := []struct {
		state ped.FluidState
		group ped.FluidGroup
		ps    float64
		dn    float64
		want  ped.Category
	}{
		{ped.StateGas, ped.Group1, 35, 100, ped.CategoryII},
		{ped.StateGas, ped.Group1, 0.4, 500, ped.CategorySEP},
		{ped.StateGas, ped.Group1, 80, 90, ped.CategoryIII},
		{ped.StateGas, ped.Group1, 135, 50, ped.CategoryIII},
		{ped.StateLiquid, ped.Group2, 5, 40, ped.CategoryI},
		{ped.StateLiquid, ped.Group2, 600, 300, ped.CategoryII},
	}

	for _, tt := range tests {
		got, err := Classify(tt.state, tt.group, tt.ps, tt.dn)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s PS=%g DN=%g", tt.state, tt.group, tt.ps, tt.dn)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, rule := range NewDefaultRegistry().Rules() {
		for _, ps := range []float64{0.3, 0.5, 1, 10, 35, 80, 500, 900} {
			for _, dn := range []float64{1, 25, 32, 90, 100, 250, 350, 5000} {
				first, err := Classify(rule.State(), rule.Group(), ps, dn)
				require.NoError(t, err)
				second, err := Classify(rule.State(), rule.Group(), ps, dn)
				require.NoError(t, err)
				assert.Equal(t, first, second)
			}
		}
	}
}

func TestClassify_RejectsNonPositive(t *testing.T) {
	_, err := Classify(ped.StateGas, ped.Group1, 0, 100)
	assert.ErrorIs(t, err, ped.ErrInvalidInput)

	_, err = Classify(ped.StateLiquid, ped.Group2, 10, -3)
	assert.ErrorIs(t, err, ped.ErrInvalidInput)
}
