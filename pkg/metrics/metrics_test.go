package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(state ped.FluidState, group ped.FluidGroup, c ped.Category) ped.Result {
	return ped.Result{RuleID: "X", State: state, Group: group, Category: c}
}

func TestMetrics_Classified(t *testing.T) {
	m := New()
	m.Classified(result(ped.StateGas, ped.Group1, ped.CategoryIII), 0.000002)
	m.Classified(result(ped.StateGas, ped.Group1, ped.CategoryIII), 0.000001)
	m.Classified(result(ped.StateLiquid, ped.Group2, ped.CategoryI), 0.000001)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.classifications.WithLabelValues("gas", "1", "III")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.classifications.WithLabelValues("liquid", "2", "I")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.classifications))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_Rejected(t *testing.T) {
	m := New()
	m.Rejected(ped.CodeInvalidFluidState)
	m.Rejected(ped.CodeInvalidFluidState)
	m.Rejected("")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejected.WithLabelValues("INVALID_FLUID_STATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("UNKNOWN")))
}

func TestMetrics_ChartRendered(t *testing.T) {
	m := New()
	m.ChartRendered("GAS-1", nil)
	m.ChartRendered("GAS-1", errors.New("boom"))

	expected := `
# HELP ped_charts_total Charts rendered, by rule and result.
# TYPE ped_charts_total counter
ped_charts_total{result="error",rule="GAS-1"} 1
ped_charts_total{result="ok",rule="GAS-1"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.charts, strings.NewReader(expected)))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.Classified(result(ped.StateGas, ped.Group2, ped.CategoryII), 0.000001)
	m.Rejected(ped.CodeInvalidInput)

	path := filepath.Join(t.TempDir(), "ped.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `ped_classifications_total{category="II",group="2",state="gas"} 1`)
	assert.Contains(t, out, `ped_rejected_total{code="INVALID_INPUT"} 1`)
	assert.Contains(t, out, "# TYPE ped_classification_duration_seconds histogram")
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.Classified(result(ped.StateGas, ped.Group1, ped.CategorySEP), 0)
	r.Rejected(ped.CodeInvalidFluidGroup)
	r.ChartRendered("GAS-1", nil)
}
