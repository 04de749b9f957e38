package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/ped-tools/ped-go/pkg/ped/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q", substr)
	}
}

func classify(t *testing.T, rule ped.Rule, ps, dn float64) ped.Result {
	t.Helper()
	p, err := ped.NewOperatingPoint(ps, dn)
	require.NoError(t, err)
	return ped.Result{RuleID: rule.ID(), State: rule.State(), Group: rule.Group(), Point: p, Category: rule.Classify(p)}
}

func render(t *testing.T, spec ped.ChartSpec, result ped.Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(DefaultOptions()).Render(&buf, spec, result))
	return buf.String()
}

func TestLogAxis_Pos(t *testing.T) {
	a := logAxis{min: 1, max: 10000, from: 0, to: 400}
	assert.InDelta(t, 0, a.pos(1), 1e-9)
	assert.InDelta(t, 400, a.pos(10000), 1e-9)
	assert.InDelta(t, 200, a.pos(100), 1e-9)

	inverted := logAxis{min: 1, max: 100, from: 300, to: 100}
	assert.InDelta(t, 200, inverted.pos(10), 1e-9)
}

func TestLogAxis_Ticks(t *testing.T) {
	ps := logAxis{min: ped.ChartPSMin, max: ped.ChartPSMax}
	major, minor := ps.ticks()
	assert.Equal(t, []float64{0.5, 1, 10, 100, 1000}, major)
	assert.Len(t, minor, 28)

	dn := logAxis{min: ped.ChartDNMin, max: ped.ChartDNMax}
	major, minor = dn.ticks()
	assert.Equal(t, []float64{1, 10, 100, 1000, 10000}, major)
	assert.Len(t, minor, 32)
}

func TestLogspace(t *testing.T) {
	got := logspace(1, 100, 3)
	require.Len(t, got, 3)
	assert.InDelta(t, 1, got[0], 1e-9)
	assert.InDelta(t, 10, got[1], 1e-9)
	assert.Equal(t, 100.0, got[2])
}

func TestSVGRenderer_AllRules(t *testing.T) {
	for _, rule := range rules.NewDefaultRegistry().Rules() {
		t.Run(rule.ID(), func(t *testing.T) {
			spec := rule.Chart()
			result := classify(t, rule, 80, 90)
			output := render(t, spec, result)

			mustContain(t, output, `<svg xmlns="http://www.w3.org/2000/svg"`)
			mustContain(t, output, "</svg>")
			mustContain(t, output, spec.Title)
			mustContain(t, output, "DN (mm)")
			mustContain(t, output, "PS (bar)")
			mustContain(t, output, "Operating Point: "+result.Category.String())

			for _, seg := range spec.Segments {
				mustContain(t, output, seg.Label)
			}
			for _, l := range spec.Labels {
				mustContain(t, output, ">"+l.Text+"</text>")
			}
			assert.Equal(t, len(spec.Curves), strings.Count(output, "<polyline"))
			assert.Equal(t, len(spec.Regions), strings.Count(output, "<polygon"))
		})
	}
}

func TestSVGRenderer_WorkedExample(t *testing.T) {
	rule := rules.NewGasGroup1()
	output := render(t, rule.Chart(), classify(t, rule, 80, 90))

	mustContain(t, output, "PED Classification - Piping, Group 1 Gas")
	mustContain(t, output, "Operating Point: III")
	mustContain(t, output, "PS·DN = 1000")
	mustContain(t, output, "PS·DN = 3500")
	mustContain(t, output, `fill="lightgray"`)
}

func TestSVGRenderer_UsesGivenCategory(t *testing.T) {
	rule := rules.NewGasGroup1()
	result := classify(t, rule, 80, 90)
	result.Category = ped.CategoryII

	output := render(t, rule.Chart(), result)
	mustContain(t, output, "Operating Point: II<")
	assert.NotContains(t, output, "Operating Point: III")
}

func TestSVGRenderer_ReferenceSegmentDashed(t *testing.T) {
	rule := rules.NewLiquidGroup2()
	output := render(t, rule.Chart(), classify(t, rule, 600, 300))
	mustContain(t, output, `stroke-dasharray="6 4"><title>PS = 500</title>`)
}

func TestSVGRenderer_PointOutsideAxes(t *testing.T) {
	rule := rules.NewGasGroup2()
	output := render(t, rule.Chart(), classify(t, rule, 2000, 20000))
	mustContain(t, output, "outside chart: PS=2000 bar, DN=20000 mm")

	inside := render(t, rule.Chart(), classify(t, rule, 10, 100))
	assert.NotContains(t, inside, "outside chart")
}

func TestSVGRenderer_NoGrid(t *testing.T) {
	rule := rules.NewGasGroup1()
	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(Options{Grid: false}).Render(&buf, rule.Chart(), classify(t, rule, 1, 1)))
	assert.NotContains(t, buf.String(), `stroke-dasharray="4 3"`)
	mustContain(t, buf.String(), `width="1000" height="700"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGRenderer_WriteError(t *testing.T) {
	rule := rules.NewGasGroup1()
	err := NewSVGRenderer(DefaultOptions()).Render(failingWriter{}, rule.Chart(), classify(t, rule, 1, 1))
	assert.EqualError(t, err, "disk full")
}

func TestRenderFile(t *testing.T) {
	rule := rules.NewLiquidGroup1()
	path := filepath.Join(t.TempDir(), "charts", "nested", DefaultFileName(rule.State(), rule.Group()))

	require.NoError(t, RenderFile(NewSVGRenderer(DefaultOptions()), path, rule.Chart(), classify(t, rule, 20, 300)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	mustContain(t, string(data), "PED Classification - Piping, Group 1 Liquid")
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "piping_group1_gas.svg", DefaultFileName(ped.StateGas, ped.Group1))
	assert.Equal(t, "piping_group2_liquid.svg", DefaultFileName(ped.StateLiquid, ped.Group2))
}
