package rules

import (
	"math"
	"testing"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nudge = 1e-6

// interior returns n geometrically spaced values strictly between from and to.
func interior(from, to float64, n int) []float64 {
	out := make([]float64, 0, n)
	ratio := math.Log(to / from)
	for i := 1; i <= n; i++ {
		out = append(out, from*math.Exp(ratio*float64(i)/float64(n+1)))
	}
	return out
}

func classifyAt(t *testing.T, rule ped.Rule, dn, ps float64) ped.Category {
	t.Helper()
	return rule.Classify(mustPoint(t, ps, dn))
}

// Every drawn boundary must separate different categories, so the chart can
// never show a line the classifier does not act on.
func TestChart_BoundariesSeparateCategories(t *testing.T) {
	for _, rule := range NewDefaultRegistry().Rules() {
		spec := rule.Chart()

		t.Run(rule.ID()+"/segments", func(t *testing.T) {
			for _, seg := range spec.Segments {
				separated := 0
				samples := interior(seg.From, seg.To, 25)
				for _, v := range samples {
					var below, above ped.Category
					if seg.Orientation == ped.Vertical {
						below = classifyAt(t, rule, seg.At*(1-nudge), v)
						above = classifyAt(t, rule, seg.At*(1+nudge), v)
					} else {
						below = classifyAt(t, rule, v, seg.At*(1-nudge))
						above = classifyAt(t, rule, v, seg.At*(1+nudge))
					}
					if below != above {
						separated++
					}
				}

				switch {
				case seg.Reference:
					assert.Zero(t, separated, "reference segment %q separates categories", seg.Label)
				case seg.Orientation == ped.Horizontal && seg.At == psScope:
					assert.Positive(t, separated, "scope line %q never separates categories", seg.Label)
				default:
					assert.Equal(t, len(samples), separated, "segment %q does not separate everywhere", seg.Label)
				}
			}
		})

		t.Run(rule.ID()+"/curves", func(t *testing.T) {
			for _, c := range spec.Curves {
				for _, dn := range interior(c.DNFrom, c.DNTo, 25) {
					below := classifyAt(t, rule, dn, c.PS(dn)*(1-nudge))
					above := classifyAt(t, rule, dn, c.PS(dn)*(1+nudge))
					assert.NotEqual(t, below, above, "curve %q at DN=%g does not separate", c.Label, dn)
				}
			}
		})
	}
}

func TestChart_LabelsMatchClassification(t *testing.T) {
	for _, rule := range NewDefaultRegistry().Rules() {
		t.Run(rule.ID(), func(t *testing.T) {
			for _, l := range rule.Chart().Labels {
				want, err := ped.ParseCategory(l.Text)
				require.NoError(t, err)
				assert.Equal(t, want, classifyAt(t, rule, l.DN, l.PS), "label %q at DN=%g PS=%g", l.Text, l.DN, l.PS)
			}
		})
	}
}

func TestChart_GeometryWithinAxes(t *testing.T) {
	for _, rule := range NewDefaultRegistry().Rules() {
		spec := rule.Chart()
		t.Run(rule.ID(), func(t *testing.T) {
			assert.Contains(t, spec.Title, rule.Name())
			for _, seg := range spec.Segments {
				assert.Less(t, seg.From, seg.To, "segment %q", seg.Label)
			}
			for _, c := range spec.Curves {
				assert.GreaterOrEqual(t, c.DNFrom, ped.ChartDNMin, "curve %q", c.Label)
				assert.LessOrEqual(t, c.DNTo, ped.ChartDNMax, "curve %q", c.Label)
				assert.LessOrEqual(t, c.PS(c.DNFrom), ped.ChartPSMax, "curve %q", c.Label)
				assert.GreaterOrEqual(t, c.PS(c.DNTo), ped.ChartPSMin, "curve %q", c.Label)
			}
		})
	}
}

func TestChart_GasGroup1ShadedRegion(t *testing.T) {
	spec := NewGasGroup1().Chart()
	require.Len(t, spec.Regions, 1)

	region := spec.Regions[0]
	assert.Equal(t, ped.CategoryI, region.Category)

	// Log-space centroid lies inside the polygon.
	var sumDN, sumPS float64
	for _, v := range region.Vertices {
		sumDN += math.Log(v.DN)
		sumPS += math.Log(v.PS)
	}
	n := float64(len(region.Vertices))
	centroid := classifyAt(t, NewGasGroup1(), math.Exp(sumDN/n), math.Exp(sumPS/n))
	assert.Equal(t, ped.CategoryI, centroid)
}
