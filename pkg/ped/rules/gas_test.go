package rules

import (
	"math"
	"testing"

	"github.com/ped-tools/ped-go/pkg/ped"
)

func mustPoint(t *testing.T, ps, dn float64) ped.OperatingPoint {
	t.Helper()
	p, err := ped.NewOperatingPoint(ps, dn)
	if err != nil {
		t.Fatalf("NewOperatingPoint(%g, %g) failed: %v", ps, dn, err)
	}
	return p
}

func TestGasGroup1_Classify(t *testing.T) {
	rule := NewGasGroup1()

	tests := []struct {
		name string
		ps   float64
		dn   float64
		want ped.Category
	}{
		{"PS below scope regardless of DN", 0.4, 500, ped.CategorySEP},
		{"PS at scope limit", 0.5, 400, ped.CategorySEP},
		{"DN at SEP limit", 10, 25, ped.CategorySEP},
		{"small DN high PS", 300, 20, ped.CategorySEP},
		{"band 1 low product", 10, 50, ped.CategoryI},
		{"band 1 product at 1000", 20, 50, ped.CategoryI},
		{"band 1 product between limits", 30, 50, ped.CategoryII},
		{"band 1 product at 3500", 70, 50, ped.CategoryII},
		{"band 1 upper edge product 3500", 35, 100, ped.CategoryII},
		{"worked example PS=80 DN=90", 80, 90, ped.CategoryIII},
		{"worked example PS=135 DN=50", 135, 50, ped.CategoryIII},
		{"band 2 product below 3500", 10, 200, ped.CategoryI},
		{"band 2 product at 3500", 17.5, 200, ped.CategoryI},
		{"band 2 product above 3500", 20, 200, ped.CategoryIII},
		{"band 2 upper edge", 10, 350, ped.CategoryI},
		{"band 2 upper edge high PS", 100, 350, ped.CategoryIII},
		{"large DN", 1, 400, ped.CategoryIII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Classify(mustPoint(t, tt.ps, tt.dn))
			if got != tt.want {
				t.Errorf("Classify(PS=%g, DN=%g) = %s, want %s", tt.ps, tt.dn, got, tt.want)
			}
		})
	}
}

func TestGasGroup2_Classify(t *testing.T) {
	rule := NewGasGroup2()

	tests := []struct {
		name string
		ps   float64
		dn   float64
		want ped.Category
	}{
		{"PS at scope limit", 0.5, 100, ped.CategorySEP},
		{"DN at SEP limit", 100, 32, ped.CategorySEP},
		{"product at 1000", 20, 50, ped.CategorySEP},
		{"large DN small product", 2, 300, ped.CategorySEP},
		{"band 1 product below 3500", 30, 50, ped.CategoryI},
		{"band 1 product at 3500", 70, 50, ped.CategoryI},
		{"band 1 product above 3500 falls through", 80, 50, ped.CategoryIII},
		{"band 2 product below 5000", 15, 150, ped.CategoryII},
		{"band 2 product at 5000", 20, 250, ped.CategoryII},
		{"band 2 product above 5000", 40, 150, ped.CategoryIII},
		{"above band 2", 5, 300, ped.CategoryIII},
		{"very large DN", 1, 2000, ped.CategoryIII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Classify(mustPoint(t, tt.ps, tt.dn))
			if got != tt.want {
				t.Errorf("Classify(PS=%g, DN=%g) = %s, want %s", tt.ps, tt.dn, got, tt.want)
			}
		})
	}
}

// Within a fixed DN, raising PS never lowers the category.
func TestGasRules_MonotonicInPS(t *testing.T) {
	gasRules := []ped.Rule{NewGasGroup1(), NewGasGroup2()}
	dns := []float64{1, 20, 25, 30, 32, 50, 90, 100, 101, 150, 250, 251, 300, 350, 351, 1000, 5000}

	for _, rule := range gasRules {
		t.Run(rule.ID(), func(t *testing.T) {
			for _, dn := range dns {
				prev := ped.CategorySEP
				for i := 0; i <= 200; i++ {
					ps := 0.1 * math.Pow(10, float64(i)*4.5/200)
					got := rule.Classify(mustPoint(t, ps, dn))
					if got < prev {
						t.Fatalf("DN=%g: category dropped from %s to %s at PS=%g", dn, prev, got, ps)
					}
					prev = got
				}
			}
		})
	}
}
