// file: internals/features/pricing/engine/onroad_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func onRoadFixtures() (RegistrationRuleConfig, InsuranceRuleConfig) {
	regRule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentPercentage, Label: "Road Tax", Percentage: 12, Basis: BasisExShowroom},
			{Type: ComponentFixed, Label: "Smart Card", Amount: 200},
		},
		CompanyMultiplier: 2,
	}
	return regRule, comprehensiveRule()
}

func TestParseEngineCC(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"109.7cc", 109.7},
		{"113 CC", 113},
		{"249", 249},
		{"", 0},
		{"N/A", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseEngineCC(tt.raw), "raw=%q", tt.raw)
	}
}

func TestOnRoadComposition(t *testing.T) {
	regRule, insRule := onRoadFixtures()

	res := CalculateOnRoad(100000, "109.7cc", regRule, insRule, nil)

	assert.Equal(t, 100000.0, res.ExShowroom)
	assert.Equal(t, 12200, res.RTOState.TotalAmount)
	assert.Equal(t, 2*12000+200, res.RTOCompany.TotalAmount)
	want := 100000 + res.RTOState.TotalAmount + res.Insurance.TotalPremium
	assert.Equal(t, want, res.OnRoadTotal)
	assert.Equal(t, res.CalculatedTotal, res.OnRoadTotal)
}

func TestOnRoadExShowroomOverride(t *testing.T) {
	regRule, insRule := onRoadFixtures()
	override := &PricingOverride{ExShowroom: f64(90000)}

	res := CalculateOnRoad(100000, "110", regRule, insRule, override)
	assert.Equal(t, 90000.0, res.ExShowroom)
	// registration recomputed on the overridden base
	assert.Equal(t, 10800+200, res.RTOState.TotalAmount)
}

func TestOnRoadDiscountsSubtract(t *testing.T) {
	regRule, insRule := onRoadFixtures()

	base := CalculateOnRoad(100000, "110", regRule, insRule, nil)
	discounted := CalculateOnRoad(100000, "110", regRule, insRule, &PricingOverride{
		Discount:    f64(3000),
		DealerOffer: f64(1500),
	})

	assert.Equal(t, base.OnRoadTotal-4500, discounted.OnRoadTotal)
}

func TestManualOnRoadOverrideAlwaysWins(t *testing.T) {
	regRule, insRule := onRoadFixtures()
	override := &PricingOverride{
		OnRoadOverride: f64(99999),
		Discount:       f64(5000),
	}

	res := CalculateOnRoad(100000, "110", regRule, insRule, override)
	assert.Equal(t, 99999, res.OnRoadTotal)
	assert.NotEqual(t, res.CalculatedTotal, res.OnRoadTotal)
}

func TestOnRoadUnparseableEngineCC(t *testing.T) {
	regRule, insRule := onRoadFixtures()

	res := CalculateOnRoad(100000, "unknown", regRule, insRule, nil)
	// cc degrades to 0; the TP slab still matches its 0–75 band
	assert.Equal(t, 482*5, res.Insurance.TPTotal)
	assert.Positive(t, res.OnRoadTotal)
}
