// file: internals/features/pricing/engine/insurance_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comprehensiveRule() InsuranceRuleConfig {
	return InsuranceRuleConfig{
		IDVPercentage: 95,
		GSTPercentage: 18,
		ODComponents: []FormulaComponent{
			{ID: "od", Type: ComponentPercentage, Label: "Own Damage", Percentage: 1.875, Basis: BasisIDV},
		},
		TPComponents: []FormulaComponent{tpSlabComponent()},
		Addons: []FormulaComponent{
			{ID: "zero-dep", Type: ComponentPercentage, Label: "Zero Depreciation", Percentage: 0.2, Basis: BasisIDV},
			{ID: "pa-cover", Type: ComponentFixed, Label: "PA Cover", Amount: 375},
		},
	}
}

func TestInsuranceIDVFromPercentage(t *testing.T) {
	res := CalculateInsurance(comprehensiveRule(), InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1,
	})
	assert.Equal(t, 95000, res.IDV)

	require.NotEmpty(t, res.ODBreakdown)
	assert.Equal(t, 1781, res.ODBreakdown[0].Amount)
}

func TestInsuranceCustomIDVWins(t *testing.T) {
	custom := 80000.0
	res := CalculateInsurance(comprehensiveRule(), InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, CustomIDV: &custom, ODTenure: 1, TPTenure: 1,
	})
	assert.Equal(t, 80000, res.IDV)
}

func TestNewVehicleDefaultsToFiveYearTP(t *testing.T) {
	rule := comprehensiveRule()

	oneYear := CalculateInsurance(rule, InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, TPTenure: 1,
	})
	defaulted := CalculateInsurance(rule, InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, IsNewVehicle: true,
	})

	assert.Equal(t, oneYear.TPTotal*5, defaulted.TPTotal)
	require.Len(t, defaulted.TPBreakdown, 1)
	assert.Equal(t, oneYear.TPBreakdown[0].Amount*5, defaulted.TPBreakdown[0].Amount)
}

func TestUsedVehicleDefaultsToOneYearTP(t *testing.T) {
	rule := comprehensiveRule()
	res := CalculateInsurance(rule, InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, IsNewVehicle: false,
	})
	assert.Equal(t, 714, res.TPTotal)
}

func TestNCBDiscountOnODTotal(t *testing.T) {
	res := CalculateInsurance(comprehensiveRule(), InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1, NCBPercentage: 20,
	})

	// round(1781 * 0.20) = 356
	assert.Equal(t, 1781-356, res.ODTotal)

	last := res.ODBreakdown[len(res.ODBreakdown)-1]
	assert.Equal(t, "No Claim Bonus (20%)", last.Label)
	assert.Equal(t, -356, last.Amount)
}

func TestNCBNeverIncreasesODTotal(t *testing.T) {
	rule := comprehensiveRule()
	base := CalculateInsurance(rule, InsuranceCalculationContext{ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1})
	discounted := CalculateInsurance(rule, InsuranceCalculationContext{ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1, NCBPercentage: 20})

	assert.Greater(t, base.ODTotal, discounted.ODTotal)
}

func TestZeroNCBAddsNoDiscountLine(t *testing.T) {
	res := CalculateInsurance(comprehensiveRule(), InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110,
	})
	for _, item := range res.ODBreakdown {
		assert.GreaterOrEqual(t, item.Amount, 1)
	}
}

func TestTotalPremiumIncludesGST(t *testing.T) {
	res := CalculateInsurance(comprehensiveRule(), InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1,
	})

	net := res.ODTotal + res.TPTotal + res.AddonsTotal
	assert.Equal(t, net, res.NetPremium)

	// 18% GST on net, rounded
	wantGST := int(float64(net)*0.18 + 0.5)
	assert.Equal(t, wantGST, res.GSTAmount)
	assert.Equal(t, net+wantGST, res.TotalPremium)
}

func TestSubRupeeAmountsDroppedFromBreakdownButCounted(t *testing.T) {
	rule := InsuranceRuleConfig{
		IDVPercentage: 95,
		GSTPercentage: 18,
		ODComponents: []FormulaComponent{
			{Type: ComponentFixed, Label: "Base OD", Amount: 1000},
			{Type: ComponentFixed, Label: "Rounding Dust", Amount: 0.2},
		},
	}
	res := CalculateInsurance(rule, InsuranceCalculationContext{ExShowroom: 100000, ODTenure: 1, TPTenure: 1})

	require.Len(t, res.ODBreakdown, 1)
	assert.Equal(t, "Base OD", res.ODBreakdown[0].Label)
	assert.Equal(t, 1000, res.ODTotal)
}

func TestInsuranceItemsRenderOrder(t *testing.T) {
	rule := comprehensiveRule()
	res := CalculateInsurance(rule, InsuranceCalculationContext{
		ExShowroom: 100000, EngineCC: 110, ODTenure: 1, TPTenure: 1,
	})

	items := InsuranceItems(res, rule.GSTPercentage)
	require.Len(t, items, 5)
	assert.Equal(t, "Own Damage", items[0].Label)
	assert.Equal(t, "Third Party", items[1].Label)
	assert.Equal(t, "Zero Depreciation", items[2].Label)
	assert.Equal(t, "PA Cover", items[3].Label)
	assert.Equal(t, "GST (18%)", items[4].Label)
	assert.Equal(t, res.GSTAmount, items[4].Amount)
}
