// file: internals/features/pricing/engine/registration_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRegistrationFlatPercentage(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentPercentage, Label: "Road Tax", Percentage: 12, Basis: BasisExShowroom},
		},
		StateTenure: 15,
	}
	ctx := CalculationContext{ExShowroom: 100000, EngineCC: 110}

	res := CalculateRegistrationCharges(rule, ctx, RegStateIndividual)
	assert.Equal(t, 12000, res.TotalAmount)
	require.Len(t, res.Breakdown, 1)
	assert.Equal(t, "Road Tax", res.Breakdown[0].Label)
	assert.Equal(t, 12000, res.Breakdown[0].Amount)
}

func TestRegistrationTotalIsSumOfBreakdown(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentPercentage, Label: "Road Tax", Percentage: 10, Basis: BasisExShowroom},
			{Type: ComponentFixed, Label: "Smart Card", Amount: 200},
			{Type: ComponentFixed, Label: "HSRP Plate", Amount: 600},
			tpSlabComponent(),
		},
	}
	ctx := CalculationContext{ExShowroom: 85000, EngineCC: 110}

	for _, regType := range []RegistrationType{RegStateIndividual, RegBHSeries, RegCompany} {
		res := CalculateRegistrationCharges(rule, ctx, regType)
		sum := 0
		for _, item := range res.Breakdown {
			sum += item.Amount
		}
		assert.Equal(t, sum, res.TotalAmount, "total must equal breakdown sum for %s", regType)
		assert.Len(t, res.Breakdown, len(rule.Components), "registration keeps every line for %s", regType)
	}
}

func TestCompanyRegistrationAppliesMultiplier(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentPercentage, Label: "Road Tax", Percentage: 10, Basis: BasisExShowroom},
		},
		CompanyMultiplier: 2,
	}
	ctx := CalculationContext{ExShowroom: 100000}

	res := CalculateRegistrationCharges(rule, ctx, RegCompany)
	assert.Equal(t, 20000, res.TotalAmount)
}

func TestCompanyMultiplierDefaultsToTwo(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentFixed, Label: "Registration Fee", Amount: 1000},
		},
	}
	res := CalculateRegistrationCharges(rule, CalculationContext{}, RegCompany)
	assert.Equal(t, 2000, res.TotalAmount)
}

func TestBHSeriesProRatesMarkedComponents(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{
				Type: ComponentPercentage, Label: "Road Tax", Percentage: 15,
				Basis: BasisExShowroom, VariantTreatment: VariantProRata,
			},
			{Type: ComponentFixed, Label: "Smart Card", Amount: 300},
		},
		StateTenure: 15,
		BhTenure:    2,
	}
	ctx := CalculationContext{ExShowroom: 100000}

	res := CalculateRegistrationCharges(rule, ctx, RegBHSeries)
	// 15000 * (2/15) = 2000; fixed fee untouched
	assert.Equal(t, 2000, res.Breakdown[0].Amount)
	assert.Equal(t, 300, res.Breakdown[1].Amount)
	assert.Equal(t, 2300, res.TotalAmount)
}

func TestBHSeriesSlabsProRateByDefault(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components:  []FormulaComponent{tpSlabComponent()},
		StateTenure: 15,
		BhTenure:    3,
	}
	ctx := CalculationContext{EngineCC: 110}

	res := CalculateRegistrationCharges(rule, ctx, RegBHSeries)
	// 714 * (3/15) = 142.8 → 143
	assert.Equal(t, 143, res.TotalAmount)
}

func TestStateTenureDoesNotScaleFlatComponents(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: ComponentPercentage, Label: "Road Tax", Percentage: 12, Basis: BasisExShowroom},
		},
		StateTenure: 15,
	}
	short := rule
	short.StateTenure = 5

	ctx := CalculationContext{ExShowroom: 100000}
	assert.Equal(t,
		CalculateRegistrationCharges(rule, ctx, RegStateIndividual).TotalAmount,
		CalculateRegistrationCharges(short, ctx, RegStateIndividual).TotalAmount,
	)
}

func TestRegistrationMalformedComponentEvaluatesToZero(t *testing.T) {
	rule := RegistrationRuleConfig{
		Components: []FormulaComponent{
			{Type: "SWITCH", Label: "Fuel Split"},
			{Type: ComponentFixed, Label: "Postal Fee", Amount: 50},
		},
	}
	res := CalculateRegistrationCharges(rule, CalculationContext{ExShowroom: 100000}, RegStateIndividual)
	assert.Equal(t, 50, res.TotalAmount)
	require.Len(t, res.Breakdown, 2)
	assert.Equal(t, 0, res.Breakdown[0].Amount)
}
