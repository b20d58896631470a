// file: internals/features/pricing/engine/formula_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func tpSlabComponent() FormulaComponent {
	return FormulaComponent{
		ID:    "tp",
		Type:  ComponentSlab,
		Label: "Third Party",
		Basis: BasisEngineCC,
		Ranges: []SlabRange{
			{Min: 0, Max: f64(75), Amount: 482},
			{Min: 75, Max: f64(150), Amount: 714},
			{Min: 150, Max: f64(350), Amount: 1366},
			{Min: 350, Max: nil, Amount: 2804},
		},
	}
}

func TestEvaluatePercentage(t *testing.T) {
	c := FormulaComponent{Type: ComponentPercentage, Label: "Road Tax", Percentage: 12, Basis: BasisExShowroom}
	ctx := CalculationContext{ExShowroom: 100000, EngineCC: 110}

	assert.Equal(t, 12000, EvaluateComponent(c, ctx, 1))
	assert.Equal(t, 24000, EvaluateComponent(c, ctx, 2))
}

func TestEvaluatePercentageRoundsBeforeMultiplying(t *testing.T) {
	c := FormulaComponent{Type: ComponentPercentage, Label: "OD", Percentage: 1.875, Basis: BasisIDV}
	ctx := CalculationContext{IDV: 95000}

	// round(95000 * 0.01875) = round(1781.25) = 1781
	assert.Equal(t, 1781, EvaluateComponent(c, ctx, 1))
	assert.Equal(t, 8905, EvaluateComponent(c, ctx, 5))
}

func TestEvaluateFixed(t *testing.T) {
	c := FormulaComponent{Type: ComponentFixed, Label: "PA Cover", Amount: 375}
	assert.Equal(t, 375, EvaluateComponent(c, CalculationContext{}, 1))
	assert.Equal(t, 750, EvaluateComponent(c, CalculationContext{}, 2))
}

func TestEvaluateSlabPicksFirstMatchingRange(t *testing.T) {
	c := tpSlabComponent()

	tests := []struct {
		name     string
		engineCC float64
		want     int
	}{
		{"below first range upper bound", 60, 482},
		{"lower bound is inclusive", 75, 482},
		{"upper bound is inclusive", 150, 714},
		{"mid range", 200, 1366},
		{"open-ended range", 400, 2804},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateComponent(c, CalculationContext{EngineCC: tt.engineCC}, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateSlabBoundaryBelongsToEarlierRange(t *testing.T) {
	// 75 sits on the seam of [0,75] and [75,150]; the first range wins.
	c := tpSlabComponent()
	assert.Equal(t, 482, EvaluateComponent(c, CalculationContext{EngineCC: 75}, 1))
}

func TestEvaluateSlabNoMatchYieldsZero(t *testing.T) {
	c := FormulaComponent{
		Type:   ComponentSlab,
		Ranges: []SlabRange{{Min: 100, Max: f64(200), Amount: 500}},
	}
	assert.Equal(t, 0, EvaluateComponent(c, CalculationContext{EngineCC: 50}, 1))
}

func TestEvaluateSlabPercentageValueMode(t *testing.T) {
	c := FormulaComponent{
		Type:          ComponentSlab,
		Basis:         BasisExShowroom,
		SlabValueType: SlabValuePercentage,
		Ranges: []SlabRange{
			{Min: 0, Max: f64(125), Percentage: 8},
			{Min: 125, Max: nil, Percentage: 10},
		},
	}
	ctx := CalculationContext{ExShowroom: 100000, EngineCC: 110}
	assert.Equal(t, 8000, EvaluateComponent(c, ctx, 1))

	ctx.EngineCC = 160
	assert.Equal(t, 10000, EvaluateComponent(c, ctx, 1))
}

func TestEvaluateSlabPerRangeBasisOverride(t *testing.T) {
	c := FormulaComponent{
		Type:         ComponentSlab,
		SlabVariable: BasisEngineCC,
		Ranges: []SlabRange{
			{Min: 0, Max: f64(50000), Amount: 300, SlabBasis: BasisExShowroom},
			{Min: 50000, Max: nil, Amount: 600, SlabBasis: BasisExShowroom},
		},
	}
	assert.Equal(t, 600, EvaluateComponent(c, CalculationContext{ExShowroom: 80000, EngineCC: 110}, 1))
}

func TestEvaluateUnknownTypeDegradesToZero(t *testing.T) {
	c := FormulaComponent{Type: "CONDITIONAL", Label: "Legacy"}
	assert.Equal(t, 0, EvaluateComponent(c, CalculationContext{ExShowroom: 100000}, 1))
}

func TestEvaluateMissingInputsDegradeToZero(t *testing.T) {
	c := FormulaComponent{Type: ComponentPercentage, Basis: BasisIDV, Percentage: 2}
	assert.Equal(t, 0, EvaluateComponent(c, CalculationContext{}, 1))
}
