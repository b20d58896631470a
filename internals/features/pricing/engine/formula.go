// file: internals/features/pricing/engine/formula.go
package engine

import "math"

/* =======================================================
   FORMULA COMPONENT EVALUATOR
======================================================= */

// EvaluateComponent resolves one component against the context and returns a
// rounded rupee amount. Malformed or unknown components evaluate to 0 —
// rule shape is validated at authoring time, never here.
func EvaluateComponent(c FormulaComponent, ctx CalculationContext, multiplier float64) int {
	switch c.Type {
	case ComponentPercentage:
		base := math.Round(basisValue(c.Basis, ctx) * c.Percentage / 100)
		return int(math.Round(base * multiplier))

	case ComponentFixed:
		return int(math.Round(c.Amount * multiplier))

	case ComponentSlab:
		return int(math.Round(evaluateSlab(c, ctx) * multiplier))

	default:
		return 0
	}
}

// basisValue maps a basis enum to the context quantity. Unset or unknown
// falls back to ex-showroom.
func basisValue(b BasisType, ctx CalculationContext) float64 {
	switch b {
	case BasisIDV:
		return ctx.IDV
	case BasisEngineCC:
		return ctx.EngineCC
	default:
		return ctx.ExShowroom
	}
}

// evaluateSlab walks the ranges in order; the first range whose inclusive
// [min,max] window contains the lookup value wins. No match → 0.
func evaluateSlab(c FormulaComponent, ctx CalculationContext) float64 {
	for _, r := range c.Ranges {
		lookup := basisValue(slabBasisOf(r, c), ctx)
		if lookup < r.Min {
			continue
		}
		if r.Max != nil && lookup > *r.Max {
			continue
		}

		if c.SlabValueType == SlabValuePercentage {
			return math.Round(basisValue(c.Basis, ctx) * r.Percentage / 100)
		}
		// FIXED value mode (default): flat amount, percentage as legacy fallback
		if r.Amount != 0 {
			return r.Amount
		}
		return r.Percentage
	}
	return 0
}

// slabBasisOf resolves the lookup variable: per-range slabBasis, then the
// component-level slabVariable, then engine cc.
func slabBasisOf(r SlabRange, c FormulaComponent) BasisType {
	if r.SlabBasis != "" {
		return r.SlabBasis
	}
	if c.SlabVariable != "" {
		return c.SlabVariable
	}
	return BasisEngineCC
}

// treatmentOf applies the builder defaults: slabs pro-rate for BH Series
// unless the author says otherwise, everything else stays standard.
func treatmentOf(c FormulaComponent) VariantTreatment {
	if c.VariantTreatment != "" {
		return c.VariantTreatment
	}
	if c.Type == ComponentSlab {
		return VariantProRata
	}
	return VariantNone
}
