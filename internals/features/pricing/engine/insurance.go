// file: internals/features/pricing/engine/insurance.go
package engine

import (
	"fmt"
	"math"
)

/* =======================================================
   INSURANCE PREMIUM CALCULATOR
======================================================= */

// CalculateInsurance computes a comprehensive premium: OD + TP + add-ons,
// NCB discount on OD, GST on the net premium.
//
// Tenure defaults are regulatory: a new two-wheeler carries a mandatory
// 5-year third-party cover, OD defaults to 1 year. Add-ons follow OD tenure.
func CalculateInsurance(rule InsuranceRuleConfig, ctx InsuranceCalculationContext) InsuranceCalculationResult {
	idv := 0.0
	if ctx.CustomIDV != nil {
		idv = *ctx.CustomIDV
	} else {
		idv = math.Round(ctx.ExShowroom * rule.IDVPercentage / 100)
	}

	odTenure := ctx.ODTenure
	if odTenure <= 0 {
		odTenure = 1
	}
	tpTenure := ctx.TPTenure
	if tpTenure <= 0 {
		tpTenure = 1
		if ctx.IsNewVehicle {
			tpTenure = 5
		}
	}

	calcCtx := CalculationContext{
		ExShowroom: ctx.ExShowroom,
		EngineCC:   ctx.EngineCC,
		FuelType:   ctx.FuelType,
		IDV:        idv,
	}

	res := InsuranceCalculationResult{IDV: int(idv)}
	res.ODBreakdown, res.ODTotal = evaluatePremiumComponents(rule.ODComponents, calcCtx, odTenure)
	res.TPBreakdown, res.TPTotal = evaluatePremiumComponents(rule.TPComponents, calcCtx, tpTenure)
	res.AddonBreakdown, res.AddonsTotal = evaluatePremiumComponents(rule.Addons, calcCtx, odTenure)

	if ctx.NCBPercentage > 0 {
		ncb := int(math.Round(float64(res.ODTotal) * ctx.NCBPercentage / 100))
		res.ODBreakdown = append(res.ODBreakdown, BreakdownItem{
			Label:  fmt.Sprintf("No Claim Bonus (%g%%)", ctx.NCBPercentage),
			Amount: -ncb,
			Meta:   "NCB discount on OD",
		})
		res.ODTotal -= ncb
	}

	res.NetPremium = res.ODTotal + res.TPTotal + res.AddonsTotal
	res.GSTAmount = int(math.Round(float64(res.NetPremium) * rule.GSTPercentage / 100))
	res.TotalPremium = res.NetPremium + res.GSTAmount
	return res
}

// evaluatePremiumComponents sums a component list under one tenure.
// Amounts below 1 rupee are dropped from the breakdown but still counted —
// a zero line in a premium quote is noise, not information.
func evaluatePremiumComponents(components []FormulaComponent, ctx CalculationContext, tenure float64) ([]BreakdownItem, int) {
	items := make([]BreakdownItem, 0, len(components))
	total := 0
	for _, comp := range components {
		amount := EvaluateComponent(comp, ctx, tenure)
		total += amount
		if amount < 1 {
			continue
		}
		items = append(items, BreakdownItem{
			Label:  comp.Label,
			Amount: amount,
			Meta:   componentMeta(comp, tenure),
		})
	}
	return items, total
}
