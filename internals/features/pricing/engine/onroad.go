// file: internals/features/pricing/engine/onroad.go
package engine

import (
	"math"
	"regexp"
	"strconv"
)

/* =======================================================
   ON-ROAD AGGREGATOR
======================================================= */

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// ParseEngineCC parses displacement values as they arrive from OEM feeds,
// e.g. "109.7cc" or "113 CC". Unparseable input yields 0 so downstream
// slab lookups degrade to no-match instead of poisoning the totals.
func ParseEngineCC(raw string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	cc, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return cc
}

// CalculateOnRoad combines ex-showroom, registration and insurance into the
// final on-road price. Registration is computed for all three series so the
// storefront can show the comparison; the state total feeds the headline
// price. A manual on-road override always wins.
func CalculateOnRoad(
	baseExShowroom float64,
	engineCC string,
	regRule RegistrationRuleConfig,
	insRule InsuranceRuleConfig,
	override *PricingOverride,
) OnRoadResult {
	exShowroom := baseExShowroom
	if override != nil && override.ExShowroom != nil {
		exShowroom = *override.ExShowroom
	}

	cc := ParseEngineCC(engineCC)
	ctx := CalculationContext{
		ExShowroom: exShowroom,
		EngineCC:   cc,
		FuelType:   "PETROL",
	}

	res := OnRoadResult{
		ExShowroom:      exShowroom,
		RTOState:        CalculateRegistrationCharges(regRule, ctx, RegStateIndividual),
		RTOBharat:       CalculateRegistrationCharges(regRule, ctx, RegBHSeries),
		RTOCompany:      CalculateRegistrationCharges(regRule, ctx, RegCompany),
		AppliedOverride: override,
	}
	res.Insurance = CalculateInsurance(insRule, InsuranceCalculationContext{
		ExShowroom:   exShowroom,
		EngineCC:     cc,
		FuelType:     "PETROL",
		IsNewVehicle: true,
	})

	calculated := int(math.Round(exShowroom)) + res.RTOState.TotalAmount + res.Insurance.TotalPremium
	if override != nil {
		if override.Discount != nil {
			calculated -= int(math.Round(*override.Discount))
		}
		if override.DealerOffer != nil {
			calculated -= int(math.Round(*override.DealerOffer))
		}
	}
	res.CalculatedTotal = calculated

	res.OnRoadTotal = calculated
	if override != nil && override.OnRoadOverride != nil {
		res.OnRoadTotal = int(math.Round(*override.OnRoadOverride))
	}
	return res
}

// InsuranceItems flattens the insurance result in render order:
// OD, TP, add-ons, then a synthetic GST line.
func InsuranceItems(res InsuranceCalculationResult, gstPercentage float64) []BreakdownItem {
	items := make([]BreakdownItem, 0, len(res.ODBreakdown)+len(res.TPBreakdown)+len(res.AddonBreakdown)+1)
	items = append(items, res.ODBreakdown...)
	items = append(items, res.TPBreakdown...)
	items = append(items, res.AddonBreakdown...)
	items = append(items, BreakdownItem{
		Label:  gstLabel(gstPercentage),
		Amount: res.GSTAmount,
	})
	return items
}

func gstLabel(pct float64) string {
	return "GST (" + strconv.FormatFloat(pct, 'g', -1, 64) + "%)"
}
