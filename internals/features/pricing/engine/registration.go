// file: internals/features/pricing/engine/registration.go
package engine

import "fmt"

/* =======================================================
   RTO CHARGE CALCULATOR
======================================================= */

const (
	defaultStateTenure       = 15
	defaultBhTenure          = 2
	defaultCompanyMultiplier = 2
)

// CalculateRegistrationCharges evaluates every component of the rule under
// the given registration type and sums them. The breakdown keeps every
// computed line, zeros included, in rule-defined order.
func CalculateRegistrationCharges(rule RegistrationRuleConfig, ctx CalculationContext, regType RegistrationType) CalculationResult {
	stateTenure := rule.StateTenure
	if stateTenure <= 0 {
		stateTenure = defaultStateTenure
	}
	bhTenure := rule.BhTenure
	if bhTenure <= 0 {
		bhTenure = defaultBhTenure
	}
	companyMultiplier := rule.CompanyMultiplier
	if companyMultiplier <= 0 {
		companyMultiplier = defaultCompanyMultiplier
	}

	res := CalculationResult{Breakdown: make([]BreakdownItem, 0, len(rule.Components))}
	for _, comp := range rule.Components {
		mult := registrationMultiplier(comp, regType, stateTenure, bhTenure, companyMultiplier)
		amount := EvaluateComponent(comp, ctx, mult)
		res.Breakdown = append(res.Breakdown, BreakdownItem{
			Label:  comp.Label,
			Amount: amount,
			Meta:   componentMeta(comp, mult),
		})
		res.TotalAmount += amount
	}
	return res
}

// registrationMultiplier picks the type-appropriate tenure multiplier:
// state registration is the 1x baseline (the 15-year tax is already the
// rule's face value), BH Series pro-rates PRO_RATA components down to
// bhTenure/stateTenure years, company registration doubles per the rule.
func registrationMultiplier(c FormulaComponent, regType RegistrationType, stateTenure, bhTenure, companyMultiplier float64) float64 {
	switch regType {
	case RegBHSeries:
		if treatmentOf(c) == VariantProRata {
			return bhTenure / stateTenure
		}
		return 1
	case RegCompany:
		return companyMultiplier
	default:
		return 1
	}
}

func componentMeta(c FormulaComponent, mult float64) string {
	switch c.Type {
	case ComponentPercentage:
		if mult != 1 {
			return fmt.Sprintf("%g%% of %s x%g", c.Percentage, basisLabel(c.Basis), mult)
		}
		return fmt.Sprintf("%g%% of %s", c.Percentage, basisLabel(c.Basis))
	case ComponentFixed:
		if mult != 1 {
			return fmt.Sprintf("Fixed x%g", mult)
		}
		return "Fixed"
	case ComponentSlab:
		return "Slab"
	default:
		return ""
	}
}

func basisLabel(b BasisType) string {
	switch b {
	case BasisIDV:
		return "IDV"
	case BasisEngineCC:
		return "Engine CC"
	default:
		return "Ex-Showroom"
	}
}
