// file: internals/features/finance/partners/service/resolver.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "vahanhub_backend/internals/features/finance/partners/model"
)

/* =======================================================
   FINANCE SCHEME RESOLVER (pure — loaders live in loader.go)
======================================================= */

// Logic codes carried to the caller so the UI can explain why a partner won.
const (
	LogicPreferredFinancier = "PREFERRED_FINANCIER"
	LogicFallbackNoRouting  = "FALLBACK_NO_ROUTING"
	LogicDayRoutingPrefix   = "DAY_ROUTING_"
	LogicCheapest           = "CUSTOMER_BEST_EMI"
	LogicMostProfitable     = "DEALER_BEST_PAYOUT"
)

type Resolution struct {
	Bank   model.BankPartner `json:"bank"`
	Scheme model.BankScheme  `json:"scheme"`
	Logic  string            `json:"logic"`
}

// ResolveScheme runs the priority cascade over already-loaded partner data.
// Absence of a match is a nil result, not an error.
//
//  1. Lead's preferred financier, if it has an applicable active scheme.
//  2. No routing table / no entry for today → first active bank fallback.
//  3. Today's p1→p2→p3 slots; ANY means "first bank with an active scheme".
//  4. Nothing matched → nil.
func ResolveScheme(
	banks []model.BankPartner,
	routing model.FinanceRouting,
	now time.Time,
	vehicleMake, vehicleModel string,
	preferredFinancierID *uuid.UUID,
) *Resolution {
	if len(banks) == 0 {
		return nil
	}

	// P0: preferred financier from the lead
	if preferredFinancierID != nil {
		if bank := findBank(banks, *preferredFinancierID); bank != nil {
			if scheme := findBestSchemeForBank(*bank, vehicleMake, vehicleModel); scheme != nil {
				return &Resolution{Bank: *bank, Scheme: *scheme, Logic: LogicPreferredFinancier}
			}
		}
	}

	dayName := now.Weekday().String()
	day, ok := routing[dayName]
	if routing == nil || !ok {
		return fallbackFirstScheme(banks, vehicleMake, vehicleModel, LogicFallbackNoRouting)
	}

	logic := LogicDayRoutingPrefix + strings.ToUpper(dayName)
	for _, slot := range day.Slots() {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		if slot == model.AnyPartner {
			if res := fallbackFirstScheme(banks, vehicleMake, vehicleModel, logic); res != nil {
				return res
			}
			continue
		}
		id, err := uuid.Parse(slot)
		if err != nil {
			continue
		}
		bank := findBank(banks, id)
		if bank == nil {
			continue
		}
		if scheme := findBestSchemeForBank(*bank, vehicleMake, vehicleModel); scheme != nil {
			return &Resolution{Bank: *bank, Scheme: *scheme, Logic: logic}
		}
	}
	return nil
}

// ResolveRoute applies the dealer's configured strategy. MANUAL is the
// day-wise cascade above; the other two rank every active scheme globally.
func ResolveRoute(
	banks []model.BankPartner,
	cfg model.DealerConfig,
	now time.Time,
	vehicleMake, vehicleModel string,
	preferredFinancierID *uuid.UUID,
) *Resolution {
	switch cfg.RoutingStrategy {
	case model.StrategyCheapest:
		return resolveCheapest(banks, vehicleMake, vehicleModel)
	case model.StrategyMostProfitable:
		return resolveMostProfitable(banks, vehicleMake, vehicleModel)
	default:
		return ResolveScheme(banks, cfg.FinanceRouting, now, vehicleMake, vehicleModel, preferredFinancierID)
	}
}

/* =======================================================
   SUB-ALGORITHMS
======================================================= */

// findBestSchemeForBank tie-break order: model-targeted, brand-targeted,
// primary, first active. Matching is case-insensitive and exact.
func findBestSchemeForBank(bank model.BankPartner, vehicleMake, vehicleModel string) *model.BankScheme {
	active := bank.ActiveSchemes()

	for i := range active {
		app := active[i].Applicability
		if app != nil && schemeListMatches(app.Models, vehicleModel) {
			return &active[i]
		}
	}
	for i := range active {
		app := active[i].Applicability
		if app != nil && schemeListMatches(app.Brands, vehicleMake) {
			return &active[i]
		}
	}
	for i := range active {
		if active[i].IsPrimary {
			return &active[i]
		}
	}
	if len(active) > 0 {
		return &active[0]
	}
	return nil
}

func schemeListMatches(list []string, want string) bool {
	if len(list) == 0 {
		return false
	}
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func fallbackFirstScheme(banks []model.BankPartner, vehicleMake, vehicleModel string, logic string) *Resolution {
	for _, bank := range banks {
		if scheme := findBestSchemeForBank(bank, vehicleMake, vehicleModel); scheme != nil {
			return &Resolution{Bank: bank, Scheme: *scheme, Logic: logic}
		}
	}
	return nil
}

func resolveCheapest(banks []model.BankPartner, vehicleMake, vehicleModel string) *Resolution {
	var best *Resolution
	bestRate := 0.0
	for _, bank := range banks {
		for _, s := range bank.ActiveSchemes() {
			if !s.AppliesTo(vehicleMake, vehicleModel) {
				continue
			}
			if best == nil || s.InterestRate < bestRate {
				scheme := s
				best = &Resolution{Bank: bank, Scheme: scheme, Logic: LogicCheapest}
				bestRate = s.InterestRate
			}
		}
	}
	if best == nil {
		return fallbackFirstScheme(banks, vehicleMake, vehicleModel, LogicFallbackNoRouting)
	}
	return best
}

// resolveMostProfitable ranks by dealer payout. Percentage payouts are
// normalised against a 1L baseline loan to compare with fixed amounts.
func resolveMostProfitable(banks []model.BankPartner, vehicleMake, vehicleModel string) *Resolution {
	var best *Resolution
	bestScore := 0.0
	for _, bank := range banks {
		for _, s := range bank.ActiveSchemes() {
			if !s.AppliesTo(vehicleMake, vehicleModel) {
				continue
			}
			score := payoutScore(s)
			if best == nil || score > bestScore {
				scheme := s
				best = &Resolution{Bank: bank, Scheme: scheme, Logic: LogicMostProfitable}
				bestScore = score
			}
		}
	}
	if best == nil {
		return fallbackFirstScheme(banks, vehicleMake, vehicleModel, LogicFallbackNoRouting)
	}
	return best
}

func payoutScore(s model.BankScheme) float64 {
	if s.PayoutType == model.PayoutPercentage {
		return s.Payout * 1000
	}
	return s.Payout
}

func findBank(banks []model.BankPartner, id uuid.UUID) *model.BankPartner {
	for i := range banks {
		if banks[i].ID == id {
			return &banks[i]
		}
	}
	return nil
}
