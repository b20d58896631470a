// file: internals/features/finance/partners/model/bank_scheme_model.go
package model

import (
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   TENANT CONFIG SHAPES (decoded from tenants.tenant_config)
======================================================= */

// AnyPartner is the routing table sentinel: "whichever bank has a scheme".
const AnyPartner = "ANY"

type PayoutType string

const (
	PayoutFixed      PayoutType = "FIXED"
	PayoutPercentage PayoutType = "PERCENTAGE"
)

type RoutingStrategy string

const (
	StrategyManual         RoutingStrategy = "MANUAL"
	StrategyCheapest       RoutingStrategy = "CHEAPEST_FOR_CUSTOMER"
	StrategyMostProfitable RoutingStrategy = "MOST_PROFITABLE"
)

// SchemeApplicability restricts a scheme to certain models/brands.
// Empty lists mean universal.
type SchemeApplicability struct {
	Models []string `json:"models,omitempty"`
	Brands []string `json:"brands,omitempty"`
}

// BankScheme is one financing product inside a bank tenant's config blob.
type BankScheme struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	InterestRate  float64              `json:"interestRate"`
	TenureMonths  int                  `json:"tenureMonths,omitempty"`
	MinDownPct    float64              `json:"minDownPct,omitempty"`
	Payout        float64              `json:"payout,omitempty"`
	PayoutType    PayoutType           `json:"payoutType,omitempty"`
	IsActive      bool                 `json:"isActive"`
	IsPrimary     bool                 `json:"isPrimary,omitempty"`
	Applicability *SchemeApplicability `json:"applicability,omitempty"`
}

// DayPriorities is one routing-table row: up to three partner slots for a
// day. A slot holds a bank tenant id, AnyPartner, or "".
type DayPriorities struct {
	P1 string `json:"p1,omitempty"`
	P2 string `json:"p2,omitempty"`
	P3 string `json:"p3,omitempty"`
}

func (d DayPriorities) Slots() []string { return []string{d.P1, d.P2, d.P3} }

// FinanceRouting maps weekday names ("Sunday".."Saturday") to priorities.
type FinanceRouting map[string]DayPriorities

// BankConfig / DealerConfig mirror the relevant keys of tenant_config.
type BankConfig struct {
	Schemes []BankScheme `json:"schemes,omitempty"`
}

type DealerConfig struct {
	RoutingStrategy RoutingStrategy `json:"routingStrategy,omitempty"`
	FinanceRouting  FinanceRouting  `json:"financeRouting,omitempty"`
}

// BankPartner is a bank tenant with its decoded schemes, as consumed by the
// resolver. Built once per resolution and passed by reference — never
// mutated by the resolver.
type BankPartner struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Schemes []BankScheme `json:"schemes"`
}

// ActiveSchemes filters in list order.
func (b BankPartner) ActiveSchemes() []BankScheme {
	out := make([]BankScheme, 0, len(b.Schemes))
	for _, s := range b.Schemes {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

// AppliesTo reports whether the scheme covers the make/model. A missing
// applicability block is universal; an explicit brand list that does not
// match the make excludes the scheme.
func (s BankScheme) AppliesTo(vehicleMake, vehicleModel string) bool {
	app := s.Applicability
	if app == nil {
		return true
	}
	if containsFold(app.Models, vehicleModel) {
		return true
	}
	if len(app.Brands) > 0 {
		return containsFold(app.Brands, vehicleMake)
	}
	return true
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
