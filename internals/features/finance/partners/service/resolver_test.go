// file: internals/features/finance/partners/service/resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "vahanhub_backend/internals/features/finance/partners/model"
)

var (
	hdfcID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idfcID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	bajajID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	aMonday  = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) // Monday
	aTuesday = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
)

func testBanks() []model.BankPartner {
	return []model.BankPartner{
		{
			ID:   hdfcID,
			Name: "HDFC Bank",
			Schemes: []model.BankScheme{
				{ID: "hdfc-std", Name: "Standard 2W", InterestRate: 11.5, IsActive: true, IsPrimary: true},
				{
					ID: "hdfc-jupiter", Name: "Jupiter Special", InterestRate: 9.9, IsActive: true,
					Applicability: &model.SchemeApplicability{Models: []string{"Jupiter"}},
				},
			},
		},
		{
			ID:   idfcID,
			Name: "IDFC First",
			Schemes: []model.BankScheme{
				{
					ID: "idfc-tvs", Name: "TVS Tie-up", InterestRate: 10.5, IsActive: true,
					Payout: 2.5, PayoutType: model.PayoutPercentage,
					Applicability: &model.SchemeApplicability{Brands: []string{"TVS"}},
				},
			},
		},
		{
			ID:   bajajID,
			Name: "Bajaj Finserv",
			Schemes: []model.BankScheme{
				{ID: "bajaj-flexi", Name: "Flexi EMI", InterestRate: 13.0, IsActive: true, Payout: 1800, PayoutType: model.PayoutFixed},
				{ID: "bajaj-old", Name: "Retired", InterestRate: 8.0, IsActive: false},
			},
		},
	}
}

func TestBestSchemeTieBreakOrder(t *testing.T) {
	banks := testBanks()

	// model-targeted beats primary even at a worse list position
	s := findBestSchemeForBank(banks[0], "TVS", "Jupiter")
	require.NotNil(t, s)
	assert.Equal(t, "hdfc-jupiter", s.ID)

	// jupiter match is case-insensitive
	s = findBestSchemeForBank(banks[0], "tvs", "JUPITER")
	require.NotNil(t, s)
	assert.Equal(t, "hdfc-jupiter", s.ID)

	// brand-targeted when no model match
	s = findBestSchemeForBank(banks[1], "TVS", "Apache")
	require.NotNil(t, s)
	assert.Equal(t, "idfc-tvs", s.ID)

	// primary when neither model nor brand targets match
	s = findBestSchemeForBank(banks[0], "Honda", "Activa")
	require.NotNil(t, s)
	assert.Equal(t, "hdfc-std", s.ID)

	// first active as last resort; inactive schemes never surface
	s = findBestSchemeForBank(banks[2], "Honda", "Activa")
	require.NotNil(t, s)
	assert.Equal(t, "bajaj-flexi", s.ID)
}

func TestBestSchemeNoActiveSchemes(t *testing.T) {
	bank := model.BankPartner{ID: uuid.New(), Name: "Dormant", Schemes: []model.BankScheme{
		{ID: "x", IsActive: false},
	}}
	assert.Nil(t, findBestSchemeForBank(bank, "TVS", "Jupiter"))
}

func TestResolveFallbackWhenNoRoutingConfigured(t *testing.T) {
	res := ResolveScheme(testBanks(), nil, aMonday, "TVS", "Jupiter", nil)
	require.NotNil(t, res)
	assert.Equal(t, LogicFallbackNoRouting, res.Logic)
	assert.Equal(t, hdfcID, res.Bank.ID)
	assert.Equal(t, "hdfc-jupiter", res.Scheme.ID)
}

func TestResolveFallbackWhenTodayHasNoEntry(t *testing.T) {
	routing := model.FinanceRouting{
		"Tuesday": {P1: idfcID.String()},
	}
	res := ResolveScheme(testBanks(), routing, aMonday, "TVS", "Jupiter", nil)
	require.NotNil(t, res)
	assert.Equal(t, LogicFallbackNoRouting, res.Logic)
}

func TestResolveDayRoutingWalksPriorities(t *testing.T) {
	routing := model.FinanceRouting{
		"Monday": {P1: uuid.New().String(), P2: idfcID.String(), P3: hdfcID.String()},
	}
	// p1 names an unknown bank, p2 resolves
	res := ResolveScheme(testBanks(), routing, aMonday, "TVS", "Apache", nil)
	require.NotNil(t, res)
	assert.Equal(t, "DAY_ROUTING_MONDAY", res.Logic)
	assert.Equal(t, idfcID, res.Bank.ID)
}

func TestResolveDayRoutingAnySentinel(t *testing.T) {
	routing := model.FinanceRouting{
		"Tuesday": {P1: model.AnyPartner},
	}
	res := ResolveScheme(testBanks(), routing, aTuesday, "Honda", "Activa", nil)
	require.NotNil(t, res)
	assert.Equal(t, "DAY_ROUTING_TUESDAY", res.Logic)
	assert.Equal(t, hdfcID, res.Bank.ID)
}

func TestResolveDayRoutingSkipsEmptySlots(t *testing.T) {
	routing := model.FinanceRouting{
		"Monday": {P2: bajajID.String()},
	}
	res := ResolveScheme(testBanks(), routing, aMonday, "Honda", "Activa", nil)
	require.NotNil(t, res)
	assert.Equal(t, bajajID, res.Bank.ID)
}

func TestResolvePreferredFinancierWinsOverRouting(t *testing.T) {
	routing := model.FinanceRouting{
		"Monday": {P1: hdfcID.String()},
	}
	res := ResolveScheme(testBanks(), routing, aMonday, "TVS", "Apache", &idfcID)
	require.NotNil(t, res)
	assert.Equal(t, LogicPreferredFinancier, res.Logic)
	assert.Equal(t, idfcID, res.Bank.ID)
}

func TestResolvePreferredFinancierWithoutSchemesCascades(t *testing.T) {
	dormantID := uuid.New()
	banks := append(testBanks(), model.BankPartner{ID: dormantID, Name: "Dormant"})
	res := ResolveScheme(banks, nil, aMonday, "TVS", "Jupiter", &dormantID)
	require.NotNil(t, res)
	assert.Equal(t, LogicFallbackNoRouting, res.Logic)
	assert.NotEqual(t, dormantID, res.Bank.ID)
}

func TestResolveNoBanksReturnsNil(t *testing.T) {
	assert.Nil(t, ResolveScheme(nil, nil, aMonday, "TVS", "Jupiter", nil))
}

func TestResolveNoMatchAcrossCandidatesReturnsNil(t *testing.T) {
	banks := []model.BankPartner{{ID: uuid.New(), Name: "Empty"}}
	routing := model.FinanceRouting{"Monday": {P1: model.AnyPartner, P2: model.AnyPartner}}
	assert.Nil(t, ResolveScheme(banks, routing, aMonday, "TVS", "Jupiter", nil))
}

func TestResolveRouteCheapestStrategy(t *testing.T) {
	cfg := model.DealerConfig{RoutingStrategy: model.StrategyCheapest}
	res := ResolveRoute(testBanks(), cfg, aMonday, "TVS", "Jupiter", nil)
	require.NotNil(t, res)
	assert.Equal(t, LogicCheapest, res.Logic)
	assert.Equal(t, "hdfc-jupiter", res.Scheme.ID) // 9.9% beats everything
}

func TestResolveRouteMostProfitableStrategy(t *testing.T) {
	cfg := model.DealerConfig{RoutingStrategy: model.StrategyMostProfitable}
	res := ResolveRoute(testBanks(), cfg, aMonday, "TVS", "Jupiter", nil)
	require.NotNil(t, res)
	assert.Equal(t, LogicMostProfitable, res.Logic)
	// 2.5% payout normalises to 2500 > 1800 fixed
	assert.Equal(t, "idfc-tvs", res.Scheme.ID)
}

func TestResolveRouteManualDefaultsToCascade(t *testing.T) {
	cfg := model.DealerConfig{
		RoutingStrategy: model.StrategyManual,
		FinanceRouting:  model.FinanceRouting{"Monday": {P1: bajajID.String()}},
	}
	res := ResolveRoute(testBanks(), cfg, aMonday, "Honda", "Activa", nil)
	require.NotNil(t, res)
	assert.Equal(t, "DAY_ROUTING_MONDAY", res.Logic)
	assert.Equal(t, bajajID, res.Bank.ID)
}
