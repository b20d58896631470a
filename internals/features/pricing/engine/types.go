// file: internals/features/pricing/engine/types.go
package engine

/* =======================================================
   ENUMS (mirror the JSONB shape authored by the rule builder)
======================================================= */

type ComponentType string

const (
	ComponentPercentage ComponentType = "PERCENTAGE"
	ComponentFixed      ComponentType = "FIXED"
	ComponentSlab       ComponentType = "SLAB"
)

type BasisType string

const (
	BasisExShowroom BasisType = "EX_SHOWROOM"
	BasisIDV        BasisType = "IDV"
	BasisEngineCC   BasisType = "ENGINE_CC"
)

type SlabValueType string

const (
	SlabValueFixed      SlabValueType = "FIXED"
	SlabValuePercentage SlabValueType = "PERCENTAGE"
)

// VariantTreatment controls how a component reacts to the BH Series
// registration variant: NONE keeps the standard (15-year) amount,
// PRO_RATA scales it down to bhTenure/stateTenure.
type VariantTreatment string

const (
	VariantNone    VariantTreatment = "NONE"
	VariantProRata VariantTreatment = "PRO_RATA"
)

type RegistrationType string

const (
	RegStateIndividual RegistrationType = "STATE_INDIVIDUAL"
	RegBHSeries        RegistrationType = "BH_SERIES"
	RegCompany         RegistrationType = "COMPANY"
)

/* =======================================================
   FORMULA COMPONENTS
======================================================= */

// SlabRange is one row of a SLAB component. Max == nil means open-ended.
// Min/Max are inclusive on both ends.
type SlabRange struct {
	ID         string    `json:"id,omitempty"`
	Min        float64   `json:"min"`
	Max        *float64  `json:"max"`
	Amount     float64   `json:"amount"`
	Percentage float64   `json:"percentage"`
	SlabBasis  BasisType `json:"slabBasis,omitempty"`
}

// FormulaComponent is one charge line rule. Which of Percentage / Amount /
// Ranges is meaningful depends on Type; the evaluator ignores the rest.
type FormulaComponent struct {
	ID    string        `json:"id"`
	Type  ComponentType `json:"type"`
	Label string        `json:"label"`

	// PERCENTAGE (and SLAB in PERCENTAGE value mode): which basis to multiply.
	Basis      BasisType `json:"basis,omitempty"`
	Percentage float64   `json:"percentage,omitempty"`

	// FIXED
	Amount float64 `json:"amount,omitempty"`

	// SLAB
	Ranges        []SlabRange   `json:"ranges,omitempty"`
	SlabValueType SlabValueType `json:"slabValueType,omitempty"`
	SlabVariable  BasisType     `json:"slabVariable,omitempty"`

	VariantTreatment VariantTreatment `json:"variantTreatment,omitempty"`
}

/* =======================================================
   CONTEXTS & RESULTS
======================================================= */

// CalculationContext is the per-call input bag. Owned by the caller,
// never persisted here.
type CalculationContext struct {
	ExShowroom float64 `json:"ex_showroom"`
	EngineCC   float64 `json:"engine_cc"`
	FuelType   string  `json:"fuel_type"`

	// IDV is filled in by the insurance calculator before components run.
	IDV float64 `json:"idv,omitempty"`
}

type BreakdownItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
	Meta   string `json:"meta,omitempty"`
}

type CalculationResult struct {
	Breakdown   []BreakdownItem `json:"breakdown"`
	TotalAmount int             `json:"total_amount"`
}

/* =======================================================
   RULE CONFIGS (decoded from the JSONB rule rows)
======================================================= */

type RegistrationRuleConfig struct {
	Components        []FormulaComponent `json:"components"`
	StateTenure       float64            `json:"stateTenure,omitempty"`
	BhTenure          float64            `json:"bhTenure,omitempty"`
	CompanyMultiplier float64            `json:"companyMultiplier,omitempty"`
}

type InsuranceRuleConfig struct {
	IDVPercentage float64            `json:"idvPercentage"`
	GSTPercentage float64            `json:"gstPercentage"`
	ODComponents  []FormulaComponent `json:"odComponents"`
	TPComponents  []FormulaComponent `json:"tpComponents"`
	Addons        []FormulaComponent `json:"addons"`
}

type InsuranceCalculationContext struct {
	ExShowroom    float64  `json:"ex_showroom"`
	EngineCC      float64  `json:"engine_cc"`
	FuelType      string   `json:"fuel_type"`
	IsNewVehicle  bool     `json:"is_new_vehicle"`
	ODTenure      float64  `json:"od_tenure,omitempty"`
	TPTenure      float64  `json:"tp_tenure,omitempty"`
	NCBPercentage float64  `json:"ncb_percentage,omitempty"`
	CustomIDV     *float64 `json:"custom_idv,omitempty"`
}

type InsuranceCalculationResult struct {
	IDV            int             `json:"idv"`
	ODBreakdown    []BreakdownItem `json:"od_breakdown"`
	TPBreakdown    []BreakdownItem `json:"tp_breakdown"`
	AddonBreakdown []BreakdownItem `json:"addon_breakdown"`
	ODTotal        int             `json:"od_total"`
	TPTotal        int             `json:"tp_total"`
	AddonsTotal    int             `json:"addons_total"`
	NetPremium     int             `json:"net_premium"`
	GSTAmount      int             `json:"gst_amount"`
	TotalPremium   int             `json:"total_premium"`
}

// PricingOverride is the per-SKU admin override bag. A non-nil
// OnRoadOverride is authoritative over everything computed.
type PricingOverride struct {
	ExShowroom     *float64 `json:"exShowroom,omitempty"`
	Discount       *float64 `json:"discount,omitempty"`
	DealerOffer    *float64 `json:"dealerOffer,omitempty"`
	OnRoadOverride *float64 `json:"onRoadOverride,omitempty"`
}

type OnRoadResult struct {
	ExShowroom      float64                    `json:"ex_showroom"`
	RTOState        CalculationResult          `json:"rto_state"`
	RTOBharat       CalculationResult          `json:"rto_bharat"`
	RTOCompany      CalculationResult          `json:"rto_company"`
	Insurance       InsuranceCalculationResult `json:"insurance"`
	CalculatedTotal int                        `json:"calculated_total"`
	OnRoadTotal     int                        `json:"on_road_total"`
	AppliedOverride *PricingOverride           `json:"applied_override,omitempty"`
}
