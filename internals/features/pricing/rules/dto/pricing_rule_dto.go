// file: internals/features/pricing/rules/dto/pricing_rule_dto.go
package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vahanhub_backend/internals/features/pricing/engine"
	"vahanhub_backend/internals/features/pricing/rules/model"
)

/* =======================================================
   REGISTRATION RULES — DTO
======================================================= */

type RegistrationRuleCreateDTO struct {
	RegistrationRuleStateCode string                        `json:"registration_rule_state_code" validate:"required,max=8"`
	RegistrationRuleName      string                        `json:"registration_rule_name" validate:"required,max=120"`
	RegistrationRuleConfig    engine.RegistrationRuleConfig `json:"registration_rule_config" validate:"required"`

	RegistrationRuleIsActive      *bool      `json:"registration_rule_is_active,omitempty"`
	RegistrationRuleEffectiveFrom *time.Time `json:"registration_rule_effective_from,omitempty"`
	RegistrationRuleEffectiveTo   *time.Time `json:"registration_rule_effective_to,omitempty"`
}

type RegistrationRuleUpdateDTO struct {
	RegistrationRuleStateCode *string                        `json:"registration_rule_state_code,omitempty" validate:"omitempty,max=8"`
	RegistrationRuleName      *string                        `json:"registration_rule_name,omitempty" validate:"omitempty,max=120"`
	RegistrationRuleConfig    *engine.RegistrationRuleConfig `json:"registration_rule_config,omitempty"`

	RegistrationRuleIsActive      *bool      `json:"registration_rule_is_active,omitempty"`
	RegistrationRuleEffectiveFrom *time.Time `json:"registration_rule_effective_from,omitempty"`
	RegistrationRuleEffectiveTo   *time.Time `json:"registration_rule_effective_to,omitempty"`
}

type RegistrationRuleResponse struct {
	RegistrationRuleID        uuid.UUID  `json:"registration_rule_id"`
	RegistrationRuleTenantID  *uuid.UUID `json:"registration_rule_tenant_id,omitempty"`
	RegistrationRuleStateCode string     `json:"registration_rule_state_code"`
	RegistrationRuleName      string     `json:"registration_rule_name"`

	RegistrationRuleConfig engine.RegistrationRuleConfig `json:"registration_rule_config"`

	RegistrationRuleIsActive      bool       `json:"registration_rule_is_active"`
	RegistrationRuleVersion       int        `json:"registration_rule_version"`
	RegistrationRuleEffectiveFrom *time.Time `json:"registration_rule_effective_from,omitempty"`
	RegistrationRuleEffectiveTo   *time.Time `json:"registration_rule_effective_to,omitempty"`

	RegistrationRuleCreatedAt time.Time `json:"registration_rule_created_at"`
	RegistrationRuleUpdatedAt time.Time `json:"registration_rule_updated_at"`
}

/* =======================================================
   INSURANCE RULES — DTO
======================================================= */

type InsuranceRuleCreateDTO struct {
	InsuranceRuleStateCode string                     `json:"insurance_rule_state_code" validate:"required,max=8"`
	InsuranceRuleName      string                     `json:"insurance_rule_name" validate:"required,max=120"`
	InsuranceRuleConfig    engine.InsuranceRuleConfig `json:"insurance_rule_config" validate:"required"`

	InsuranceRuleIsActive      *bool      `json:"insurance_rule_is_active,omitempty"`
	InsuranceRuleEffectiveFrom *time.Time `json:"insurance_rule_effective_from,omitempty"`
	InsuranceRuleEffectiveTo   *time.Time `json:"insurance_rule_effective_to,omitempty"`
}

type InsuranceRuleUpdateDTO struct {
	InsuranceRuleStateCode *string                     `json:"insurance_rule_state_code,omitempty" validate:"omitempty,max=8"`
	InsuranceRuleName      *string                     `json:"insurance_rule_name,omitempty" validate:"omitempty,max=120"`
	InsuranceRuleConfig    *engine.InsuranceRuleConfig `json:"insurance_rule_config,omitempty"`

	InsuranceRuleIsActive      *bool      `json:"insurance_rule_is_active,omitempty"`
	InsuranceRuleEffectiveFrom *time.Time `json:"insurance_rule_effective_from,omitempty"`
	InsuranceRuleEffectiveTo   *time.Time `json:"insurance_rule_effective_to,omitempty"`
}

type InsuranceRuleResponse struct {
	InsuranceRuleID        uuid.UUID  `json:"insurance_rule_id"`
	InsuranceRuleTenantID  *uuid.UUID `json:"insurance_rule_tenant_id,omitempty"`
	InsuranceRuleStateCode string     `json:"insurance_rule_state_code"`
	InsuranceRuleName      string     `json:"insurance_rule_name"`

	InsuranceRuleConfig engine.InsuranceRuleConfig `json:"insurance_rule_config"`

	InsuranceRuleIsActive      bool       `json:"insurance_rule_is_active"`
	InsuranceRuleVersion       int        `json:"insurance_rule_version"`
	InsuranceRuleEffectiveFrom *time.Time `json:"insurance_rule_effective_from,omitempty"`
	InsuranceRuleEffectiveTo   *time.Time `json:"insurance_rule_effective_to,omitempty"`

	InsuranceRuleCreatedAt time.Time `json:"insurance_rule_created_at"`
	InsuranceRuleUpdatedAt time.Time `json:"insurance_rule_updated_at"`
}

/* =======================================================
   PREVIEW — DTO (run the engine without persisting)
======================================================= */

type RegistrationPreviewRequest struct {
	RegistrationRuleConfig engine.RegistrationRuleConfig `json:"registration_rule_config" validate:"required"`
	ExShowroom             float64                       `json:"exShowroom" validate:"required,min=0"`
	EngineCC               float64                       `json:"engineCc"`
	FuelType               string                        `json:"fuelType,omitempty"`
}

type RegistrationPreviewResponse struct {
	StateIndividual engine.CalculationResult `json:"stateIndividual"`
	BhSeries        engine.CalculationResult `json:"bhSeries"`
	Company         engine.CalculationResult `json:"company"`
}

type InsurancePreviewRequest struct {
	InsuranceRuleConfig engine.InsuranceRuleConfig `json:"insurance_rule_config" validate:"required"`
	ExShowroom          float64                    `json:"exShowroom" validate:"required,min=0"`
	EngineCC            float64                    `json:"engineCc"`
	CustomIDV           *float64                   `json:"customIdv,omitempty"`
	ODTenure            *int                       `json:"odTenure,omitempty"`
	TPTenure            *int                       `json:"tpTenure,omitempty"`
	IsNewVehicle        bool                       `json:"isNewVehicle"`
	NCBPercentage       *float64                   `json:"ncbPercentage,omitempty"`
}

/* =======================================================
   MAPPERS — Model <-> DTO
======================================================= */

func decodeRegistrationConfig(raw datatypes.JSON) engine.RegistrationRuleConfig {
	var cfg engine.RegistrationRuleConfig
	_ = sonic.Unmarshal(raw, &cfg)
	return cfg
}

func decodeInsuranceConfig(raw datatypes.JSON) engine.InsuranceRuleConfig {
	var cfg engine.InsuranceRuleConfig
	_ = sonic.Unmarshal(raw, &cfg)
	return cfg
}

func encodeConfig(v any) datatypes.JSON {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

func ToRegistrationRuleResponse(m model.RegistrationRule) RegistrationRuleResponse {
	return RegistrationRuleResponse{
		RegistrationRuleID:            m.RegistrationRuleID,
		RegistrationRuleTenantID:      m.RegistrationRuleTenantID,
		RegistrationRuleStateCode:     m.RegistrationRuleStateCode,
		RegistrationRuleName:          m.RegistrationRuleName,
		RegistrationRuleConfig:        decodeRegistrationConfig(m.RegistrationRuleConfig),
		RegistrationRuleIsActive:      m.RegistrationRuleIsActive,
		RegistrationRuleVersion:       m.RegistrationRuleVersion,
		RegistrationRuleEffectiveFrom: m.RegistrationRuleEffectiveFrom,
		RegistrationRuleEffectiveTo:   m.RegistrationRuleEffectiveTo,
		RegistrationRuleCreatedAt:     m.RegistrationRuleCreatedAt,
		RegistrationRuleUpdatedAt:     m.RegistrationRuleUpdatedAt,
	}
}

func ToRegistrationRuleResponses(list []model.RegistrationRule) []RegistrationRuleResponse {
	out := make([]RegistrationRuleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToRegistrationRuleResponse(v))
	}
	return out
}

func RegistrationRuleCreateDTOToModel(d RegistrationRuleCreateDTO, tenantID *uuid.UUID) model.RegistrationRule {
	m := model.RegistrationRule{
		RegistrationRuleTenantID:      tenantID,
		RegistrationRuleStateCode:     d.RegistrationRuleStateCode,
		RegistrationRuleName:          d.RegistrationRuleName,
		RegistrationRuleConfig:        encodeConfig(d.RegistrationRuleConfig),
		RegistrationRuleIsActive:      true,
		RegistrationRuleEffectiveFrom: d.RegistrationRuleEffectiveFrom,
		RegistrationRuleEffectiveTo:   d.RegistrationRuleEffectiveTo,
	}
	if d.RegistrationRuleIsActive != nil {
		m.RegistrationRuleIsActive = *d.RegistrationRuleIsActive
	}
	return m
}

// ApplyRegistrationRuleUpdate applies the partial update and bumps the
// version whenever the config itself changes.
func ApplyRegistrationRuleUpdate(m *model.RegistrationRule, d RegistrationRuleUpdateDTO) {
	if d.RegistrationRuleStateCode != nil {
		m.RegistrationRuleStateCode = *d.RegistrationRuleStateCode
	}
	if d.RegistrationRuleName != nil {
		m.RegistrationRuleName = *d.RegistrationRuleName
	}
	if d.RegistrationRuleConfig != nil {
		m.RegistrationRuleConfig = encodeConfig(*d.RegistrationRuleConfig)
		m.RegistrationRuleVersion++
	}
	if d.RegistrationRuleIsActive != nil {
		m.RegistrationRuleIsActive = *d.RegistrationRuleIsActive
	}
	if d.RegistrationRuleEffectiveFrom != nil {
		m.RegistrationRuleEffectiveFrom = d.RegistrationRuleEffectiveFrom
	}
	if d.RegistrationRuleEffectiveTo != nil {
		m.RegistrationRuleEffectiveTo = d.RegistrationRuleEffectiveTo
	}
}

func ToInsuranceRuleResponse(m model.InsuranceRule) InsuranceRuleResponse {
	return InsuranceRuleResponse{
		InsuranceRuleID:            m.InsuranceRuleID,
		InsuranceRuleTenantID:      m.InsuranceRuleTenantID,
		InsuranceRuleStateCode:     m.InsuranceRuleStateCode,
		InsuranceRuleName:          m.InsuranceRuleName,
		InsuranceRuleConfig:        decodeInsuranceConfig(m.InsuranceRuleConfig),
		InsuranceRuleIsActive:      m.InsuranceRuleIsActive,
		InsuranceRuleVersion:       m.InsuranceRuleVersion,
		InsuranceRuleEffectiveFrom: m.InsuranceRuleEffectiveFrom,
		InsuranceRuleEffectiveTo:   m.InsuranceRuleEffectiveTo,
		InsuranceRuleCreatedAt:     m.InsuranceRuleCreatedAt,
		InsuranceRuleUpdatedAt:     m.InsuranceRuleUpdatedAt,
	}
}

func ToInsuranceRuleResponses(list []model.InsuranceRule) []InsuranceRuleResponse {
	out := make([]InsuranceRuleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInsuranceRuleResponse(v))
	}
	return out
}

func InsuranceRuleCreateDTOToModel(d InsuranceRuleCreateDTO, tenantID *uuid.UUID) model.InsuranceRule {
	m := model.InsuranceRule{
		InsuranceRuleTenantID:      tenantID,
		InsuranceRuleStateCode:     d.InsuranceRuleStateCode,
		InsuranceRuleName:          d.InsuranceRuleName,
		InsuranceRuleConfig:        encodeConfig(d.InsuranceRuleConfig),
		InsuranceRuleIsActive:      true,
		InsuranceRuleEffectiveFrom: d.InsuranceRuleEffectiveFrom,
		InsuranceRuleEffectiveTo:   d.InsuranceRuleEffectiveTo,
	}
	if d.InsuranceRuleIsActive != nil {
		m.InsuranceRuleIsActive = *d.InsuranceRuleIsActive
	}
	return m
}

func ApplyInsuranceRuleUpdate(m *model.InsuranceRule, d InsuranceRuleUpdateDTO) {
	if d.InsuranceRuleStateCode != nil {
		m.InsuranceRuleStateCode = *d.InsuranceRuleStateCode
	}
	if d.InsuranceRuleName != nil {
		m.InsuranceRuleName = *d.InsuranceRuleName
	}
	if d.InsuranceRuleConfig != nil {
		m.InsuranceRuleConfig = encodeConfig(*d.InsuranceRuleConfig)
		m.InsuranceRuleVersion++
	}
	if d.InsuranceRuleIsActive != nil {
		m.InsuranceRuleIsActive = *d.InsuranceRuleIsActive
	}
	if d.InsuranceRuleEffectiveFrom != nil {
		m.InsuranceRuleEffectiveFrom = d.InsuranceRuleEffectiveFrom
	}
	if d.InsuranceRuleEffectiveTo != nil {
		m.InsuranceRuleEffectiveTo = d.InsuranceRuleEffectiveTo
	}
}
