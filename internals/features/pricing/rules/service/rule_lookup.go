// file: internals/features/pricing/rules/service/rule_lookup.go
package service

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/pricing/engine"
	"vahanhub_backend/internals/features/pricing/rules/model"
)

var ErrNoRuleForState = errors.New("no active rule for state")

/* =======================================================
   Rule lookup with tenant → platform cascade
======================================================= */

// FindRegistrationRule resolves the active registration rule for a
// dealer and state. Dealer-owned rules win; a platform-level rule
// (NULL tenant) is the fallback.
func FindRegistrationRule(db *gorm.DB, tenantID uuid.UUID, stateCode string, at time.Time) (*model.RegistrationRule, error) {
	var m model.RegistrationRule
	err := db.
		Where("registration_rule_state_code = ?", stateCode).
		Where("registration_rule_is_active = TRUE").
		Where("registration_rule_tenant_id = ? OR registration_rule_tenant_id IS NULL", tenantID).
		Where("(registration_rule_effective_from IS NULL OR registration_rule_effective_from <= ?)", at).
		Where("(registration_rule_effective_to IS NULL OR registration_rule_effective_to >= ?)", at).
		Order("registration_rule_tenant_id ASC NULLS LAST, registration_rule_version DESC, registration_rule_created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRuleForState
		}
		return nil, err
	}
	return &m, nil
}

func FindInsuranceRule(db *gorm.DB, tenantID uuid.UUID, stateCode string, at time.Time) (*model.InsuranceRule, error) {
	var m model.InsuranceRule
	err := db.
		Where("insurance_rule_state_code = ?", stateCode).
		Where("insurance_rule_is_active = TRUE").
		Where("insurance_rule_tenant_id = ? OR insurance_rule_tenant_id IS NULL", tenantID).
		Where("(insurance_rule_effective_from IS NULL OR insurance_rule_effective_from <= ?)", at).
		Where("(insurance_rule_effective_to IS NULL OR insurance_rule_effective_to >= ?)", at).
		Order("insurance_rule_tenant_id ASC NULLS LAST, insurance_rule_version DESC, insurance_rule_created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRuleForState
		}
		return nil, err
	}
	return &m, nil
}

/* =======================================================
   Config decode + on-road composition
======================================================= */

func DecodeRegistrationConfig(m *model.RegistrationRule) engine.RegistrationRuleConfig {
	var cfg engine.RegistrationRuleConfig
	if m != nil {
		_ = sonic.Unmarshal(m.RegistrationRuleConfig, &cfg)
	}
	return cfg
}

func DecodeInsuranceConfig(m *model.InsuranceRule) engine.InsuranceRuleConfig {
	var cfg engine.InsuranceRuleConfig
	if m != nil {
		_ = sonic.Unmarshal(m.InsuranceRuleConfig, &cfg)
	}
	return cfg
}

// ComputeOnRoad loads both rules for the state and runs the full
// on-road composition. Rules that are missing degrade to an empty
// config, the engine then prices those parts at zero.
func ComputeOnRoad(db *gorm.DB, tenantID uuid.UUID, stateCode string, exShowroom float64, engineCC string, override *engine.PricingOverride) (engine.OnRoadResult, error) {
	now := time.Now()

	regRule, err := FindRegistrationRule(db, tenantID, stateCode, now)
	if err != nil && !errors.Is(err, ErrNoRuleForState) {
		return engine.OnRoadResult{}, err
	}
	insRule, err := FindInsuranceRule(db, tenantID, stateCode, now)
	if err != nil && !errors.Is(err, ErrNoRuleForState) {
		return engine.OnRoadResult{}, err
	}

	return engine.CalculateOnRoad(
		exShowroom,
		engineCC,
		DecodeRegistrationConfig(regRule),
		DecodeInsuranceConfig(insRule),
		override,
	), nil
}
