// file: internals/features/pricing/rules/model/pricing_rule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   REGISTRATION RULES — one config per tenant+state
======================================================= */

type RegistrationRule struct {
	RegistrationRuleID uuid.UUID `gorm:"column:registration_rule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_rule_id"`

	// NULL tenant = platform-level default, used when a dealer has no
	// rule of its own for the state.
	RegistrationRuleTenantID  *uuid.UUID `gorm:"column:registration_rule_tenant_id;type:uuid;index" json:"registration_rule_tenant_id,omitempty"`
	RegistrationRuleStateCode string     `gorm:"column:registration_rule_state_code;type:varchar(8);not null;index" json:"registration_rule_state_code"`

	RegistrationRuleName string `gorm:"column:registration_rule_name;type:varchar(120);not null" json:"registration_rule_name"`

	// Engine config: components + tenures + company multiplier, see
	// pricing/engine.RegistrationRuleConfig.
	RegistrationRuleConfig datatypes.JSON `gorm:"column:registration_rule_config;type:jsonb;not null;default:'{}'" json:"registration_rule_config"`

	RegistrationRuleIsActive bool `gorm:"column:registration_rule_is_active;not null;default:true" json:"registration_rule_is_active"`
	RegistrationRuleVersion  int  `gorm:"column:registration_rule_version;not null;default:1" json:"registration_rule_version"`

	RegistrationRuleEffectiveFrom *time.Time `gorm:"column:registration_rule_effective_from" json:"registration_rule_effective_from,omitempty"`
	RegistrationRuleEffectiveTo   *time.Time `gorm:"column:registration_rule_effective_to" json:"registration_rule_effective_to,omitempty"`

	RegistrationRuleCreatedAt time.Time      `gorm:"column:registration_rule_created_at;autoCreateTime" json:"registration_rule_created_at"`
	RegistrationRuleUpdatedAt time.Time      `gorm:"column:registration_rule_updated_at;autoUpdateTime" json:"registration_rule_updated_at"`
	RegistrationRuleDeletedAt gorm.DeletedAt `gorm:"column:registration_rule_deleted_at;index" json:"-"`
}

func (RegistrationRule) TableName() string { return "registration_rules" }

/* =======================================================
   INSURANCE RULES
======================================================= */

type InsuranceRule struct {
	InsuranceRuleID uuid.UUID `gorm:"column:insurance_rule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"insurance_rule_id"`

	InsuranceRuleTenantID  *uuid.UUID `gorm:"column:insurance_rule_tenant_id;type:uuid;index" json:"insurance_rule_tenant_id,omitempty"`
	InsuranceRuleStateCode string     `gorm:"column:insurance_rule_state_code;type:varchar(8);not null;index" json:"insurance_rule_state_code"`

	InsuranceRuleName string `gorm:"column:insurance_rule_name;type:varchar(120);not null" json:"insurance_rule_name"`

	// Engine config: idv/gst percentages + od/tp/addon component lists,
	// see pricing/engine.InsuranceRuleConfig.
	InsuranceRuleConfig datatypes.JSON `gorm:"column:insurance_rule_config;type:jsonb;not null;default:'{}'" json:"insurance_rule_config"`

	InsuranceRuleIsActive bool `gorm:"column:insurance_rule_is_active;not null;default:true" json:"insurance_rule_is_active"`
	InsuranceRuleVersion  int  `gorm:"column:insurance_rule_version;not null;default:1" json:"insurance_rule_version"`

	InsuranceRuleEffectiveFrom *time.Time `gorm:"column:insurance_rule_effective_from" json:"insurance_rule_effective_from,omitempty"`
	InsuranceRuleEffectiveTo   *time.Time `gorm:"column:insurance_rule_effective_to" json:"insurance_rule_effective_to,omitempty"`

	InsuranceRuleCreatedAt time.Time      `gorm:"column:insurance_rule_created_at;autoCreateTime" json:"insurance_rule_created_at"`
	InsuranceRuleUpdatedAt time.Time      `gorm:"column:insurance_rule_updated_at;autoUpdateTime" json:"insurance_rule_updated_at"`
	InsuranceRuleDeletedAt gorm.DeletedAt `gorm:"column:insurance_rule_deleted_at;index" json:"-"`
}

func (InsuranceRule) TableName() string { return "insurance_rules" }
