// file: internals/features/finance/partners/service/loader.go
package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "vahanhub_backend/internals/features/finance/partners/model"
	tenantModel "vahanhub_backend/internals/features/tenants/model"
)

/* =======================================================
   DATA LOADERS (tenant config JSONB → typed structs)
   Re-fetched per resolution; no cache.
======================================================= */

// LoadBankPartners pulls every active BANK tenant and decodes its scheme
// list. A bank whose config blob fails to decode contributes no schemes
// instead of failing the whole resolution.
func LoadBankPartners(db *gorm.DB) ([]model.BankPartner, error) {
	var rows []tenantModel.TenantModel
	if err := db.
		Where("tenant_type = ? AND tenant_status = ?", tenantModel.TenantTypeBank, tenantModel.TenantStatusActive).
		Order("tenant_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	banks := make([]model.BankPartner, 0, len(rows))
	for _, row := range rows {
		var cfg model.BankConfig
		_ = json.Unmarshal(row.TenantConfig, &cfg)
		banks = append(banks, model.BankPartner{
			ID:      row.TenantID,
			Name:    row.TenantName,
			Schemes: cfg.Schemes,
		})
	}
	return banks, nil
}

// LoadDealerConfig decodes a dealer tenant's routing strategy + table.
func LoadDealerConfig(db *gorm.DB, dealerID uuid.UUID) (model.DealerConfig, error) {
	var row tenantModel.TenantModel
	if err := db.
		Where("tenant_id = ? AND tenant_type = ?", dealerID, tenantModel.TenantTypeDealer).
		First(&row).Error; err != nil {
		return model.DealerConfig{}, err
	}

	var cfg model.DealerConfig
	_ = json.Unmarshal(row.TenantConfig, &cfg)
	return cfg, nil
}

// leadFinancierRow avoids dragging the full CRM model in for one column.
type leadFinancierRow struct {
	PreferredFinancierID *uuid.UUID `gorm:"column:lead_preferred_financier_id"`
}

// LoadPreferredFinancier returns the lead's preferred financier id, or nil
// when the lead has none (or does not exist — absence, not an error).
func LoadPreferredFinancier(db *gorm.DB, leadID uuid.UUID) *uuid.UUID {
	var row leadFinancierRow
	if err := db.Table("crm_leads").
		Select("lead_preferred_financier_id").
		Where("lead_id = ?", leadID).
		Take(&row).Error; err != nil {
		return nil
	}
	return row.PreferredFinancierID
}

// ResolveForDealer is the request-path entry point: load everything the
// cascade needs and run it. Fetch failures propagate; "nothing matched"
// stays a nil resolution.
func ResolveForDealer(db *gorm.DB, dealerID uuid.UUID, vehicleMake, vehicleModel string, leadID *uuid.UUID) (*Resolution, error) {
	banks, err := LoadBankPartners(db)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadDealerConfig(db, dealerID)
	if err != nil {
		return nil, err
	}

	var preferred *uuid.UUID
	if leadID != nil {
		preferred = LoadPreferredFinancier(db, *leadID)
	}

	return ResolveRoute(banks, cfg, time.Now(), vehicleMake, vehicleModel, preferred), nil
}
