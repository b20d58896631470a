// file: internals/features/crm/quotes/model/quote_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuoteStatusDraft    = "DRAFT"
	QuoteStatusSent     = "SENT"
	QuoteStatusAccepted = "ACCEPTED"
	QuoteStatusExpired  = "EXPIRED"
)

// QuoteModel is a priced offer for one lead + SKU + state. The on-road
// breakdown is frozen at creation time so later rule edits cannot change
// an already-sent number.
type QuoteModel struct {
	QuoteID       uuid.UUID `gorm:"column:quote_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quote_id"`
	QuoteTenantID uuid.UUID `gorm:"column:quote_tenant_id;type:uuid;not null;index" json:"quote_tenant_id"`
	QuoteLeadID   uuid.UUID `gorm:"column:quote_lead_id;type:uuid;not null;index" json:"quote_lead_id"`
	QuoteSKUID    uuid.UUID `gorm:"column:quote_sku_id;type:uuid;not null" json:"quote_sku_id"`

	QuoteStateCode string `gorm:"column:quote_state_code;type:varchar(8);not null" json:"quote_state_code"`

	// frozen engine.OnRoadResult
	QuoteOnRoadSnapshot datatypes.JSON `gorm:"column:quote_on_road_snapshot;type:jsonb;not null" json:"quote_on_road_snapshot"`
	QuoteOnRoadTotal    int            `gorm:"column:quote_on_road_total;not null" json:"quote_on_road_total"`

	// frozen finance resolution (bank + scheme + logic); null for cash deals
	QuoteFinanceScheme datatypes.JSON `gorm:"column:quote_finance_scheme;type:jsonb" json:"quote_finance_scheme,omitempty"`

	QuoteStatus     string     `gorm:"column:quote_status;type:varchar(20);not null;default:'DRAFT';index" json:"quote_status"`
	QuoteValidUntil *time.Time `gorm:"column:quote_valid_until;type:timestamptz" json:"quote_valid_until,omitempty"`
	QuoteCreatedBy  *uuid.UUID `gorm:"column:quote_created_by;type:uuid" json:"quote_created_by,omitempty"`

	QuoteCreatedAt time.Time      `gorm:"column:quote_created_at;autoCreateTime" json:"quote_created_at"`
	QuoteUpdatedAt time.Time      `gorm:"column:quote_updated_at;autoUpdateTime" json:"quote_updated_at"`
	QuoteDeletedAt gorm.DeletedAt `gorm:"column:quote_deleted_at;index" json:"-"`
}

func (QuoteModel) TableName() string { return "crm_quotes" }
