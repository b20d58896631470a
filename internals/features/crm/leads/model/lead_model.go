// file: internals/features/crm/leads/model/lead_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Lead status pipeline.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusQuoted    = "QUOTED"
	LeadStatusWon       = "WON"
	LeadStatusLost      = "LOST"
)

type LeadModel struct {
	LeadID       uuid.UUID `gorm:"column:lead_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lead_id"`
	LeadTenantID uuid.UUID `gorm:"column:lead_tenant_id;type:uuid;not null;index" json:"lead_tenant_id"`

	LeadCustomerName  string  `gorm:"column:lead_customer_name;size:120;not null" json:"lead_customer_name"`
	LeadCustomerPhone string  `gorm:"column:lead_customer_phone;size:20;not null;index" json:"lead_customer_phone"`
	LeadCustomerEmail *string `gorm:"column:lead_customer_email;size:255" json:"lead_customer_email,omitempty"`
	LeadStateCode     string  `gorm:"column:lead_state_code;type:varchar(8);not null" json:"lead_state_code"`

	LeadSKUID *uuid.UUID `gorm:"column:lead_sku_id;type:uuid;index" json:"lead_sku_id,omitempty"`

	// customer's bank preference; consulted before day-based routing
	LeadPreferredFinancierID *uuid.UUID `gorm:"column:lead_preferred_financier_id;type:uuid" json:"lead_preferred_financier_id,omitempty"`

	LeadStatus     string         `gorm:"column:lead_status;type:varchar(20);not null;default:'NEW';index" json:"lead_status"`
	LeadSource     *string        `gorm:"column:lead_source;size:60" json:"lead_source,omitempty"`
	LeadTags       pq.StringArray `gorm:"column:lead_tags;type:text[]" json:"lead_tags,omitempty"`
	LeadAssignedTo *uuid.UUID     `gorm:"column:lead_assigned_to;type:uuid;index" json:"lead_assigned_to,omitempty"`
	LeadNotes      *string        `gorm:"column:lead_notes;type:text" json:"lead_notes,omitempty"`

	LeadCreatedAt time.Time      `gorm:"column:lead_created_at;autoCreateTime" json:"lead_created_at"`
	LeadUpdatedAt time.Time      `gorm:"column:lead_updated_at;autoUpdateTime" json:"lead_updated_at"`
	LeadDeletedAt gorm.DeletedAt `gorm:"column:lead_deleted_at;index" json:"-"`
}

func (LeadModel) TableName() string { return "crm_leads" }

// ValidNextStatus reports whether a transition is allowed in the pipeline.
// WON and LOST are terminal; everything else may move forward or to LOST.
func ValidNextStatus(from, to string) bool {
	if from == LeadStatusWon || from == LeadStatusLost {
		return false
	}
	order := map[string]int{
		LeadStatusNew:       0,
		LeadStatusContacted: 1,
		LeadStatusQualified: 2,
		LeadStatusQuoted:    3,
		LeadStatusWon:       4,
	}
	if to == LeadStatusLost {
		_, ok := order[from]
		return ok
	}
	fromOrd, okF := order[from]
	toOrd, okT := order[to]
	return okF && okT && toOrd > fromOrd
}
