// file: internals/features/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM tenant_type --------------------------------------------------------
type TenantType string

const (
	TenantTypeDealer   TenantType = "DEALER"
	TenantTypeBank     TenantType = "BANK"
	TenantTypePlatform TenantType = "PLATFORM"
)

// --- ENUM tenant_status ------------------------------------------------------
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "ACTIVE"
	TenantStatusSuspended TenantStatus = "SUSPENDED"
	TenantStatusPending   TenantStatus = "PENDING"
)

// --- MODEL tenants -----------------------------------------------------------
// One row per organisation on the platform. Bank tenants keep their finance
// schemes inside TenantConfig (key "schemes"); dealer tenants keep the
// day-wise finance routing table ("financeRouting") and "routingStrategy".
type TenantModel struct {
	// PK
	TenantID uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TenantName string     `json:"tenant_name" gorm:"column:tenant_name;type:varchar(120);not null"`
	TenantSlug string     `json:"tenant_slug" gorm:"column:tenant_slug;type:varchar(80);not null;uniqueIndex:ux_tenants_slug"`
	TenantType TenantType `json:"tenant_type" gorm:"column:tenant_type;type:varchar(20);not null;index:idx_tenants_type_status,priority:1"`

	TenantStatus    TenantStatus `json:"tenant_status" gorm:"column:tenant_status;type:varchar(20);not null;default:'ACTIVE';index:idx_tenants_type_status,priority:2"`
	TenantStateCode *string      `json:"tenant_state_code,omitempty" gorm:"column:tenant_state_code;type:varchar(8)"`

	TenantContactName  *string `json:"tenant_contact_name,omitempty" gorm:"column:tenant_contact_name;type:varchar(120)"`
	TenantContactPhone *string `json:"tenant_contact_phone,omitempty" gorm:"column:tenant_contact_phone;type:varchar(20)"`
	TenantContactEmail *string `json:"tenant_contact_email,omitempty" gorm:"column:tenant_contact_email;type:varchar(120)"`

	TenantConfig datatypes.JSON `json:"tenant_config" gorm:"column:tenant_config;type:jsonb;not null;default:'{}'"`

	// Timestamps
	TenantCreatedAt time.Time      `json:"tenant_created_at" gorm:"column:tenant_created_at;type:timestamptz;not null;autoCreateTime"`
	TenantUpdatedAt time.Time      `json:"tenant_updated_at" gorm:"column:tenant_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TenantDeletedAt gorm.DeletedAt `json:"tenant_deleted_at,omitempty" gorm:"column:tenant_deleted_at;type:timestamptz;index"`
}

func (TenantModel) TableName() string { return "tenants" }
