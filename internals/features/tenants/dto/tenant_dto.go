// file: internals/features/tenants/dto/tenant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vahanhub_backend/internals/features/tenants/model"
)

/* =======================================================
   TENANTS — DTO
======================================================= */

type TenantCreateDTO struct {
	TenantName string           `json:"tenant_name" validate:"required,max=120"`
	TenantSlug *string          `json:"tenant_slug,omitempty" validate:"omitempty,max=80"`
	TenantType model.TenantType `json:"tenant_type" validate:"required,oneof=DEALER BANK PLATFORM"`

	TenantStateCode    *string `json:"tenant_state_code,omitempty" validate:"omitempty,max=8"`
	TenantContactName  *string `json:"tenant_contact_name,omitempty" validate:"omitempty,max=120"`
	TenantContactPhone *string `json:"tenant_contact_phone,omitempty" validate:"omitempty,max=20"`
	TenantContactEmail *string `json:"tenant_contact_email,omitempty" validate:"omitempty,email,max=120"`

	TenantConfig datatypes.JSON `json:"tenant_config,omitempty"`
}

type TenantUpdateDTO struct {
	TenantName   *string             `json:"tenant_name,omitempty" validate:"omitempty,max=120"`
	TenantStatus *model.TenantStatus `json:"tenant_status,omitempty" validate:"omitempty,oneof=ACTIVE SUSPENDED PENDING"`

	TenantStateCode    *string `json:"tenant_state_code,omitempty" validate:"omitempty,max=8"`
	TenantContactName  *string `json:"tenant_contact_name,omitempty" validate:"omitempty,max=120"`
	TenantContactPhone *string `json:"tenant_contact_phone,omitempty" validate:"omitempty,max=20"`
	TenantContactEmail *string `json:"tenant_contact_email,omitempty" validate:"omitempty,email,max=120"`

	TenantConfig *datatypes.JSON `json:"tenant_config,omitempty"`
}

type TenantResponse struct {
	TenantID   uuid.UUID        `json:"tenant_id"`
	TenantName string           `json:"tenant_name"`
	TenantSlug string           `json:"tenant_slug"`
	TenantType model.TenantType `json:"tenant_type"`

	TenantStatus    model.TenantStatus `json:"tenant_status"`
	TenantStateCode *string            `json:"tenant_state_code,omitempty"`

	TenantContactName  *string `json:"tenant_contact_name,omitempty"`
	TenantContactPhone *string `json:"tenant_contact_phone,omitempty"`
	TenantContactEmail *string `json:"tenant_contact_email,omitempty"`

	TenantConfig datatypes.JSON `json:"tenant_config"`

	TenantCreatedAt time.Time `json:"tenant_created_at"`
	TenantUpdatedAt time.Time `json:"tenant_updated_at"`
}

/* =======================================================
   MAPPERS — Model <-> DTO
======================================================= */

func ToTenantResponse(m model.TenantModel) TenantResponse {
	return TenantResponse{
		TenantID:           m.TenantID,
		TenantName:         m.TenantName,
		TenantSlug:         m.TenantSlug,
		TenantType:         m.TenantType,
		TenantStatus:       m.TenantStatus,
		TenantStateCode:    m.TenantStateCode,
		TenantContactName:  m.TenantContactName,
		TenantContactPhone: m.TenantContactPhone,
		TenantContactEmail: m.TenantContactEmail,
		TenantConfig:       m.TenantConfig,
		TenantCreatedAt:    m.TenantCreatedAt,
		TenantUpdatedAt:    m.TenantUpdatedAt,
	}
}

func ToTenantResponses(list []model.TenantModel) []TenantResponse {
	out := make([]TenantResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToTenantResponse(v))
	}
	return out
}

func TenantCreateDTOToModel(d TenantCreateDTO, slug string) model.TenantModel {
	m := model.TenantModel{
		TenantName:         d.TenantName,
		TenantSlug:         slug,
		TenantType:         d.TenantType,
		TenantStatus:       model.TenantStatusActive,
		TenantStateCode:    d.TenantStateCode,
		TenantContactName:  d.TenantContactName,
		TenantContactPhone: d.TenantContactPhone,
		TenantContactEmail: d.TenantContactEmail,
	}
	if len(d.TenantConfig) > 0 {
		m.TenantConfig = d.TenantConfig
	} else {
		m.TenantConfig = datatypes.JSON([]byte("{}"))
	}
	return m
}

func ApplyTenantUpdate(m *model.TenantModel, d TenantUpdateDTO) {
	if d.TenantName != nil {
		m.TenantName = *d.TenantName
	}
	if d.TenantStatus != nil {
		m.TenantStatus = *d.TenantStatus
	}
	if d.TenantStateCode != nil {
		m.TenantStateCode = d.TenantStateCode
	}
	if d.TenantContactName != nil {
		m.TenantContactName = d.TenantContactName
	}
	if d.TenantContactPhone != nil {
		m.TenantContactPhone = d.TenantContactPhone
	}
	if d.TenantContactEmail != nil {
		m.TenantContactEmail = d.TenantContactEmail
	}
	if d.TenantConfig != nil {
		m.TenantConfig = *d.TenantConfig
	}
}
