// file: internals/features/crm/leads/dto/lead_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"vahanhub_backend/internals/features/crm/leads/model"
)

/* ==========================
   Requests
========================== */

// LeadCaptureDTO is the public enquiry form payload.
type LeadCaptureDTO struct {
	TenantID             uuid.UUID  `json:"tenant_id" validate:"required"`
	CustomerName         string     `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerPhone        string     `json:"customer_phone" validate:"required,min=8,max=20"`
	CustomerEmail        *string    `json:"customer_email" validate:"omitempty,email"`
	StateCode            string     `json:"state_code" validate:"required,min=2,max=8"`
	SKUID                *uuid.UUID `json:"sku_id"`
	PreferredFinancierID *uuid.UUID `json:"preferred_financier_id"`
	Source               *string    `json:"source" validate:"omitempty,max=60"`
	Tags                 []string   `json:"tags" validate:"omitempty,max=10,dive,max=40"`
}

type LeadUpdateDTO struct {
	Status               *string    `json:"status" validate:"omitempty,oneof=NEW CONTACTED QUALIFIED QUOTED WON LOST"`
	AssignedTo           *uuid.UUID `json:"assigned_to"`
	PreferredFinancierID *uuid.UUID `json:"preferred_financier_id"`
	Tags                 []string   `json:"tags" validate:"omitempty,max=10,dive,max=40"`
	Notes                *string    `json:"notes"`
}

/* ==========================
   Responses
========================== */

type LeadResponse struct {
	LeadID               uuid.UUID  `json:"lead_id"`
	TenantID             uuid.UUID  `json:"tenant_id"`
	CustomerName         string     `json:"customer_name"`
	CustomerPhone        string     `json:"customer_phone"`
	CustomerEmail        *string    `json:"customer_email,omitempty"`
	StateCode            string     `json:"state_code"`
	SKUID                *uuid.UUID `json:"sku_id,omitempty"`
	PreferredFinancierID *uuid.UUID `json:"preferred_financier_id,omitempty"`
	Status               string     `json:"status"`
	Source               *string    `json:"source,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	AssignedTo           *uuid.UUID `json:"assigned_to,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

/* ==========================
   Mappers
========================== */

func (in *LeadCaptureDTO) ToModel() *model.LeadModel {
	return &model.LeadModel{
		LeadTenantID:             in.TenantID,
		LeadCustomerName:         strings.TrimSpace(in.CustomerName),
		LeadCustomerPhone:        strings.TrimSpace(in.CustomerPhone),
		LeadCustomerEmail:        in.CustomerEmail,
		LeadStateCode:            strings.ToUpper(strings.TrimSpace(in.StateCode)),
		LeadSKUID:                in.SKUID,
		LeadPreferredFinancierID: in.PreferredFinancierID,
		LeadStatus:               model.LeadStatusNew,
		LeadSource:               in.Source,
		LeadTags:                 in.Tags,
	}
}

func ToLeadResponse(m *model.LeadModel) *LeadResponse {
	return &LeadResponse{
		LeadID:               m.LeadID,
		TenantID:             m.LeadTenantID,
		CustomerName:         m.LeadCustomerName,
		CustomerPhone:        m.LeadCustomerPhone,
		CustomerEmail:        m.LeadCustomerEmail,
		StateCode:            m.LeadStateCode,
		SKUID:                m.LeadSKUID,
		PreferredFinancierID: m.LeadPreferredFinancierID,
		Status:               m.LeadStatus,
		Source:               m.LeadSource,
		Tags:                 m.LeadTags,
		AssignedTo:           m.LeadAssignedTo,
		Notes:                m.LeadNotes,
		CreatedAt:            m.LeadCreatedAt,
	}
}

func ToLeadResponses(ms []model.LeadModel) []LeadResponse {
	out := make([]LeadResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToLeadResponse(&ms[i]))
	}
	return out
}
