// file: internals/features/finance/partners/dto/partner_dto.go
package dto

import (
	"github.com/google/uuid"

	"vahanhub_backend/internals/features/finance/partners/model"
	"vahanhub_backend/internals/features/finance/partners/service"
)

/* ==========================
   Requests
========================== */

// SchemesReplaceDTO replaces a bank tenant's full scheme list.
type SchemesReplaceDTO struct {
	Schemes []model.BankScheme `json:"schemes" validate:"required,dive"`
}

// RoutingReplaceDTO replaces a dealer tenant's routing strategy + table.
type RoutingReplaceDTO struct {
	RoutingStrategy model.RoutingStrategy `json:"routing_strategy" validate:"omitempty,oneof=MANUAL CHEAPEST_FOR_CUSTOMER MOST_PROFITABLE"`
	FinanceRouting  model.FinanceRouting  `json:"finance_routing"`
}

type ResolveRequestDTO struct {
	VehicleMake  string     `json:"vehicle_make" validate:"omitempty,max=100"`
	VehicleModel string     `json:"vehicle_model" validate:"required,max=120"`
	LeadID       *uuid.UUID `json:"lead_id"`
}

/* ==========================
   Responses
========================== */

type ResolveResponseDTO struct {
	Matched    bool                `json:"matched"`
	Resolution *service.Resolution `json:"resolution,omitempty"`
}

func ToResolveResponse(res *service.Resolution) ResolveResponseDTO {
	return ResolveResponseDTO{Matched: res != nil, Resolution: res}
}
