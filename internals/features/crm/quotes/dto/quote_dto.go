// file: internals/features/crm/quotes/dto/quote_dto.go
package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vahanhub_backend/internals/features/crm/quotes/model"
	financeService "vahanhub_backend/internals/features/finance/partners/service"
	"vahanhub_backend/internals/features/pricing/engine"
)

/* ==========================
   Requests
========================== */

type QuoteCreateDTO struct {
	LeadID    uuid.UUID `json:"lead_id" validate:"required"`
	SKUID     uuid.UUID `json:"sku_id" validate:"required"`
	StateCode string    `json:"state_code" validate:"required,min=2,max=8"`
	// days the quote stays valid; 0 means no expiry
	ValidDays   int  `json:"valid_days" validate:"omitempty,min=0,max=90"`
	WithFinance bool `json:"with_finance"`
}

type QuoteStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT ACCEPTED EXPIRED"`
}

/* ==========================
   Responses
========================== */

type QuoteResponse struct {
	QuoteID       uuid.UUID                  `json:"quote_id"`
	TenantID      uuid.UUID                  `json:"tenant_id"`
	LeadID        uuid.UUID                  `json:"lead_id"`
	SKUID         uuid.UUID                  `json:"sku_id"`
	StateCode     string                     `json:"state_code"`
	OnRoad        *engine.OnRoadResult       `json:"on_road,omitempty"`
	OnRoadTotal   int                        `json:"on_road_total"`
	FinanceScheme *financeService.Resolution `json:"finance_scheme,omitempty"`
	Status        string                     `json:"status"`
	ValidUntil    *time.Time                 `json:"valid_until,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
}

/* ==========================
   Mappers
========================== */

func EncodeOnRoadSnapshot(res engine.OnRoadResult) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(res)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func EncodeFinanceResolution(res *financeService.Resolution) (datatypes.JSON, error) {
	if res == nil {
		return nil, nil
	}
	raw, err := sonic.Marshal(res)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func ToQuoteResponse(m *model.QuoteModel) *QuoteResponse {
	out := &QuoteResponse{
		QuoteID:     m.QuoteID,
		TenantID:    m.QuoteTenantID,
		LeadID:      m.QuoteLeadID,
		SKUID:       m.QuoteSKUID,
		StateCode:   m.QuoteStateCode,
		OnRoadTotal: m.QuoteOnRoadTotal,
		Status:      m.QuoteStatus,
		ValidUntil:  m.QuoteValidUntil,
		CreatedAt:   m.QuoteCreatedAt,
	}
	if len(m.QuoteOnRoadSnapshot) > 0 {
		var snap engine.OnRoadResult
		if err := sonic.Unmarshal(m.QuoteOnRoadSnapshot, &snap); err == nil {
			out.OnRoad = &snap
		}
	}
	if len(m.QuoteFinanceScheme) > 0 {
		var res financeService.Resolution
		if err := sonic.Unmarshal(m.QuoteFinanceScheme, &res); err == nil {
			out.FinanceScheme = &res
		}
	}
	return out
}

func ToQuoteResponses(ms []model.QuoteModel) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToQuoteResponse(&ms[i]))
	}
	return out
}
