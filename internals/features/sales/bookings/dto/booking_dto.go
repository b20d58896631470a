// file: internals/features/sales/bookings/dto/booking_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vahanhub_backend/internals/features/sales/bookings/model"
)

type BookingCreateDTO struct {
	QuoteID       uuid.UUID `json:"quote_id" validate:"required"`
	DepositAmount int       `json:"deposit_amount" validate:"required,gt=0"`
	CustomerEmail *string   `json:"customer_email" validate:"omitempty,email"`
}

type BookingResponse struct {
	BookingID     uuid.UUID  `json:"booking_id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	QuoteID       uuid.UUID  `json:"quote_id"`
	OrderID       string     `json:"order_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail *string    `json:"customer_email,omitempty"`
	DepositAmount int        `json:"deposit_amount"`
	Status        string     `json:"status"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	SnapToken     *string    `json:"snap_token,omitempty"`
	RedirectURL   *string    `json:"redirect_url,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToBookingResponse(m *model.BookingModel) *BookingResponse {
	return &BookingResponse{
		BookingID:     m.BookingID,
		TenantID:      m.BookingTenantID,
		QuoteID:       m.BookingQuoteID,
		OrderID:       m.BookingOrderID,
		CustomerName:  m.BookingCustomerName,
		CustomerPhone: m.BookingCustomerPhone,
		CustomerEmail: m.BookingCustomerEmail,
		DepositAmount: m.BookingDepositAmount,
		Status:        m.BookingStatus,
		PaymentMethod: m.BookingPaymentMethod,
		SnapToken:     m.BookingSnapToken,
		RedirectURL:   m.BookingRedirectURL,
		PaidAt:        m.BookingPaidAt,
		CreatedAt:     m.BookingCreatedAt,
	}
}

func ToBookingResponses(ms []model.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToBookingResponse(&ms[i]))
	}
	return out
}
