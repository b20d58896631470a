// file: internals/features/sales/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// BookingModel reserves a vehicle against an accepted quote. The deposit
// goes through Midtrans; the webhook drives the status.
type BookingModel struct {
	BookingID       uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`
	BookingTenantID uuid.UUID `gorm:"column:booking_tenant_id;type:uuid;not null;index" json:"booking_tenant_id"`
	BookingQuoteID  uuid.UUID `gorm:"column:booking_quote_id;type:uuid;not null;index" json:"booking_quote_id"`

	// gateway order id, also the webhook correlation key
	BookingOrderID string `gorm:"column:booking_order_id;size:64;not null;uniqueIndex" json:"booking_order_id"`

	BookingCustomerName  string  `gorm:"column:booking_customer_name;size:120;not null" json:"booking_customer_name"`
	BookingCustomerPhone string  `gorm:"column:booking_customer_phone;size:20;not null" json:"booking_customer_phone"`
	BookingCustomerEmail *string `gorm:"column:booking_customer_email;size:255" json:"booking_customer_email,omitempty"`

	BookingDepositAmount int    `gorm:"column:booking_deposit_amount;not null" json:"booking_deposit_amount"`
	BookingStatus        string `gorm:"column:booking_status;type:varchar(20);not null;default:'PENDING';index" json:"booking_status"`

	BookingPaymentMethod *string `gorm:"column:booking_payment_method;size:40" json:"booking_payment_method,omitempty"`
	BookingSnapToken     *string `gorm:"column:booking_snap_token" json:"booking_snap_token,omitempty"`
	BookingRedirectURL   *string `gorm:"column:booking_redirect_url" json:"booking_redirect_url,omitempty"`

	BookingPaidAt *time.Time `gorm:"column:booking_paid_at;type:timestamptz" json:"booking_paid_at,omitempty"`

	BookingCreatedAt time.Time      `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time      `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
	BookingDeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index" json:"-"`
}

func (BookingModel) TableName() string { return "sales_bookings" }
