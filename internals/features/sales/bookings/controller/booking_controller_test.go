// file: internals/features/sales/bookings/controller/booking_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vahanhub_backend/internals/features/sales/bookings/model"
)

func TestMapGatewayStatus(t *testing.T) {
	assert.Equal(t, model.BookingStatusConfirmed, mapGatewayStatus("settlement", ""))
	assert.Equal(t, model.BookingStatusConfirmed, mapGatewayStatus("capture", "accept"))

	// challenged captures wait for the follow-up notification
	assert.Equal(t, "", mapGatewayStatus("capture", "challenge"))

	assert.Equal(t, model.BookingStatusCancelled, mapGatewayStatus("deny", ""))
	assert.Equal(t, model.BookingStatusCancelled, mapGatewayStatus("cancel", ""))
	assert.Equal(t, model.BookingStatusCancelled, mapGatewayStatus("expire", ""))
	assert.Equal(t, model.BookingStatusCancelled, mapGatewayStatus("failure", ""))

	assert.Equal(t, "", mapGatewayStatus("pending", ""))
	assert.Equal(t, "", mapGatewayStatus("refund", ""))
}

func TestParseGatewayTimePrefersSettlementTime(t *testing.T) {
	body := map[string]interface{}{
		"settlement_time":  "2026-03-14 10:30:00",
		"transaction_time": "2026-03-14 10:00:00",
	}
	got := parseGatewayTime(body)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC), got)
}

func TestParseGatewayTimeFallsBackToTransactionTime(t *testing.T) {
	body := map[string]interface{}{
		"transaction_time": "2026-03-14 10:00:00",
	}
	got := parseGatewayTime(body)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), got)
}

func TestParseGatewayTimeDefaultsToNow(t *testing.T) {
	before := time.Now()
	got := parseGatewayTime(map[string]interface{}{"settlement_time": "not-a-time"})
	assert.False(t, got.Before(before))
}

func TestGetString(t *testing.T) {
	body := map[string]interface{}{"order_id": "BOOKING-1", "gross_amount": 5000.0}
	assert.Equal(t, "BOOKING-1", getString(body, "order_id"))
	assert.Equal(t, "", getString(body, "gross_amount"))
	assert.Equal(t, "", getString(body, "missing"))
}
