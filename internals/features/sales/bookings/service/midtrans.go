// file: internals/features/sales/bookings/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"vahanhub_backend/internals/features/sales/bookings/model"
)

var SnapClient snap.Client

// InitMidtrans must run once at bootstrap. useProduction selects the
// live gateway; everything else goes through the sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// GenerateSnapToken creates the hosted-payment token + redirect URL for a
// booking deposit.
func GenerateSnapToken(b model.BookingModel, itemName string) (string, string, error) {
	if b.BookingDepositAmount <= 0 {
		return "", "", errors.New("invalid booking_deposit_amount")
	}
	if b.BookingOrderID == "" {
		return "", "", errors.New("booking_order_id is required")
	}

	email := ""
	if b.BookingCustomerEmail != nil {
		email = *b.BookingCustomerEmail
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  b.BookingOrderID,
			GrossAmt: int64(b.BookingDepositAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: b.BookingCustomerName,
			Email: email,
			Phone: b.BookingCustomerPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       b.BookingOrderID,
				Price:    int64(b.BookingDepositAmount),
				Qty:      1,
				Name:     itemName,
				Category: "BOOKING_DEPOSIT",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
