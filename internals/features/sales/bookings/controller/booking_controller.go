// file: internals/features/sales/bookings/controller/booking_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	leadModel "vahanhub_backend/internals/features/crm/leads/model"
	quoteModel "vahanhub_backend/internals/features/crm/quotes/model"
	"vahanhub_backend/internals/features/sales/bookings/dto"
	"vahanhub_backend/internals/features/sales/bookings/model"
	"vahanhub_backend/internals/features/sales/bookings/service"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler { return &Handler{DB: db} }

var validate = validator.New()

/* =======================================================
   Create booking + Snap token
======================================================= */

// CreateBooking reserves against an accepted quote. Customer details come
// from the quote's lead; the Snap token is returned for checkout.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}

	var in dto.BookingCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var quote quoteModel.QuoteModel
	if err := h.DB.First(&quote, "quote_id = ? AND quote_tenant_id = ?", in.QuoteID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quote not found")
	}
	if quote.QuoteStatus != quoteModel.QuoteStatusAccepted {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only accepted quotes can be booked")
	}

	var lead leadModel.LeadModel
	if err := h.DB.First(&lead, "lead_id = ?", quote.QuoteLeadID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lead behind the quote is missing")
	}

	booking := model.BookingModel{
		BookingTenantID:      tenantID,
		BookingQuoteID:       quote.QuoteID,
		BookingOrderID:       fmt.Sprintf("BOOKING-%d", time.Now().UnixNano()),
		BookingCustomerName:  lead.LeadCustomerName,
		BookingCustomerPhone: lead.LeadCustomerPhone,
		BookingCustomerEmail: lead.LeadCustomerEmail,
		BookingDepositAmount: in.DepositAmount,
		BookingStatus:        model.BookingStatusPending,
	}
	if in.CustomerEmail != nil {
		booking.BookingCustomerEmail = in.CustomerEmail
	}
	if err := h.DB.Create(&booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create booking")
	}

	token, redirect, err := service.GenerateSnapToken(booking, "Vehicle booking deposit")
	if err != nil {
		log.Printf("[ERROR] Snap token failed for %s: %v", booking.BookingOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}
	booking.BookingSnapToken = &token
	booking.BookingRedirectURL = &redirect
	if err := h.DB.Save(&booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store payment token")
	}

	return helper.JsonCreated(c, "Booking created successfully", dto.ToBookingResponse(&booking))
}

/* =======================================================
   List / detail
======================================================= */

func (h *Handler) ListBookings(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.BookingModel{}).Where("booking_tenant_id = ?", tenantID)
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("booking_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count bookings")
	}
	var bookings []model.BookingModel
	if err := q.Order("booking_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&bookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	return helper.JsonList(c, "OK", dto.ToBookingResponses(bookings),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	tenantID, err := helperAuth.GetTenantID(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var booking model.BookingModel
	if err := h.DB.First(&booking, "booking_id = ? AND booking_tenant_id = ?", bookingID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
	}
	return helper.JsonOK(c, "OK", dto.ToBookingResponse(&booking))
}

/* =======================================================
   Gateway webhook
======================================================= */

// MidtransWebhookPing answers the gateway's GET health probe.
func (h *Handler) MidtransWebhookPing(c *fiber.Ctx) error {
	log.Println("✅ Midtrans ping (GET) received")
	return c.Status(fiber.StatusOK).SendString("OK")
}

// MidtransWebhook applies a payment notification to the booking. Always
// 200 on processable payloads so the gateway stops retrying.
func (h *Handler) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	orderID := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	if orderID == "" || txStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id or transaction_status missing")
	}
	log.Printf("🔔 Midtrans webhook: order_id=%s status=%s", orderID, txStatus)

	newStatus := mapGatewayStatus(txStatus, strings.ToLower(getString(body, "fraud_status")))
	if newStatus == "" {
		log.Printf("[WARN] Unhandled gateway status %q (ignored)", txStatus)
		return helper.JsonOK(c, "Ignored", nil)
	}

	paymentType := strings.TrimSpace(getString(body, "payment_type"))

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var booking model.BookingModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_order_id = ?", orderID).
			First(&booking).Error; err != nil {
			return fmt.Errorf("booking not found for order_id %s: %w", orderID, err)
		}

		// confirmed bookings never regress
		if booking.BookingStatus == model.BookingStatusConfirmed {
			return nil
		}

		updates := map[string]interface{}{}
		if booking.BookingStatus != newStatus {
			updates["booking_status"] = newStatus
		}
		if paymentType != "" && (booking.BookingPaymentMethod == nil || *booking.BookingPaymentMethod != paymentType) {
			updates["booking_payment_method"] = paymentType
		}
		if newStatus == model.BookingStatusConfirmed && booking.BookingPaidAt == nil {
			updates["booking_paid_at"] = parseGatewayTime(body)
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&model.BookingModel{}).
			Where("booking_id = ?", booking.BookingID).
			Updates(updates).Error
	})
	if err != nil {
		log.Printf("[ERROR] Webhook apply failed: %v", err)
		return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
	}

	return helper.JsonOK(c, "Webhook processed", nil)
}

/* ===== webhook utils ===== */

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func mapGatewayStatus(txStatus, fraudStatus string) string {
	switch txStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return ""
		}
		return model.BookingStatusConfirmed
	case "settlement":
		return model.BookingStatusConfirmed
	case "deny", "cancel", "expire", "failure":
		return model.BookingStatusCancelled
	default: // pending, refund notifications etc.
		return ""
	}
}

func parseGatewayTime(body map[string]interface{}) time.Time {
	for _, key := range []string{"settlement_time", "transaction_time"} {
		if raw := getString(body, key); raw != "" {
			if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
				return t
			}
		}
	}
	return time.Now()
}
