// file: internals/features/sales/bookings/route/booking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/sales/bookings/controller"
)

// BookingStaffRoutes mounts booking management for dealer staff.
func BookingStaffRoutes(staff fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	bookings := staff.Group("/bookings")
	bookings.Post("/", h.CreateBooking)
	bookings.Get("/", h.ListBookings)
	bookings.Get("/:id", h.GetBooking)
}

// BookingWebhookRoutes mounts the unauthenticated gateway callback.
func BookingWebhookRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.New(db)
	public.Get("/bookings/webhook", h.MidtransWebhookPing)
	public.Post("/bookings/webhook", h.MidtransWebhook)
}
