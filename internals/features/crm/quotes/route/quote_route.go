// file: internals/features/crm/quotes/route/quote_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/crm/quotes/controller"
)

// QuoteStaffRoutes mounts quote management for dealer staff.
func QuoteStaffRoutes(staff fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	quotes := staff.Group("/quotes")
	quotes.Post("/", h.CreateQuote)
	quotes.Get("/", h.ListQuotes)
	quotes.Get("/:id", h.GetQuote)
	quotes.Patch("/:id/status", h.UpdateQuoteStatus)
}
