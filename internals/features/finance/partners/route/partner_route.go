// file: internals/features/finance/partners/route/partner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/finance/partners/controller"
)

// PartnerAdminRoutes mounts scheme + routing config for tenant admins and
// the resolve endpoint for dealer staff.
func PartnerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	finance := admin.Group("/finance")
	finance.Get("/schemes", h.GetSchemes)
	finance.Put("/schemes", h.ReplaceSchemes)
	finance.Get("/routing", h.GetRouting)
	finance.Put("/routing", h.ReplaceRouting)
}

// PartnerStaffRoutes mounts the day-to-day resolution endpoint.
func PartnerStaffRoutes(staff fiber.Router, db *gorm.DB) {
	h := controller.New(db)
	staff.Post("/finance/resolve", h.ResolveScheme)
}
