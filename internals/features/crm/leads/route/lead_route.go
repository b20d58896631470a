// file: internals/features/crm/leads/route/lead_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/crm/leads/controller"
)

// LeadPublicRoutes mounts the open enquiry endpoint.
func LeadPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.New(db)
	public.Post("/leads", h.CaptureLead)
}

// LeadStaffRoutes mounts the pipeline for dealer staff.
func LeadStaffRoutes(staff fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	leads := staff.Group("/leads")
	leads.Get("/", h.ListLeads)
	leads.Get("/:id", h.GetLead)
	leads.Patch("/:id", h.UpdateLead)
	leads.Delete("/:id", h.DeleteLead)
}
