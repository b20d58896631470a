package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pricingapi "vahanhub_backend/internals/features/pricing/rules/controller"
)

/*
Admin routes (CRUD & previews), tenant-scoped.
Mounted under /api/a/:tenant_id/pricing.
*/
func PricingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &pricingapi.Handler{DB: db}

	grp := admin.Group("/pricing")

	{
		// =========================
		// Registration rules
		// =========================
		grp.Post("/registration-rules", h.CreateRegistrationRule)
		grp.Get("/registration-rules", h.ListRegistrationRules)
		grp.Get("/registration-rules/:id", h.GetRegistrationRule)
		grp.Patch("/registration-rules/:id", h.UpdateRegistrationRule)
		grp.Delete("/registration-rules/:id", h.DeleteRegistrationRule)

		// =========================
		// Insurance rules
		// =========================
		grp.Post("/insurance-rules", h.CreateInsuranceRule)
		grp.Get("/insurance-rules", h.ListInsuranceRules)
		grp.Get("/insurance-rules/:id", h.GetInsuranceRule)
		grp.Patch("/insurance-rules/:id", h.UpdateInsuranceRule)
		grp.Delete("/insurance-rules/:id", h.DeleteInsuranceRule)

		// =========================
		// Live previews (rule builder)
		// =========================
		grp.Post("/preview/registration", h.PreviewRegistration)
		grp.Post("/preview/insurance", h.PreviewInsurance)
		grp.Post("/preview/on-road", h.PreviewOnRoad)
	}
}
