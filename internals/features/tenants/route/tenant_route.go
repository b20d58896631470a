package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantapi "vahanhub_backend/internals/features/tenants/controller"
)

// Owner routes: tenant lifecycle.
func TenantOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	h := &tenantapi.Handler{DB: db}

	owner.Post("/tenants", h.CreateTenant)
	owner.Get("/tenants", h.ListTenants)
}

// Admin routes: a tenant managing itself.
func TenantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &tenantapi.Handler{DB: db}

	admin.Get("/tenants/:id", h.GetTenant)
	admin.Patch("/tenants/:id", h.UpdateTenant)
}

// Public routes: storefront lookup by slug.
func TenantPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &tenantapi.Handler{DB: db}

	public.Get("/tenants/slug/:slug", h.GetTenantBySlug)
}
