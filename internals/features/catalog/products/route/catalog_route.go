// file: internals/features/catalog/products/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/catalog/products/controller"
	"vahanhub_backend/internals/middlewares"
)

// CatalogPublicRoutes mounts the browse + quote endpoints, no auth.
func CatalogPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	catalog := public.Group("/catalog")
	catalog.Get("/models", h.ListCatalog)
	catalog.Get("/models/:slug", h.GetModelBySlug)
	catalog.Get("/skus/:id/on-road", middlewares.QuoteRateLimiter(), h.GetSKUOnRoad)
}

// CatalogAdminRoutes mounts brand/model/SKU management for platform staff.
func CatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	catalog := admin.Group("/catalog")

	catalog.Post("/brands", h.CreateBrand)
	catalog.Get("/brands", h.ListBrands)
	catalog.Patch("/brands/:id", h.UpdateBrand)
	catalog.Delete("/brands/:id", h.DeleteBrand)

	catalog.Post("/models", h.CreateVehicleModel)
	catalog.Patch("/models/:id", h.UpdateVehicleModel)
	catalog.Delete("/models/:id", h.DeleteVehicleModel)

	catalog.Post("/skus", h.CreateSKU)
	catalog.Patch("/skus/:id", h.UpdateSKU)
	catalog.Delete("/skus/:id", h.DeleteSKU)
	catalog.Post("/skus/:id/image", h.UploadSKUImage)
}
