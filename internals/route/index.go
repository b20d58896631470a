// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogRoute "vahanhub_backend/internals/features/catalog/products/route"
	leadRoute "vahanhub_backend/internals/features/crm/leads/route"
	quoteRoute "vahanhub_backend/internals/features/crm/quotes/route"
	partnerRoute "vahanhub_backend/internals/features/finance/partners/route"
	pricingRoute "vahanhub_backend/internals/features/pricing/rules/route"
	bookingRoute "vahanhub_backend/internals/features/sales/bookings/route"
	tenantRoute "vahanhub_backend/internals/features/tenants/route"
	authRepo "vahanhub_backend/internals/features/users/auth/repository"
	authRoute "vahanhub_backend/internals/features/users/auth/route"
	userRoute "vahanhub_backend/internals/features/users/user/route"
	middlewares "vahanhub_backend/internals/middlewares"
	tenantMiddleware "vahanhub_backend/internals/middlewares/auth_tenant"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// handlers that only get a *fiber.Ctx can still reach the pool
	app.Use(middlewares.DBMiddleware(db))

	authOpts := tenantMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
		BlacklistChecker: func(raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(db, raw)
		},
	}

	// ===================== AUTH (public half) =====================
	log.Println("[INFO] Setting up auth routes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	catalogRoute.CatalogPublicRoutes(public, db)
	tenantRoute.TenantPublicRoutes(public, db)
	leadRoute.LeadPublicRoutes(public, db)
	bookingRoute.BookingWebhookRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", tenantMiddleware.AuthJWT(authOpts))
	authRoute.AuthProtectedRoutes(user, db)
	userRoute.UserSelfRoutes(user, db)

	// ===================== STAFF (tenant members) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/a",
		tenantMiddleware.AuthJWT(authOpts),
		tenantMiddleware.IsTenantStaff(),
	)
	leadRoute.LeadStaffRoutes(staff, db)
	quoteRoute.QuoteStaffRoutes(staff, db)
	bookingRoute.BookingStaffRoutes(staff, db)
	partnerRoute.PartnerStaffRoutes(staff, db)

	// ===================== ADMIN (tenant admins) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		tenantMiddleware.AuthJWT(authOpts),
		tenantMiddleware.IsTenantAdmin(),
	)
	pricingRoute.PricingAdminRoutes(admin, db)
	partnerRoute.PartnerAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	tenantRoute.TenantAdminRoutes(admin, db)

	// ===================== OWNER (platform) =====================
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		tenantMiddleware.AuthJWT(authOpts),
		tenantMiddleware.IsOwnerGlobal(),
	)
	tenantRoute.TenantOwnerRoutes(owner, db)
	catalogRoute.CatalogAdminRoutes(owner, db)
}
