// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/users/auth/controller"
	"vahanhub_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth endpoints under /auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Get("/csrf-token", ctrl.CSRFToken)
	auth.Post("/forgot-password", middlewares.LoginRateLimiter(), ctrl.ResetPassword)
}

// AuthProtectedRoutes mounts session endpoints that require a valid token.
// The caller attaches the JWT middleware to the group before calling.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", ctrl.Me)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
