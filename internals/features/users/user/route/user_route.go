// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vahanhub_backend/internals/features/users/user/controller"
)

// UserSelfRoutes mounts profile endpoints for any authenticated user.
func UserSelfRoutes(user fiber.Router, db *gorm.DB) {
	h := controller.New(db)
	user.Patch("/users/me", h.UpdateProfile)
}

// UserAdminRoutes mounts staff management for tenant admins.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.New(db)

	users := admin.Group("/users")
	users.Post("/", h.CreateStaff)
	users.Get("/", h.ListStaff)
	users.Patch("/:id", h.UpdateStaff)
	users.Delete("/:id", h.DeactivateStaff)
}
