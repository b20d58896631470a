package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"vahanhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the base middleware chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
