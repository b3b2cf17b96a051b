// internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"currimon_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the ambient middleware stack in order: panic
// recovery first, then CORS, request logging, and the global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
