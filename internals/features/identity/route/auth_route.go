// internals/features/identity/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	authController "currimon_backend/internals/features/identity/controller"
	"currimon_backend/internals/features/identity/service"
	"currimon_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	ctrl := &authController.AuthController{
		Resolver: service.NewResolver(db, cfg),
		Tokens:   service.NewTokenService(cfg),
	}

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
