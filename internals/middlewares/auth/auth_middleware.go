// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "currimon_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer credential on every protected request.
// Expired token → 401; invalid signature or malformed claims → 403.
// On success the resolved identity is injected into request Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			log.Println("[ERROR] JWT secret is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			var ve *jwt.ValidationError
			if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
			log.Printf("[ERROR] Token verification failed: %v", err)
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden - Invalid token")
		}

		if err := storeClaimsToLocals(c, claims); err != nil {
			log.Printf("[ERROR] Token claims incomplete: %v", err)
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden - Invalid token claims")
		}

		return c.Next()
	}
}
