// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Locals keys populated after a verified token.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "userRole"
	LocFirstName = "first_name"
	LocLastName  = "last_name"
)

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	id := claimString(claims, "id")
	role := claimString(claims, "role")
	if id == "" || role == "" {
		return fmt.Errorf("missing id or role claim")
	}
	c.Locals(LocUserID, id)
	c.Locals(LocUserRole, role)
	c.Locals(LocUserEmail, claimString(claims, "username"))
	c.Locals(LocFirstName, claimString(claims, "first_name"))
	c.Locals(LocLastName, claimString(claims, "last_name"))
	return nil
}
