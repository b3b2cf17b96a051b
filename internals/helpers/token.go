// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the bearer credential from:
// 1) Authorization header "Bearer <token>"
// 2) cookie "token" (legacy clients)
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth != "" {
		fields := strings.Fields(auth)
		if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
		}
	}
	return strings.TrimSpace(c.Cookies("token"))
}
