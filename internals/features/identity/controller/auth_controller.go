// internals/features/identity/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"currimon_backend/internals/features/identity/service"
	helper "currimon_backend/internals/helpers"
)

type AuthController struct {
	Resolver *service.Resolver
	Tokens   *service.TokenService
}

/* =========================================================
   LOGIN
   POST /auth/login
   Body: { "username": email, "password": plaintext }
   ========================================================= */
func (h *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Username = strings.TrimSpace(input.Username)

	if input.Username == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please provide username and password")
	}

	identity, err := h.Resolver.Resolve(c.UserContext(), input.Username, input.Password)
	if err != nil {
		// NotFound and InvalidCredential collapse to one response so callers
		// cannot enumerate identity sources; the distinction is logged only.
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidCredential) {
			log.Printf("[WARN] login rejected for %s: %v", input.Username, err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Printf("[ERROR] identity resolution failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := h.Tokens.Issue(*identity)
	if err != nil {
		log.Printf("[ERROR] token signing failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(h.Tokens.TTL()),
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         identity.ID,
			"username":   identity.Email,
			"first_name": identity.FirstName,
			"last_name":  identity.LastName,
			"role":       identity.Role,
		},
	})
}
