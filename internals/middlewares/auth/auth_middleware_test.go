package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(LocUserID),
			"role": c.Locals(LocUserRole),
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":   "1-SCH",
		"role": "School",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, protectedApp(), token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	resp := request(t, protectedApp(), "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":   "u1",
		"role": "Staff",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	resp := request(t, protectedApp(), token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expired token must map to 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"id":   "u1",
		"role": "Staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, protectedApp(), token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bad signature must map to 403, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareIncompleteClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  "u1", // role missing
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, protectedApp(), token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("incomplete claims must map to 403, got %d", resp.StatusCode)
	}
}
