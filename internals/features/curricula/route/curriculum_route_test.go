package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"currimon_backend/internals/configs"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

const testSecret = "curriculum-route-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

// The handlers behind the gate are never reached in these tests, so the DB,
// store and extractor can stay nil.
func curriculumApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api", authMiddleware.AuthMiddleware(testSecret))
	CurriculumRoutes(api, nil, nil, nil, &configs.Config{})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// Teachers only reach curricula through their own assignment set; the raw
// catalogue reads are closed to them.
func TestCatalogueReadsForbiddenForTeacher(t *testing.T) {
	app := curriculumApp()
	token := signToken(t, jwt.MapClaims{
		"id":   "7-TCH",
		"role": "Teacher",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	for _, path := range []string{
		"/api/getCurriculumTypes?education_type=GEN&level_type=PRI&section_type=A&class_type=1",
		"/api/getCurriculumSelected?course=MATH_1",
	} {
		resp := get(t, app, path, token)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("%s: expected 403 for Teacher, got %d", path, resp.StatusCode)
		}
	}
}

func TestCatalogueReadsRequireToken(t *testing.T) {
	app := curriculumApp()
	req := httptest.NewRequest(http.MethodGet, "/api/getCurriculumTypes", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}
