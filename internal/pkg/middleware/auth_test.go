package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/internal/pkg/security"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

func newTestApp() *fiber.App {
	app := fiber.New()

	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		return c.JSON(fiber.Map{
			"username":     uc.Username,
			"display_name": uc.DisplayName(),
		})
	})

	app.Get("/admin", RequireAuth(), RequireRoles(models.ROLE_ADMIN), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/open", OptionalAuth(), func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		return c.JSON(fiber.Map{"logged_in": uc.IsLoggedIn})
	})

	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := security.GenerateToken(&models.User{
		ID:       7,
		Username: "tester",
		FullName: "Toni Tester",
		Email:    "tester@example.com",
		Role:     role,
	})
	assert.NoError(t, err)
	return token
}

func TestRequireAuthMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.ROLE_AUTHOR))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tester", body["username"])
	assert.Equal(t, "Toni Tester", body["display_name"], "full name from the token reaches the request context")
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.ROLE_AUTHOR))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "author may not reach admin routes")

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.ROLE_ADMIN))
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	// Anonymous passes through.
	req := httptest.NewRequest("GET", "/open", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A broken token is treated as anonymous, not rejected.
	req = httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(extractBearerToken(c))
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty header", header: "", want: ""},
		{name: "bearer token", header: "Bearer abc123", want: "abc123"},
		{name: "case-insensitive scheme", header: "bearer abc123", want: "abc123"},
		{name: "wrong scheme", header: "Basic abc123", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	}

	for _, tc := range tests {
		req := httptest.NewRequest("GET", "/echo", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := app.Test(req)
		assert.NoError(t, err, tc.name)
		body := make([]byte, 64)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, tc.want, string(body[:n]), tc.name)
	}
}
