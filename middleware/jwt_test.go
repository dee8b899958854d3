package middleware

import (
	"charityhub/config"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{JWTMiddleware}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func TestJWTMiddlewareRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	token, err := GenerateJWT(42, "alice", "Donor", "alice@example.com")
	require.NoError(t, err)

	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	// No header
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong scheme
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Token signed with another key
	config.AppConfig.JWTKey = "other-secret"
	token, err := GenerateJWT(42, "alice", "Donor", "alice@example.com")
	require.NoError(t, err)
	config.AppConfig.JWTKey = "test-secret"

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoles(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp(RequireRoles("Admin"))

	donorToken, err := GenerateJWT(1, "alice", "Donor", "alice@example.com")
	require.NoError(t, err)
	adminToken, err := GenerateJWT(2, "root", "Admin", "root@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+donorToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
