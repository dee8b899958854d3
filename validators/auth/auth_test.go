package authValidator

import (
	"strings"
	"testing"

	"net/http/httptest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler fiber.Handler, body string) int {
	t.Helper()

	app := fiber.New()
	app.Post("/", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegisterValidation(t *testing.T) {
	// Donor with all required fields passes
	status := postJSON(t, Register(), `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "supersecret",
		"role": "Donor",
		"firstName": "Alice"
	}`)
	assert.Equal(t, fiber.StatusOK, status)

	// Missing email
	status = postJSON(t, Register(), `{
		"username": "alice",
		"password": "supersecret"
	}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Short password
	status = postJSON(t, Register(), `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "short"
	}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Admin role cannot be self-assigned
	status = postJSON(t, Register(), `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "supersecret",
		"role": "Admin"
	}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// NGO without organization details fails
	status = postJSON(t, Register(), `{
		"username": "helpinghands",
		"email": "ngo@example.com",
		"password": "supersecret",
		"role": "NGO"
	}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// NGO with organization details passes
	status = postJSON(t, Register(), `{
		"username": "helpinghands",
		"email": "ngo@example.com",
		"password": "supersecret",
		"role": "NGO",
		"organizationName": "Helping Hands",
		"contactPerson": "Jordan Lee"
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestVerifyOTPValidation(t *testing.T) {
	status := postJSON(t, VerifyOTP(), `{"email": "alice@example.com", "code": "123456"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status = postJSON(t, VerifyOTP(), `{"email": "alice@example.com", "code": "123"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status = postJSON(t, VerifyOTP(), `{"email": "not-an-email", "code": "123456"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
