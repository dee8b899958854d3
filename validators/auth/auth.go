package authValidator

import (
	"charityhub/middleware"
	"charityhub/models"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func translate(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["body"] = "Invalid request body!"
		return fieldErrors
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = "This field is required!"
		case "email":
			fieldErrors[fe.Field()] = "Invalid email address!"
		case "min":
			fieldErrors[fe.Field()] = "Value is too short!"
		case "max":
			fieldErrors[fe.Field()] = "Value is too long!"
		case "oneof":
			fieldErrors[fe.Field()] = "Invalid value!"
		default:
			fieldErrors[fe.Field()] = "Invalid value!"
		}
	}
	return fieldErrors
}

// RegisterInput is the payload for account registration. NGO registrations
// additionally carry organization details; donors carry their name.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=Donor NGO"`

	// NGO profile fields
	OrganizationName   string `json:"organizationName"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactPerson      string `json:"contactPerson"`
	PhoneNumber        string `json:"phoneNumber"`
	Address            string `json:"address"`
	WebsiteURL         string `json:"websiteUrl"`
	Description        string `json:"description"`

	// Donor profile fields
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register validates the registration payload
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role == "" {
			reqData.Role = models.RoleDonor
		}

		fieldErrors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			fieldErrors = translate(err)
		}

		if reqData.Role == models.RoleNGO {
			if strings.TrimSpace(reqData.OrganizationName) == "" {
				fieldErrors["organizationName"] = "Organization name is required for NGO accounts!"
			}
			if strings.TrimSpace(reqData.ContactPerson) == "" {
				fieldErrors["contactPerson"] = "Contact person is required for NGO accounts!"
			}
		}

		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// LoginInput is the payload for login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login validates the login payload
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, translate(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ForgotPasswordInput carries the email to send the reset OTP to
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword validates the forgot-password payload
func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ForgotPasswordInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, translate(err))
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

// VerifyOTPInput carries the email and the OTP code
type VerifyOTPInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// VerifyOTP validates the OTP verification payload
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyOTPInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, translate(err))
		}

		c.Locals("validatedVerifyOTP", reqData)
		return c.Next()
	}
}

// ResetPasswordInput carries the new password
type ResetPasswordInput struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword validates the reset-password payload
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, translate(err))
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
