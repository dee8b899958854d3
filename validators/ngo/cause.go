package ngoValidator

import (
	"charityhub/middleware"
	"charityhub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCauseInput is the payload for posting a new donation request
type CreateCauseInput struct {
	CategoryID   uint    `json:"categoryId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	AmountNeeded float64 `json:"amountNeeded"`
	ImageURL     string  `json:"imageUrl"`
}

// CreateCause validates a new donation request payload
func CreateCause() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCauseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		fieldErrors := make(map[string]string)

		if reqData.CategoryID == 0 {
			fieldErrors["categoryId"] = "Category is required!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			fieldErrors["title"] = "Title must be at least 3 characters!"
		}
		if len(reqData.Title) > 255 {
			fieldErrors["title"] = "Title must be at most 255 characters!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			fieldErrors["description"] = "Description is required!"
		}
		if !utils.IsValidCurrency(reqData.AmountNeeded) {
			fieldErrors["amountNeeded"] = "Amount needed must be a positive value with at most two decimals!"
		}

		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedCreateCause", reqData)
		return c.Next()
	}
}

// UpdateCauseInput is the payload for editing a donation request.
// Nil fields are left unchanged.
type UpdateCauseInput struct {
	CategoryID   *uint    `json:"categoryId"`
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	AmountNeeded *float64 `json:"amountNeeded"`
	ImageURL     *string  `json:"imageUrl"`
}

// UpdateCause validates a donation request edit payload
func UpdateCause() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCauseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		fieldErrors := make(map[string]string)

		if reqData.Title != nil {
			if len(strings.TrimSpace(*reqData.Title)) < 3 {
				fieldErrors["title"] = "Title must be at least 3 characters!"
			}
			if len(*reqData.Title) > 255 {
				fieldErrors["title"] = "Title must be at most 255 characters!"
			}
		}
		if reqData.Description != nil && strings.TrimSpace(*reqData.Description) == "" {
			fieldErrors["description"] = "Description cannot be empty!"
		}
		if reqData.AmountNeeded != nil && !utils.IsValidCurrency(*reqData.AmountNeeded) {
			fieldErrors["amountNeeded"] = "Amount needed must be a positive value with at most two decimals!"
		}
		if reqData.CategoryID != nil && *reqData.CategoryID == 0 {
			fieldErrors["categoryId"] = "Category is required!"
		}

		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedUpdateCause", reqData)
		return c.Next()
	}
}
