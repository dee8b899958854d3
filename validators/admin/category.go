package adminValidator

import (
	"charityhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCategoryInput is the payload for creating a category
type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory validates a category creation payload
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		fieldErrors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			fieldErrors["name"] = "Category name is required!"
		}
		if len(reqData.Name) > 100 {
			fieldErrors["name"] = "Category name must be at most 100 characters!"
		}

		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedCreateCategory", reqData)
		return c.Next()
	}
}
