package donorValidator

import (
	"charityhub/middleware"
	"charityhub/utils"

	"github.com/gofiber/fiber/v2"
)

// DonateInput is the payload for making a donation
type DonateInput struct {
	AmountDonated float64 `json:"amountDonated"`
}

// Donate validates a donation payload
func Donate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DonateInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		fieldErrors := make(map[string]string)

		if !utils.IsValidCurrency(reqData.AmountDonated) {
			fieldErrors["amountDonated"] = "Amount donated must be a positive value with at most two decimals!"
		}

		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedDonate", reqData)
		return c.Next()
	}
}
