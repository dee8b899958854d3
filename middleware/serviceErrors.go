package middleware

import (
	"charityhub/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse translates a services error kind into the JSON
// envelope and the HTTP status the presentation contract defines:
// NotFound -> 404, InvalidAmount/AmountExceedsRemaining -> 400,
// InvalidState/Conflict -> 409, Unauthorized -> 403.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	case errors.Is(err, services.ErrInvalidAmount):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be a positive currency value!", nil)
	case errors.Is(err, services.ErrAmountExceedsRemaining):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Donation amount exceeds remaining amount needed!", nil)
	case errors.Is(err, services.ErrInvalidState):
		return JsonResponse(c, fiber.StatusConflict, false, "Operation not allowed in the current status!", nil)
	case errors.Is(err, services.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, "A record with the same value already exists!", nil)
	case errors.Is(err, services.ErrUnauthorized):
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to perform this action!", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
