package causeController

import (
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/services"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ApprovedCauses returns all donor-visible donation requests. Publicly
// accessible.
func ApprovedCauses(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	requests, err := moderation.VisibleRequests(c.Query("category"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Approved causes fetched.", requests)
}

// Categories returns all categories. Publicly accessible.
func Categories(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	categories, err := moderation.Categories()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched.", categories)
}

// Cause returns a single donor-visible donation request. Publicly accessible.
func Cause(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.VisibleRequest(uint(requestID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cause fetched.", request)
}
