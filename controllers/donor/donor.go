package donorController

import (
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/services"
	donorValidator "charityhub/validators/donor"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func actor(c *fiber.Ctx) services.Identity {
	return services.Identity{
		UserID: c.Locals("userId").(uint),
		Role:   c.Locals("role").(string),
	}
}

// ApprovedRequests lists donation requests open or completed for donors,
// optionally filtered by category name
func ApprovedRequests(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	requests, err := moderation.VisibleRequests(c.Query("category"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Approved donation requests fetched.", requests)
}

// ApprovedRequest returns a single donor-visible donation request
func ApprovedRequest(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.VisibleRequest(uint(requestID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation request fetched.", request)
}

// Donate applies a donation to an approved request through the ledger
func Donate(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedDonate").(*donorValidator.DonateInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ledger := services.NewLedger(database.Database.Db)
	donation, request, err := ledger.ApplyDonation(actor(c), uint(requestID), reqData.AmountDonated)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Donation successful.", fiber.Map{
		"donation":        donation,
		"donationRequest": request,
	})
}

// MyDonations returns the acting donor's donation history, most recent first
func MyDonations(c *fiber.Ctx) error {
	ledger := services.NewLedger(database.Database.Db)
	donations, err := ledger.DonationsForDonor(actor(c))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation history fetched.", donations)
}
