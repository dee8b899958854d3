package ngoController

import (
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/services"
	"charityhub/utils"
	ngoValidator "charityhub/validators/ngo"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func actor(c *fiber.Ctx) services.Identity {
	return services.Identity{
		UserID: c.Locals("userId").(uint),
		Role:   c.Locals("role").(string),
	}
}

// CreateCause posts a new donation request in status Pending
func CreateCause(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCause").(*ngoValidator.CreateCauseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.CreateRequest(actor(c), services.CreateRequestInput{
		CategoryID:   reqData.CategoryID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		AmountNeeded: reqData.AmountNeeded,
		ImageURL:     reqData.ImageURL,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Donation request created.", request)
}

// MyCauses lists the acting NGO's own requests, any status
func MyCauses(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	requests, err := moderation.MyRequests(actor(c))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation requests fetched.", requests)
}

// UpdateCause edits a request owned by the acting NGO
func UpdateCause(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateCause").(*ngoValidator.UpdateCauseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.UpdateRequest(actor(c), uint(requestID), services.UpdateRequestInput{
		CategoryID:   reqData.CategoryID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		AmountNeeded: reqData.AmountNeeded,
		ImageURL:     reqData.ImageURL,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation request updated.", request)
}

// DeleteCause removes a request owned by the acting NGO and its donations
func DeleteCause(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	if err := moderation.DeleteRequest(actor(c), uint(requestID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation request deleted successfully.", nil)
}

// UploadCauseImage uploads a cause image to object storage and returns the
// durable URL to attach on create/update
func UploadCauseImage(c *fiber.Ctx) error {
	// Only approved NGOs may upload
	moderation := services.NewModeration(database.Database.Db)
	if err := moderation.AuthorizeNGO(actor(c)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	url, err := utils.UploadImage(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded.", fiber.Map{
		"imageUrl": url,
	})
}
