package adminController

import (
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/services"
	adminValidator "charityhub/validators/admin"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func actor(c *fiber.Ctx) services.Identity {
	return services.Identity{
		UserID: c.Locals("userId").(uint),
		Role:   c.Locals("role").(string),
	}
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// Stats returns the admin dashboard counters
func Stats(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	stats, err := moderation.Stats(actor(c))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched.", stats)
}

// PendingNGOs lists NGO accounts waiting for approval
func PendingNGOs(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	ngos, err := moderation.PendingNGOs(actor(c))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending NGOs fetched.", ngos)
}

// ApproveNGO approves an NGO account
func ApproveNGO(c *fiber.Ctx) error {
	ngoID, err := paramID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid NGO id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	ngo, err := moderation.ApproveNGO(actor(c), ngoID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "NGO "+ngo.Username+" has been approved.", ngo)
}

// RejectNGO removes an NGO account and its profile
func RejectNGO(c *fiber.Ctx) error {
	ngoID, err := paramID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid NGO id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	if err := moderation.RejectNGO(actor(c), ngoID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "NGO has been rejected and removed.", nil)
}

// AllRequests lists every donation request regardless of status
func AllRequests(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	requests, err := moderation.AllRequests(actor(c))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation requests fetched.", requests)
}

// ApproveRequest moves a Pending donation request to Approved
func ApproveRequest(c *fiber.Ctx) error {
	requestID, err := paramID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.ApproveRequest(actor(c), requestID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation request approved successfully.", request)
}

// RejectRequest moves a Pending donation request to Rejected
func RejectRequest(c *fiber.Ctx) error {
	requestID, err := paramID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	request, err := moderation.RejectRequest(actor(c), requestID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation request rejected successfully.", request)
}

// CreateCategory adds a new category
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCategory").(*adminValidator.CreateCategoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	category, err := moderation.CreateCategory(actor(c), reqData.Name, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created.", category)
}

// Categories lists all categories
func Categories(c *fiber.Ctx) error {
	moderation := services.NewModeration(database.Database.Db)
	categories, err := moderation.Categories()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched.", categories)
}

// DeleteCategory removes a category with its requests and their donations
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	moderation := services.NewModeration(database.Database.Db)
	if err := moderation.DeleteCategory(actor(c), categoryID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully.", nil)
}
