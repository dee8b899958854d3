package donorRoutes

import (
	donorController "charityhub/controllers/donor"
	"charityhub/middleware"
	"charityhub/models"
	donorValidator "charityhub/validators/donor"

	"github.com/gofiber/fiber/v2"
)

func SetupDonorRoutes(app *fiber.App) {
	donorGroup := app.Group("/api/donors", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleDonor))

	donorGroup.Get("/donation-requests", donorController.ApprovedRequests)
	donorGroup.Get("/donation-requests/:id", donorController.ApprovedRequest)
	donorGroup.Post("/donation-requests/:id/donate", donorValidator.Donate(), donorController.Donate)
	donorGroup.Get("/donations", donorController.MyDonations)
}
