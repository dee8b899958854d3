package adminRoutes

import (
	adminController "charityhub/controllers/admin"
	"charityhub/middleware"
	"charityhub/models"
	adminValidator "charityhub/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin))

	adminGroup.Get("/stats", adminController.Stats)

	adminGroup.Get("/ngos/pending", adminController.PendingNGOs)
	adminGroup.Put("/ngos/:id/approve", adminController.ApproveNGO)
	adminGroup.Delete("/ngos/:id/reject", adminController.RejectNGO)

	adminGroup.Get("/donation-requests", adminController.AllRequests)
	adminGroup.Put("/donation-requests/:id/approve", adminController.ApproveRequest)
	adminGroup.Put("/donation-requests/:id/reject", adminController.RejectRequest)

	adminGroup.Post("/categories", adminValidator.CreateCategory(), adminController.CreateCategory)
	adminGroup.Get("/categories", adminController.Categories)
	adminGroup.Delete("/categories/:id", adminController.DeleteCategory)
}
