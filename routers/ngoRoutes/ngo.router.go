package ngoRoutes

import (
	ngoController "charityhub/controllers/ngo"
	"charityhub/middleware"
	"charityhub/models"
	ngoValidator "charityhub/validators/ngo"

	"github.com/gofiber/fiber/v2"
)

func SetupNGORoutes(app *fiber.App) {
	ngoGroup := app.Group("/api/ngo", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleNGO))

	ngoGroup.Post("/causes", ngoValidator.CreateCause(), ngoController.CreateCause)
	ngoGroup.Get("/causes", ngoController.MyCauses)
	ngoGroup.Put("/causes/:id", ngoValidator.UpdateCause(), ngoController.UpdateCause)
	ngoGroup.Delete("/causes/:id", ngoController.DeleteCause)
	ngoGroup.Post("/causes/upload-image", ngoController.UploadCauseImage)
}
