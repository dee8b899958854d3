package userRoutes

import (
	userController "charityhub/controllers/user"
	"charityhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/me", middleware.JWTMiddleware, userController.GetMyProfile)
	userGroup.Put("/me", middleware.JWTMiddleware, userController.UpdateMyProfile)
}
