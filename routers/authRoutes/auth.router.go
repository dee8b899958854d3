package authRoutes

import (
	authControllers "charityhub/controllers/auth"
	"charityhub/middleware"
	authValidators "charityhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/forgot/password/send/otp", authValidators.ForgotPassword(), authControllers.ForgotPasswordSendOTP)
	authGroup.Patch("/forgot/password/verify/otp", authValidators.VerifyOTP(), authControllers.ForgotPasswordVerifyOTP)
	authGroup.Patch("/reset/password", authValidators.ResetPassword(), middleware.JWTMiddleware, authControllers.ResetPassword)
}
