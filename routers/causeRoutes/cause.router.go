package causeRoutes

import (
	causeController "charityhub/controllers/cause"

	"github.com/gofiber/fiber/v2"
)

// Public browsing routes, no authentication required
func SetupCauseRoutes(app *fiber.App) {
	causeGroup := app.Group("/api/causes")

	causeGroup.Get("/", causeController.ApprovedCauses)
	causeGroup.Get("/categories", causeController.Categories)
	causeGroup.Get("/:id", causeController.Cause)
}
