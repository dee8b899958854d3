package main

import (
	"charityhub/config"
	"charityhub/database"
	adminRoutes "charityhub/routers/adminRoutes"
	authRoutes "charityhub/routers/authRoutes"
	causeRoutes "charityhub/routers/causeRoutes"
	donorRoutes "charityhub/routers/donorRoutes"
	ngoRoutes "charityhub/routers/ngoRoutes"
	userRoutes "charityhub/routers/userRoutes"
	"charityhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	causeRoutes.SetupCauseRoutes(app)
	ngoRoutes.SetupNGORoutes(app)
	donorRoutes.SetupDonorRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	scheduler := utils.InitializeOTPScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
