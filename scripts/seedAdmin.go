package main

import (
	"charityhub/config"
	"charityhub/database"
	"charityhub/models"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account and the default categories. Admin accounts
// cannot be created through the public registration endpoint.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists, skipping", email)
	} else {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		admin := models.User{
			Username:   "admin",
			Email:      email,
			Password:   string(hashedPassword),
			Role:       models.RoleAdmin,
			IsApproved: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin account %s", email)
	}

	defaults := []models.Category{
		{Name: "Education", Description: "Schools, supplies and scholarships"},
		{Name: "Health", Description: "Medical treatment and equipment"},
		{Name: "Disaster Relief", Description: "Emergency response and rebuilding"},
		{Name: "Environment", Description: "Conservation and clean-up projects"},
	}

	created := 0
	for _, category := range defaults {
		if err := db.Where("name = ?", category.Name).First(&models.Category{}).Error; err != nil {
			if err := db.Create(&category).Error; err != nil {
				log.Fatalf("Failed to create category %s: %v", category.Name, err)
			}
			created++
		}
	}
	log.Printf("Seeding done, %d categories created", created)
}
