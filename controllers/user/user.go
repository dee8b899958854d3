package userController

import (
	"charityhub/config"
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetMyProfile returns the authenticated user together with the
// role-specific profile
func GetMyProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	response := fiber.Map{"user": user}

	switch user.Role {
	case models.RoleNGO:
		var profile models.NGOProfile
		if err := database.Database.Db.Where("user_id = ?", userId).First(&profile).Error; err == nil {
			response["ngoProfile"] = profile
		}
	case models.RoleDonor:
		var profile models.DonorProfile
		if err := database.Database.Db.Where("user_id = ?", userId).First(&profile).Error; err == nil {
			response["donorProfile"] = profile
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched.", response)
}

// UpdateMyProfile updates account fields and the role-specific profile
func UpdateMyProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`

		NGOProfile *struct {
			OrganizationName   string `json:"organizationName"`
			RegistrationNumber string `json:"registrationNumber"`
			ContactPerson      string `json:"contactPerson"`
			PhoneNumber        string `json:"phoneNumber"`
			Address            string `json:"address"`
			WebsiteURL         string `json:"websiteUrl"`
			Description        string `json:"description"`
		} `json:"ngoProfile"`

		DonorProfile *struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"donorProfile"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Re-check uniqueness when identifying fields change
	if reqData.Username != "" && reqData.Username != user.Username {
		if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
		}
		user.Username = reqData.Username
	}
	if reqData.Email != "" && reqData.Email != user.Email {
		if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already taken!", nil)
		}
		user.Email = reqData.Email
	}
	if reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
		}
		user.Password = string(hashedPassword)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if user.Role == models.RoleNGO && reqData.NGOProfile != nil {
			var profile models.NGOProfile
			if err := tx.Where("user_id = ?", userId).First(&profile).Error; err != nil {
				return err
			}
			in := reqData.NGOProfile
			if in.OrganizationName != "" && in.OrganizationName != profile.OrganizationName {
				if err := tx.Where("organization_name = ?", in.OrganizationName).First(&models.NGOProfile{}).Error; err == nil {
					return gorm.ErrDuplicatedKey
				}
				profile.OrganizationName = in.OrganizationName
			}
			if in.RegistrationNumber != "" {
				profile.RegistrationNumber = in.RegistrationNumber
			}
			if in.ContactPerson != "" {
				profile.ContactPerson = in.ContactPerson
			}
			if in.PhoneNumber != "" {
				profile.PhoneNumber = in.PhoneNumber
			}
			if in.Address != "" {
				profile.Address = in.Address
			}
			if in.WebsiteURL != "" {
				profile.WebsiteURL = in.WebsiteURL
			}
			if in.Description != "" {
				profile.Description = in.Description
			}
			return tx.Save(&profile).Error
		}

		if user.Role == models.RoleDonor && reqData.DonorProfile != nil {
			var profile models.DonorProfile
			if err := tx.Where("user_id = ?", userId).First(&profile).Error; err != nil {
				return err
			}
			if reqData.DonorProfile.FirstName != "" {
				profile.FirstName = reqData.DonorProfile.FirstName
			}
			if reqData.DonorProfile.LastName != "" {
				profile.LastName = reqData.DonorProfile.LastName
			}
			return tx.Save(&profile).Error
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Organization name is already registered!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", user)
}
