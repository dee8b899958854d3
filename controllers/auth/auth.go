package authController

import (
	"charityhub/config"
	"charityhub/database"
	"charityhub/middleware"
	"charityhub/models"
	"charityhub/utils"
	authValidator "charityhub/validators/auth"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a user account with its role profile. NGO accounts start
// unapproved and stay locked out until an admin approves them.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check uniqueness up front for friendly conflicts
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}
	if reqData.Role == models.RoleNGO {
		if err := db.Where("organization_name = ?", reqData.OrganizationName).First(&models.NGOProfile{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Organization name is already registered!", nil)
		}
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:   reqData.Username,
		Email:      reqData.Email,
		Password:   string(hashedPassword),
		Role:       reqData.Role,
		IsApproved: reqData.Role != models.RoleNGO, // NGOs wait for admin approval
	}

	// User and role profile are created together or not at all
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		switch reqData.Role {
		case models.RoleNGO:
			profile := models.NGOProfile{
				UserID:             newUser.ID,
				OrganizationName:   reqData.OrganizationName,
				RegistrationNumber: reqData.RegistrationNumber,
				ContactPerson:      reqData.ContactPerson,
				PhoneNumber:        reqData.PhoneNumber,
				Address:            reqData.Address,
				WebsiteURL:         reqData.WebsiteURL,
				Description:        reqData.Description,
			}
			return tx.Create(&profile).Error
		case models.RoleDonor:
			firstName := reqData.FirstName
			if firstName == "" {
				firstName = reqData.Username
			}
			profile := models.DonorProfile{
				UserID:    newUser.ID,
				FirstName: firstName,
				LastName:  reqData.LastName,
			}
			return tx.Create(&profile).Error
		}
		return nil
	})
	if err != nil {
		// A concurrent registration can slip past the pre-checks; the unique
		// indexes catch it here
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username, email or organization name is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login authenticates by email and password and issues a JWT carrying the
// role claim. Unapproved NGO accounts cannot log in.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if user.Role == models.RoleNGO && !user.IsApproved {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your NGO account is pending admin approval.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
		"role":  user.Role,
	})
}

// ForgotPasswordSendOTP issues a password-reset OTP and emails it
func ForgotPasswordSendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email!", nil)
	}

	otp := utils.GenerateOTP()
	expiresAt := time.Now().Add(5 * time.Minute)

	otpRecord := models.OTP{
		UserID:      user.ID,
		Email:       reqData.Email,
		Code:        otp,
		ExpiresAt:   expiresAt,
		Description: "Forgot Password OTP",
	}

	if err := utils.SendOTPEmail(otp, reqData.Email); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP to email!", nil)
	}

	if err := database.Database.Db.Create(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// ForgotPasswordVerifyOTP verifies the reset code and returns a short-lived
// token the client uses to call the reset endpoint
func ForgotPasswordVerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOTP").(*authValidator.VerifyOTPInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var otpRecord models.OTP
	if err := db.Where("email = ? AND code = ? AND is_used = ?", reqData.Email, reqData.Code, false).
		First(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid OTP or OTP expired!", nil)
	}

	if otpRecord.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "OTP has expired!", nil)
	}

	otpRecord.IsUsed = true
	if err := db.Save(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update OTP status!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Now you can reset your password.", fiber.Map{
		"token": token,
	})
}

// ResetPassword updates the password of the authenticated user
func ResetPassword(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	user.Password = string(hashedPassword)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
