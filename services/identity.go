package services

import (
	"charityhub/models"
	"errors"

	"gorm.io/gorm"
)

// Identity is the authenticated context attached to every operation. It is
// produced by the JWT middleware and trusted here; the services only evaluate
// authorization predicates on top of it.
type Identity struct {
	UserID uint
	Role   string
}

// requireRole checks that the actor holds one of the given roles
func requireRole(actor Identity, roles ...string) error {
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return ErrUnauthorized
}

// approvedNGOProfile resolves the acting NGO's profile and enforces the
// admin-approval business rule for NGO accounts.
func approvedNGOProfile(db *gorm.DB, actor Identity) (*models.NGOProfile, error) {
	if err := requireRole(actor, models.RoleNGO); err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsApproved {
		return nil, ErrUnauthorized
	}

	var profile models.NGOProfile
	if err := db.Where("user_id = ?", actor.UserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// donorProfile resolves the acting donor's profile
func donorProfile(db *gorm.DB, actor Identity) (*models.DonorProfile, error) {
	if err := requireRole(actor, models.RoleDonor); err != nil {
		return nil, err
	}

	var profile models.DonorProfile
	if err := db.Where("user_id = ?", actor.UserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
