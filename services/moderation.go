package services

import (
	"charityhub/models"
	"errors"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Moderation governs the donation-request lifecycle: creation by approved
// NGOs, approval/rejection by admins, visibility rules, category management
// and the explicit delete cascades. Status only ever moves along
// Pending -> Approved/Rejected and Approved -> Completed (the latter is done
// by the Ledger, never here).
type Moderation struct {
	db *gorm.DB
}

func NewModeration(db *gorm.DB) *Moderation {
	return &Moderation{db: db}
}

// CreateRequestInput carries the validated fields for a new donation request
type CreateRequestInput struct {
	CategoryID   uint
	Title        string
	Description  string
	AmountNeeded float64
	ImageURL     string
}

// UpdateRequestInput carries the validated fields for a request edit.
// Nil pointers mean "leave unchanged".
type UpdateRequestInput struct {
	CategoryID   *uint
	Title        *string
	Description  *string
	AmountNeeded *float64
	ImageURL     *string
}

// AuthorizeNGO checks that the actor is an admin-approved NGO account
func (m *Moderation) AuthorizeNGO(actor Identity) error {
	_, err := approvedNGOProfile(m.db, actor)
	return err
}

// CreateRequest creates a donation request in status Pending for the acting
// NGO. The actor must hold the NGO role and be admin-approved.
func (m *Moderation) CreateRequest(actor Identity, in CreateRequestInput) (*models.DonationRequest, error) {
	profile, err := approvedNGOProfile(m.db, actor)
	if err != nil {
		return nil, err
	}

	if in.AmountNeeded <= 0 {
		return nil, ErrInvalidAmount
	}

	var category models.Category
	if err := m.db.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	request := models.DonationRequest{
		NGOID:        profile.ID,
		CategoryID:   category.ID,
		Title:        in.Title,
		Description:  in.Description,
		AmountNeeded: in.AmountNeeded,
		ImageURL:     in.ImageURL,
		Status:       models.RequestStatusPending,
	}

	if err := m.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// MyRequests returns all requests owned by the acting NGO, any status
func (m *Moderation) MyRequests(actor Identity) ([]models.DonationRequest, error) {
	profile, err := approvedNGOProfile(m.db, actor)
	if err != nil {
		return nil, err
	}

	var requests []models.DonationRequest
	if err := m.db.Where("ngo_id = ?", profile.ID).
		Preload("Category").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequest edits a request owned by the acting NGO. Edits are allowed
// while the request is not Completed; monetary and text fields are
// re-validated and AmountNeeded can never drop below what was already
// received. AmountReceived is never touched here.
func (m *Moderation) UpdateRequest(actor Identity, requestID uint, in UpdateRequestInput) (*models.DonationRequest, error) {
	profile, err := approvedNGOProfile(m.db, actor)
	if err != nil {
		return nil, err
	}

	var request models.DonationRequest
	if err := m.db.Where("id = ? AND ngo_id = ?", requestID, profile.ID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if request.Status == models.RequestStatusCompleted {
		return nil, ErrInvalidState
	}

	if in.AmountNeeded != nil {
		if *in.AmountNeeded <= 0 || *in.AmountNeeded < request.AmountReceived {
			return nil, ErrInvalidAmount
		}
		request.AmountNeeded = *in.AmountNeeded
	}
	if in.CategoryID != nil {
		var category models.Category
		if err := m.db.First(&category, *in.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		request.CategoryID = category.ID
	}
	if in.Title != nil {
		request.Title = *in.Title
	}
	if in.Description != nil {
		request.Description = *in.Description
	}
	if in.ImageURL != nil {
		request.ImageURL = *in.ImageURL
	}

	if err := m.db.Save(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// DeleteRequest removes a request owned by the acting NGO together with its
// donations. Completed requests are kept for the donation history.
func (m *Moderation) DeleteRequest(actor Identity, requestID uint) error {
	profile, err := approvedNGOProfile(m.db, actor)
	if err != nil {
		return err
	}

	var request models.DonationRequest
	if err := m.db.Where("id = ? AND ngo_id = ?", requestID, profile.ID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if request.Status == models.RequestStatusCompleted {
		return ErrInvalidState
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("donation_request_id = ?", request.ID).Delete(&models.Donation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
}

// ApproveRequest moves a Pending request to Approved, recording the acting
// admin and the approval timestamp. The status guard runs inside the UPDATE
// so a concurrent second approval loses on affected-row count.
func (m *Moderation) ApproveRequest(actor Identity, requestID uint) (*models.DonationRequest, error) {
	return m.moderate(actor, requestID, models.RequestStatusApproved)
}

// RejectRequest moves a Pending request to Rejected
func (m *Moderation) RejectRequest(actor Identity, requestID uint) (*models.DonationRequest, error) {
	return m.moderate(actor, requestID, models.RequestStatusRejected)
}

func (m *Moderation) moderate(actor Identity, requestID uint, target models.RequestStatus) (*models.DonationRequest, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	nowTime := time.Now()
	res := m.db.Model(&models.DonationRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":         target,
			"approved_by_id": actor.UserID,
			"approval_date":  nowTime,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	var request models.DonationRequest
	if err := m.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if res.RowsAffected == 0 {
		// Row exists but was not Pending
		return nil, ErrInvalidState
	}
	return &request, nil
}

// AllRequests returns every request regardless of status, newest first.
// Admin only.
func (m *Moderation) AllRequests(actor Identity) ([]models.DonationRequest, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var requests []models.DonationRequest
	if err := m.db.Preload("NGO").Preload("Category").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// VisibleRequests lists requests visible to donor-facing callers: Approved
// and Completed only. An optional category name narrows the listing; an
// unknown category is NotFound.
func (m *Moderation) VisibleRequests(categoryName string) ([]models.DonationRequest, error) {
	query := m.db.Where("status IN ?", []models.RequestStatus{
		models.RequestStatusApproved,
		models.RequestStatusCompleted,
	})

	if categoryName != "" {
		var category models.Category
		if err := m.db.Where("name = ?", categoryName).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var requests []models.DonationRequest
	if err := query.Preload("NGO").Preload("Category").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// VisibleRequest returns a single donor-facing request. Pending and Rejected
// requests are reported as NotFound rather than revealed.
func (m *Moderation) VisibleRequest(requestID uint) (*models.DonationRequest, error) {
	var request models.DonationRequest
	err := m.db.Where("id = ? AND status IN ?", requestID, []models.RequestStatus{
		models.RequestStatusApproved,
		models.RequestStatusCompleted,
	}).Preload("NGO").Preload("Category").First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// CreateCategory adds a category. Admin only; duplicate names conflict.
// The unique index is the arbiter, so concurrent creates cannot slip past.
func (m *Moderation) CreateCategory(actor Identity, name, description string) (*models.Category, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	category := models.Category{Name: name, Description: description}
	if err := m.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &category, nil
}

// Categories lists all categories. Publicly visible.
func (m *Moderation) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := m.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory removes a category and cascades to its donation requests
// and their donations, all in one transaction.
func (m *Moderation) DeleteCategory(actor Identity, categoryID uint) error {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return err
	}

	var category models.Category
	if err := m.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		var requestIDs []uint
		if err := tx.Model(&models.DonationRequest{}).
			Where("category_id = ?", category.ID).
			Pluck("id", &requestIDs).Error; err != nil {
			return err
		}

		if len(requestIDs) > 0 {
			if err := tx.Where("donation_request_id IN ?", requestIDs).Delete(&models.Donation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", requestIDs).Delete(&models.DonationRequest{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&category).Error
	})
}

// PendingNGOs lists NGO accounts waiting for admin approval
func (m *Moderation) PendingNGOs(actor Identity) ([]models.User, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var ngos []models.User
	if err := m.db.Where("role = ? AND is_approved = ?", models.RoleNGO, false).
		Order("created_at ASC").
		Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

// ApproveNGO marks an NGO account as admin-approved
func (m *Moderation) ApproveNGO(actor Identity, ngoUserID uint) (*models.User, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var user models.User
	if err := m.db.Where("id = ? AND role = ?", ngoUserID, models.RoleNGO).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.IsApproved = true
	if err := m.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RejectNGO removes an NGO account together with its profile, its donation
// requests and their donations
func (m *Moderation) RejectNGO(actor Identity, ngoUserID uint) error {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return err
	}

	var user models.User
	if err := m.db.Where("id = ? AND role = ?", ngoUserID, models.RoleNGO).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		var profile models.NGOProfile
		if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			var requestIDs []uint
			if err := tx.Model(&models.DonationRequest{}).
				Where("ngo_id = ?", profile.ID).
				Pluck("id", &requestIDs).Error; err != nil {
				return err
			}

			if len(requestIDs) > 0 {
				if err := tx.Where("donation_request_id IN ?", requestIDs).Delete(&models.Donation{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", requestIDs).Delete(&models.DonationRequest{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Delete(&user).Error
	})
}

// DashboardStats summarizes platform activity for the admin dashboard
type DashboardStats struct {
	TotalNGOs        int64   `json:"totalNgos"`
	PendingApprovals int64   `json:"pendingApprovals"`
	TotalDonations   float64 `json:"totalDonations"`
	DonatedToday     float64 `json:"donatedToday"`
}

// Stats computes the admin dashboard counters
func (m *Moderation) Stats(actor Identity) (*DashboardStats, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var stats DashboardStats
	if err := m.db.Model(&models.User{}).
		Where("role = ?", models.RoleNGO).
		Count(&stats.TotalNGOs).Error; err != nil {
		return nil, err
	}
	if err := m.db.Model(&models.User{}).
		Where("role = ? AND is_approved = ?", models.RoleNGO, false).
		Count(&stats.PendingApprovals).Error; err != nil {
		return nil, err
	}

	var total *float64
	if err := m.db.Model(&models.Donation{}).
		Select("SUM(amount_donated)").
		Scan(&total).Error; err != nil {
		return nil, err
	}
	if total != nil {
		stats.TotalDonations = *total
	}

	var today *float64
	if err := m.db.Model(&models.Donation{}).
		Select("SUM(amount_donated)").
		Where("created_at >= ?", now.BeginningOfDay()).
		Scan(&today).Error; err != nil {
		return nil, err
	}
	if today != nil {
		stats.DonatedToday = *today
	}

	return &stats, nil
}
