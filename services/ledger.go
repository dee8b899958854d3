package services

import (
	"charityhub/models"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger applies donation transactions to approved requests. The balance
// update, the donation row and the Completed flip all happen in one database
// transaction; the remaining-amount ceiling is enforced inside the UPDATE
// itself so concurrent donations can never jointly overshoot the target.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// ApplyDonation records a donation of amount by the acting donor against the
// given request. Returns the created donation and the updated request
// snapshot. Fails without side effects on any guard violation.
func (l *Ledger) ApplyDonation(actor Identity, requestID uint, amount float64) (*models.Donation, *models.DonationRequest, error) {
	profile, err := donorProfile(l.db, actor)
	if err != nil {
		return nil, nil, err
	}

	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	donation := models.Donation{
		DonorID:           profile.ID,
		DonationRequestID: requestID,
		AmountDonated:     amount,
		TransactionRef:    uuid.NewString(),
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		// Conditional increment: only an Approved request with enough
		// remaining capacity is touched. Zero affected rows means some guard
		// failed; classify below without having changed anything.
		res := tx.Model(&models.DonationRequest{}).
			Where("id = ? AND status = ? AND amount_received + ? <= amount_needed",
				requestID, models.RequestStatusApproved, amount).
			UpdateColumn("amount_received", gorm.Expr("amount_received + ?", amount))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var request models.DonationRequest
			if err := tx.First(&request, requestID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if request.Status != models.RequestStatusApproved {
				return ErrInvalidState
			}
			return ErrAmountExceedsRemaining
		}

		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		// Same atomic step: a request that just reached its target completes
		return tx.Model(&models.DonationRequest{}).
			Where("id = ? AND status = ? AND amount_received >= amount_needed",
				requestID, models.RequestStatusApproved).
			Update("status", models.RequestStatusCompleted).Error
	})
	if err != nil {
		return nil, nil, err
	}

	var request models.DonationRequest
	if err := l.db.Preload("Category").First(&request, requestID).Error; err != nil {
		return nil, nil, err
	}
	return &donation, &request, nil
}

// DonationsForDonor returns the acting donor's donation history, most recent
// first, with the target request and its NGO preloaded for display.
func (l *Ledger) DonationsForDonor(actor Identity) ([]models.Donation, error) {
	profile, err := donorProfile(l.db, actor)
	if err != nil {
		return nil, err
	}

	var donations []models.Donation
	if err := l.db.Where("donor_id = ?", profile.ID).
		Preload("DonationRequest").
		Preload("DonationRequest.NGO").
		Preload("DonationRequest.Category").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
