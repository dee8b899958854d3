package models

import (
	"gorm.io/gorm"
)

// Donation is one contribution transaction against a donation request.
// Rows are immutable once created; there is no update or delete path outside
// of the explicit request/category cascades.
type Donation struct {
	gorm.Model
	DonorID           uint    `gorm:"not null;index" json:"donorId"`
	DonationRequestID uint    `gorm:"not null;index" json:"donationRequestId"`
	AmountDonated     float64 `gorm:"type:numeric(10,2);not null" json:"amountDonated"`
	TransactionRef    string  `gorm:"type:varchar(64);index" json:"transactionRef"` // placeholder for payment gateway id

	// Relations
	Donor           DonorProfile    `gorm:"foreignKey:DonorID" json:"-"`
	DonationRequest DonationRequest `gorm:"foreignKey:DonationRequestID" json:"donationRequest,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
