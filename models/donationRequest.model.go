package models

import (
	"time"

	"gorm.io/gorm"
)

// RequestStatus defines the lifecycle status of a donation request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusApproved  RequestStatus = "Approved"
	RequestStatusRejected  RequestStatus = "Rejected"
	RequestStatusCompleted RequestStatus = "Completed"
)

// DonationRequest is a funding ask posted by an NGO.
// AmountReceived is only ever mutated by the donation ledger; status moves
// Pending -> Approved/Rejected (admin) and Approved -> Completed (ledger).
type DonationRequest struct {
	gorm.Model
	NGOID      uint `gorm:"not null;index" json:"ngoId"`
	CategoryID uint `gorm:"not null;index" json:"categoryId"`

	Title          string        `gorm:"not null" json:"title"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	AmountNeeded   float64       `gorm:"type:numeric(10,2);not null" json:"amountNeeded"`
	AmountReceived float64       `gorm:"type:numeric(10,2);not null;default:0" json:"amountReceived"`
	ImageURL       string        `gorm:"type:varchar(255)" json:"imageUrl"` // opaque object-storage URL
	Status         RequestStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	ApprovedByID *uint      `gorm:"index" json:"approvedById"` // admin who approved/rejected
	ApprovalDate *time.Time `json:"approvalDate"`

	// Relations
	NGO        NGOProfile `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
	Category   Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ApprovedBy *User      `gorm:"foreignKey:ApprovedByID" json:"-"`
	Donations  []Donation `gorm:"foreignKey:DonationRequestID" json:"-"`
}

func (DonationRequest) TableName() string {
	return "donation_requests"
}

// Remaining returns the amount still needed to reach the funding target
func (r *DonationRequest) Remaining() float64 {
	return r.AmountNeeded - r.AmountReceived
}
