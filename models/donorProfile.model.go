package models

import (
	"gorm.io/gorm"
)

// DonorProfile holds personal details for users with the Donor role
type DonorProfile struct {
	gorm.Model
	UserID    uint   `gorm:"unique;not null;index" json:"userId"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `json:"lastName"`

	Donations []Donation `gorm:"foreignKey:DonorID" json:"-"`
}

func (DonorProfile) TableName() string {
	return "donor_profiles"
}
