package models

import (
	"gorm.io/gorm"
)

// NGOProfile holds organization details for users with the NGO role
type NGOProfile struct {
	gorm.Model
	UserID             uint   `gorm:"unique;not null;index" json:"userId"`
	OrganizationName   string `gorm:"unique;not null" json:"organizationName"`
	RegistrationNumber string `gorm:"type:varchar(80)" json:"registrationNumber"`
	ContactPerson      string `gorm:"not null" json:"contactPerson"`
	PhoneNumber        string `gorm:"type:varchar(20)" json:"phoneNumber"`
	Address            string `gorm:"type:varchar(255)" json:"address"`
	WebsiteURL         string `gorm:"type:varchar(255)" json:"websiteUrl"`
	Description        string `gorm:"type:text" json:"description"`

	DonationRequests []DonationRequest `gorm:"foreignKey:NGOID" json:"-"`
}

func (NGOProfile) TableName() string {
	return "ngo_profiles"
}
