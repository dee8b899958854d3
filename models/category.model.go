package models

import (
	"gorm.io/gorm"
)

// Category is a simple tag grouping donation requests
type Category struct {
	gorm.Model
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	DonationRequests []DonationRequest `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
