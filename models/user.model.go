package models

import (
	"gorm.io/gorm"
)

// Role enum values
const (
	RoleAdmin = "Admin"
	RoleNGO   = "NGO"
	RoleDonor = "Donor"
)

type User struct {
	gorm.Model
	Username   string `gorm:"unique;not null" json:"username"`
	Email      string `gorm:"unique;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Role string `gorm:"type:varchar(20);default:'Donor'" json:"role"` // Admin, NGO, Donor
	// Set explicitly on every create; a column default would make GORM skip
	// the field when it is false, silently approving fresh NGO accounts.
	IsApproved bool `gorm:"not null" json:"isApproved"` // false for freshly registered NGOs

	// Relations - one profile per role, omit in JSON by default
	NGOProfile   *NGOProfile   `gorm:"foreignKey:UserID" json:"-"`
	DonorProfile *DonorProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
