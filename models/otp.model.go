package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP stores one-time codes for the forgot-password flow
type OTP struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Email       string    `gorm:"not null;index" json:"email"`
	Code        string    `gorm:"type:varchar(10);not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expiresAt"`
	IsUsed      bool      `gorm:"default:false" json:"isUsed"`
	Description string    `gorm:"type:varchar(100)" json:"description"`
}

func (OTP) TableName() string {
	return "otps"
}
