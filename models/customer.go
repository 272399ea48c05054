package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	PhoneNumber  string  `gorm:"size:20;not null;uniqueIndex" json:"phonenumber"`
	Email        string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	RewardPoints int     `gorm:"not null;default:0" json:"rewardspoints"`
	GoogleUserID *string `gorm:"size:100" json:"google_user_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
