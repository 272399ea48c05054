package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PositionManager = "manager"
	PositionCashier = "cashier"
)

type Employee struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Position     string `gorm:"type:enum('manager','cashier');not null;default:'cashier'" json:"position"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
