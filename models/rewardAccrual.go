package models

import "time"

const (
	AccrualPending = "pending"
	AccrualDone    = "done"
	AccrualFailed  = "failed"
)

// RewardAccrual is an outbox row written in the same transaction as a
// checkout. A background worker applies the points to the customer
// balance and marks the row done, retrying on failure.
type RewardAccrual struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID uint   `gorm:"not null;index" json:"transaction_id"`
	CustomerID    uint   `gorm:"not null;index" json:"customer_id"`
	Points        int    `gorm:"not null" json:"points"`
	Status        string `gorm:"type:enum('pending','done','failed');not null;default:'pending';index" json:"status"`
	Attempts      int    `gorm:"not null;default:0" json:"attempts"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
