package models

import (
	"time"
)

// Transaction is one completed checkout. Rows are never updated;
// they are hard-deleted only by the Z-report day close.
type Transaction struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Amount        float64 `gorm:"not null;default:0" json:"amount"`
	PaymentMethod *string `gorm:"type:enum('cash','card','mobile')" json:"payment_method,omitempty"`
	CustomerID    *uint   `gorm:"index" json:"customer_id,omitempty"`
	EmployeeID    *uint   `gorm:"index" json:"employee_id,omitempty"`

	Items []TransactionItem `json:"items,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TransactionItem is one purchased unit. A cart entry with quantity N
// and K toppings expands to N rows for the base drink plus N rows per
// topping. Price is the menu price at the time of sale.
type TransactionItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TransactionID uint    `gorm:"not null;index" json:"transaction_id"`
	ItemID        uint    `gorm:"not null;index" json:"item_id"`
	Price         float64 `gorm:"not null" json:"price"`
}
