package models

type InventoryItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:100;not null;uniqueIndex" json:"item"`
	Vendor    *string `gorm:"size:100" json:"vendor,omitempty"`
	UnitPrice float64 `gorm:"not null;default:0" json:"unit_price"`
	Quantity  float64 `gorm:"not null;default:0" json:"quantity"`
}
