package models

type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Category string  `gorm:"size:50;not null;index" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`

	Ingredients []MenuIngredient `json:"ingredients,omitempty"`
}

// MenuIngredient links a menu item to the inventory it consumes per unit sold.
type MenuIngredient struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	MenuItemID       uint    `gorm:"not null;index" json:"menu_item_id"`
	InventoryID      uint    `gorm:"not null;index" json:"inventory_id"`
	QuantityRequired float64 `gorm:"not null" json:"quantity_required"`
}
