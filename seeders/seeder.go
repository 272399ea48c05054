package seeders

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"boba-pos/models"
)

func ptrString(s string) *string {
	return &s
}

// Seed populates the catalog and staff so a fresh database is usable
// immediately. Everything goes through FirstOrCreate, so reruns are
// no-ops.
func Seed(db *gorm.DB, logger *zap.Logger) error {

	// ============= Employees =============
	employees := []struct {
		models.Employee
		password string
	}{
		{models.Employee{Name: "Mei Lin", Email: "manager@bobashop.com", Position: models.PositionManager}, "manager123"},
		{models.Employee{Name: "Jordan Reyes", Email: "cashier@bobashop.com", Position: models.PositionCashier}, "cashier123"},
	}

	for _, e := range employees {
		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		e.Employee.PasswordHash = string(hash)
		if err := db.Where(models.Employee{Email: e.Employee.Email}).
			Attrs(e.Employee).
			FirstOrCreate(&models.Employee{}).Error; err != nil {
			return err
		}
	}

	// ============= Menu =============
	menu := []models.MenuItem{
		{Name: "Classic Milk Tea", Category: "Milk Tea", Price: 5.25},
		{Name: "Taro Milk Tea", Category: "Milk Tea", Price: 5.75},
		{Name: "Brown Sugar Milk Tea", Category: "Milk Tea", Price: 6.00},
		{Name: "Thai Milk Tea", Category: "Milk Tea", Price: 5.50},
		{Name: "Matcha Latte", Category: "Specialty", Price: 6.25},
		{Name: "Mango Green Tea", Category: "Fruit Tea", Price: 5.50},
		{Name: "Passion Fruit Tea", Category: "Fruit Tea", Price: 5.25},
		{Name: "Peach Iced Tea", Category: "Seasonal", Price: 5.25},
		{Name: "Iced Watermelon Refresher", Category: "Seasonal", Price: 5.75},
		{Name: "Pumpkin Spice Latte", Category: "Seasonal", Price: 6.25},
		{Name: "Hot Chocolate Boba", Category: "Seasonal", Price: 5.75},
		{Name: "Tapioca Pearls", Category: "Topping", Price: 0.75},
		{Name: "Crystal Boba", Category: "Topping", Price: 0.85},
		{Name: "Pudding", Category: "Topping", Price: 0.75},
		{Name: "Grass Jelly", Category: "Topping", Price: 0.75},
		{Name: "Cheese Foam", Category: "Topping", Price: 1.00},
	}

	for _, item := range menu {
		if err := db.Where(models.MenuItem{Name: item.Name}).
			Attrs(item).
			FirstOrCreate(&models.MenuItem{}).Error; err != nil {
			return err
		}
	}

	// ============= Inventory =============
	inventory := []models.InventoryItem{
		{Name: "Black Tea Leaves", Vendor: ptrString("Golden Leaf Trading"), UnitPrice: 0.12, Quantity: 5000},
		{Name: "Green Tea Leaves", Vendor: ptrString("Golden Leaf Trading"), UnitPrice: 0.14, Quantity: 4000},
		{Name: "Whole Milk", Vendor: ptrString("Sunrise Dairy"), UnitPrice: 0.05, Quantity: 20000},
		{Name: "Tapioca Pearls (dry)", Vendor: ptrString("Pearl River Foods"), UnitPrice: 0.03, Quantity: 15000},
		{Name: "Brown Sugar Syrup", Vendor: ptrString("Pearl River Foods"), UnitPrice: 0.08, Quantity: 8000},
		{Name: "Taro Powder", Vendor: ptrString("Pearl River Foods"), UnitPrice: 0.10, Quantity: 6000},
		{Name: "Matcha Powder", Vendor: ptrString("Kyoto Imports"), UnitPrice: 0.25, Quantity: 2000},
		{Name: "Mango Puree", Vendor: ptrString("Tropic Fresh"), UnitPrice: 0.09, Quantity: 7000},
		{Name: "Plastic Cups (16oz)", Vendor: ptrString("PackRight"), UnitPrice: 0.06, Quantity: 10000},
	}

	for _, item := range inventory {
		if err := db.Where(models.InventoryItem{Name: item.Name}).
			Attrs(item).
			FirstOrCreate(&models.InventoryItem{}).Error; err != nil {
			return err
		}
	}

	if err := seedIngredients(db); err != nil {
		return err
	}

	logger.Info("seed data ensured")
	return nil
}

// seedIngredients links drinks to the inventory they consume per unit
// sold, by name so the links survive id changes across environments.
func seedIngredients(db *gorm.DB) error {
	links := []struct {
		menu      string
		inventory string
		qty       float64
	}{
		{"Classic Milk Tea", "Black Tea Leaves", 8},
		{"Classic Milk Tea", "Whole Milk", 120},
		{"Classic Milk Tea", "Plastic Cups (16oz)", 1},
		{"Taro Milk Tea", "Taro Powder", 30},
		{"Taro Milk Tea", "Whole Milk", 120},
		{"Taro Milk Tea", "Plastic Cups (16oz)", 1},
		{"Brown Sugar Milk Tea", "Brown Sugar Syrup", 40},
		{"Brown Sugar Milk Tea", "Whole Milk", 140},
		{"Brown Sugar Milk Tea", "Plastic Cups (16oz)", 1},
		{"Matcha Latte", "Matcha Powder", 6},
		{"Matcha Latte", "Whole Milk", 160},
		{"Matcha Latte", "Plastic Cups (16oz)", 1},
		{"Mango Green Tea", "Green Tea Leaves", 8},
		{"Mango Green Tea", "Mango Puree", 60},
		{"Mango Green Tea", "Plastic Cups (16oz)", 1},
		{"Tapioca Pearls", "Tapioca Pearls (dry)", 50},
		{"Crystal Boba", "Tapioca Pearls (dry)", 50},
	}

	for _, link := range links {
		var menuItem models.MenuItem
		if err := db.Where("name = ?", link.menu).First(&menuItem).Error; err != nil {
			continue
		}
		var invItem models.InventoryItem
		if err := db.Where("name = ?", link.inventory).First(&invItem).Error; err != nil {
			continue
		}
		ingredient := models.MenuIngredient{
			MenuItemID:       menuItem.ID,
			InventoryID:      invItem.ID,
			QuantityRequired: link.qty,
		}
		if err := db.Where(models.MenuIngredient{MenuItemID: menuItem.ID, InventoryID: invItem.ID}).
			Attrs(ingredient).
			FirstOrCreate(&models.MenuIngredient{}).Error; err != nil {
			return err
		}
	}
	return nil
}
