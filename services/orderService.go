package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"boba-pos/models"
)

type CartTopping struct {
	ID uint `json:"id" binding:"required"`
}

type CartItem struct {
	ID       uint          `json:"id" binding:"required"`
	Quantity int           `json:"quantity" binding:"required"`
	Toppings []CartTopping `json:"toppings"`
}

type SubmitOrderInput struct {
	Items         []CartItem
	Total         float64
	PaymentMethod *string
	CustomerID    *uint
	EmployeeID    *uint
}

type OrderResult struct {
	OrderID        uint
	ItemsProcessed int
}

type OrderService interface {
	SubmitOrder(ctx context.Context, input SubmitOrderInput) (*OrderResult, error)
}

type orderService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderService(db *gorm.DB, logger *zap.Logger) OrderService {
	return &orderService{db: db, logger: logger}
}

// SubmitOrder records one transaction plus one line item per purchased
// unit, all in a single database transaction. When a customer is
// attached, a pending reward accrual for floor(total) points commits
// with the order, so loyalty can never silently diverge from the order
// history.
func (s *orderService) SubmitOrder(ctx context.Context, input SubmitOrderInput) (*OrderResult, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if input.Total < 0 {
		return nil, ErrInvalidTotal
	}
	for _, item := range input.Items {
		if item.ID == 0 {
			return nil, ErrMenuItemNotFound
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidQuantity, item.ID)
		}
		for _, t := range item.Toppings {
			if t.ID == 0 {
				return nil, ErrMenuItemNotFound
			}
		}
	}

	var result OrderResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prices, err := menuPrices(tx, input.Items)
		if err != nil {
			return err
		}

		lineItems, err := ExpandCart(input.Items, prices)
		if err != nil {
			return err
		}

		transaction := models.Transaction{
			Amount:        input.Total,
			PaymentMethod: input.PaymentMethod,
			CustomerID:    input.CustomerID,
			EmployeeID:    input.EmployeeID,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		for i := range lineItems {
			lineItems[i].TransactionID = transaction.ID
		}
		if err := tx.Create(&lineItems).Error; err != nil {
			return err
		}

		if input.CustomerID != nil {
			accrual := models.RewardAccrual{
				TransactionID: transaction.ID,
				CustomerID:    *input.CustomerID,
				Points:        PointsForTotal(input.Total),
				Status:        models.AccrualPending,
			}
			if err := tx.Create(&accrual).Error; err != nil {
				return err
			}
		}

		result = OrderResult{OrderID: transaction.ID, ItemsProcessed: len(lineItems)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order submitted",
		zap.Uint("order_id", result.OrderID),
		zap.Int("items", result.ItemsProcessed),
		zap.Float64("total", input.Total))
	return &result, nil
}

// menuPrices resolves every menu id the cart references to its current
// price, inside the checkout transaction.
func menuPrices(tx *gorm.DB, items []CartItem) (map[uint]float64, error) {
	idSet := map[uint]struct{}{}
	for _, item := range items {
		idSet[item.ID] = struct{}{}
		for _, t := range item.Toppings {
			idSet[t.ID] = struct{}{}
		}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var menuItems []models.MenuItem
	if err := tx.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
		return nil, err
	}
	prices := make(map[uint]float64, len(menuItems))
	for _, m := range menuItems {
		prices[m.ID] = m.Price
	}
	for id := range idSet {
		if _, ok := prices[id]; !ok {
			return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, id)
		}
	}
	return prices, nil
}

// ExpandCart turns cart entries into per-unit line items: quantity N
// with K toppings yields N base rows plus N rows per topping, each
// snapshotting the current menu price.
func ExpandCart(items []CartItem, prices map[uint]float64) ([]models.TransactionItem, error) {
	var rows []models.TransactionItem
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidQuantity, item.ID)
		}
		basePrice, ok := prices[item.ID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, item.ID)
		}
		for i := 0; i < item.Quantity; i++ {
			rows = append(rows, models.TransactionItem{ItemID: item.ID, Price: basePrice})
		}
		for _, topping := range item.Toppings {
			toppingPrice, ok := prices[topping.ID]
			if !ok {
				return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, topping.ID)
			}
			for i := 0; i < item.Quantity; i++ {
				rows = append(rows, models.TransactionItem{ItemID: topping.ID, Price: toppingPrice})
			}
		}
	}
	return rows, nil
}

// PointsForTotal is the "$1 spent = 1 point" rule, rounded down.
func PointsForTotal(total float64) int {
	if total < 0 {
		return 0
	}
	return int(math.Floor(total))
}
