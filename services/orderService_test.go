package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitOrder_NegativeTotal(t *testing.T) {
	svc := NewOrderService(nil, zap.NewNop())

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items: []CartItem{{ID: 1, Quantity: 1}},
		Total: -0.01,
	})
	assert.ErrorIs(t, err, ErrInvalidTotal)
	assert.NotErrorIs(t, err, ErrInvalidQuantity)
}

func TestExpandCart_QuantityAndToppings(t *testing.T) {
	prices := map[uint]float64{1: 5.25, 10: 0.75, 11: 0.85}

	// quantity 2 with toppings A and B: 2 base rows plus 2 rows per
	// topping, 6 in total.
	rows, err := ExpandCart([]CartItem{
		{ID: 1, Quantity: 2, Toppings: []CartTopping{{ID: 10}, {ID: 11}}},
	}, prices)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	counts := map[uint]int{}
	for _, row := range rows {
		counts[row.ItemID]++
		assert.Equal(t, prices[row.ItemID], row.Price)
	}
	assert.Equal(t, 2, counts[1])
	assert.Equal(t, 2, counts[10])
	assert.Equal(t, 2, counts[11])
}

func TestExpandCart_MultipleEntries(t *testing.T) {
	prices := map[uint]float64{1: 5.25, 2: 6.00}

	rows, err := ExpandCart([]CartItem{
		{ID: 1, Quantity: 3},
		{ID: 2, Quantity: 1},
	}, prices)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExpandCart_InvalidQuantity(t *testing.T) {
	prices := map[uint]float64{1: 5.25}

	_, err := ExpandCart([]CartItem{{ID: 1, Quantity: 0}}, prices)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestExpandCart_UnknownMenuItem(t *testing.T) {
	_, err := ExpandCart([]CartItem{{ID: 99, Quantity: 1}}, map[uint]float64{})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	_, err = ExpandCart([]CartItem{
		{ID: 1, Quantity: 1, Toppings: []CartTopping{{ID: 99}}},
	}, map[uint]float64{1: 5.25})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestPointsForTotal(t *testing.T) {
	assert.Equal(t, 7, PointsForTotal(7.60))
	assert.Equal(t, 7, PointsForTotal(7.00))
	assert.Equal(t, 0, PointsForTotal(0.99))
	assert.Equal(t, 0, PointsForTotal(0))
	assert.Equal(t, 0, PointsForTotal(-3.50))
}
