package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boba-pos/utils"
)

func TestBucketByHour(t *testing.T) {
	loc := utils.ShopLocation(-6)

	// Two orders at 9am local, one at 2pm local.
	nineAM := time.Date(2025, 3, 10, 15, 5, 0, 0, time.UTC)   // 09:05 local
	nineAM2 := time.Date(2025, 3, 10, 15, 45, 0, 0, time.UTC) // 09:45 local
	twoPM := time.Date(2025, 3, 10, 20, 10, 0, 0, time.UTC)   // 14:10 local

	rows := bucketByHour([]transactionAgg{
		{ID: 1, Amount: 10.50, CreatedAt: nineAM, Items: 3},
		{ID: 2, Amount: 5.25, CreatedAt: nineAM2, Items: 1},
		{ID: 3, Amount: 6.00, CreatedAt: twoPM, Items: 2},
	}, loc)

	require.Len(t, rows, 2)

	assert.Equal(t, 9, rows[0].Hour)
	assert.Equal(t, 2, rows[0].OrdersCount)
	assert.InDelta(t, 15.75, rows[0].GrossSales, 1e-9)
	assert.Equal(t, 4, rows[0].ItemsSold)

	assert.Equal(t, 14, rows[1].Hour)
	assert.Equal(t, 1, rows[1].OrdersCount)
	assert.InDelta(t, 6.00, rows[1].GrossSales, 1e-9)
	assert.Equal(t, 2, rows[1].ItemsSold)
}

func TestBucketByHour_Empty(t *testing.T) {
	rows := bucketByHour(nil, utils.ShopLocation(-6))
	assert.Empty(t, rows)
}

func TestBucketByHour_SortedAscending(t *testing.T) {
	loc := utils.ShopLocation(-6)
	base := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC) // local midnight

	var aggs []transactionAgg
	for _, h := range []int{22, 8, 15, 0, 11} {
		aggs = append(aggs, transactionAgg{
			Amount:    1,
			CreatedAt: base.Add(time.Duration(h) * time.Hour),
			Items:     1,
		})
	}

	rows := bucketByHour(aggs, loc)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Hour, rows[i].Hour)
	}
}
