package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"boba-pos/utils"
)

type XReportRow struct {
	Hour        int     `json:"hour"`
	OrdersCount int     `json:"orders_count"`
	GrossSales  float64 `json:"gross_sales"`
	ItemsSold   int     `json:"items_sold"`
}

type ZReportSummary struct {
	Day            string  `json:"day"`
	TotalOrders    int64   `json:"total_orders"`
	GrossSales     float64 `json:"gross_sales"`
	AvgOrderAmount float64 `json:"avg_order_amount"`
	TotalItemsSold int64   `json:"total_items_sold"`
}

type ZReportResult struct {
	Summary             ZReportSummary `json:"summary"`
	DeletedTransactions int64          `json:"deleted_transactions"`
	DeletedItems        int64          `json:"deleted_items"`
}

type UsageReportRow struct {
	InventoryID   uint    `json:"inventory_id"`
	InventoryItem string  `json:"inventory_item"`
	TotalUsed     float64 `json:"total_used"`
	UnitPrice     float64 `json:"unit_price"`
}

type SalesReportRow struct {
	MenuItemID uint    `json:"menu_item_id"`
	MenuItem   string  `json:"menu_item"`
	QtySold    int64   `json:"qty_sold"`
	TotalSales float64 `json:"total_sales"`
}

type ReportService interface {
	XReport(ctx context.Context) ([]XReportRow, error)
	ZReport(ctx context.Context) (*ZReportResult, error)
	UsageReport(ctx context.Context, from, to time.Time) ([]UsageReportRow, error)
	SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
}

type reportService struct {
	db     *gorm.DB
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

func NewReportService(db *gorm.DB, logger *zap.Logger, loc *time.Location) ReportService {
	return &reportService{db: db, logger: logger, loc: loc, now: time.Now}
}

// transactionAgg is one transaction with its line-item count, the unit
// both day reports aggregate over.
type transactionAgg struct {
	ID        uint
	Amount    float64
	CreatedAt time.Time
	Items     int
}

const dayTransactionsQuery = `
	SELECT t.id, t.amount, t.created_at, COUNT(ti.id) AS items
	FROM transactions t
	LEFT JOIN transaction_items ti ON ti.transaction_id = t.id
	WHERE t.created_at >= ? AND t.created_at < ?
	GROUP BY t.id, t.amount, t.created_at`

// XReport groups the current business day's transactions by local
// hour. Read-only and safe to run any number of times.
func (s *reportService) XReport(ctx context.Context) ([]XReportRow, error) {
	start, end := utils.BusinessDayBounds(s.now(), s.loc)

	var rows []transactionAgg
	if err := s.db.WithContext(ctx).Raw(dayTransactionsQuery, start, end).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return bucketByHour(rows, s.loc), nil
}

// bucketByHour folds per-transaction aggregates into hourly X-report
// rows, ascending by hour.
func bucketByHour(rows []transactionAgg, loc *time.Location) []XReportRow {
	buckets := map[int]*XReportRow{}
	for _, r := range rows {
		hour := utils.LocalHour(r.CreatedAt, loc)
		b, ok := buckets[hour]
		if !ok {
			b = &XReportRow{Hour: hour}
			buckets[hour] = b
		}
		b.OrdersCount++
		b.GrossSales += r.Amount
		b.ItemsSold += r.Items
	}

	out := make([]XReportRow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// ZReport is the destructive day close. It first locks the day's
// transaction ids with SELECT ... FOR UPDATE and keys both the summary
// and the deletes on that one id set, so the numbers returned are
// exactly the rows removed even when a checkout commits mid-close. A
// second close on an already-closed day returns a zero summary.
func (s *reportService) ZReport(ctx context.Context) (*ZReportResult, error) {
	start, end := utils.BusinessDayBounds(s.now(), s.loc)
	day := start.In(s.loc).Format("2006-01-02")

	result := &ZReportResult{Summary: ZReportSummary{Day: day}}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Raw(`
			SELECT id FROM transactions
			WHERE created_at >= ? AND created_at < ?
			FOR UPDATE`, start, end).
			Scan(&ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		var orders struct {
			TotalOrders    int64
			GrossSales     float64
			AvgOrderAmount float64
		}
		err = tx.Raw(`
			SELECT COUNT(*) AS total_orders,
			       COALESCE(SUM(amount), 0) AS gross_sales,
			       COALESCE(AVG(amount), 0) AS avg_order_amount
			FROM transactions
			WHERE id IN ?`, ids).
			Scan(&orders).Error
		if err != nil {
			return err
		}

		var itemsSold int64
		err = tx.Raw(`
			SELECT COUNT(*)
			FROM transaction_items
			WHERE transaction_id IN ?`, ids).
			Scan(&itemsSold).Error
		if err != nil {
			return err
		}

		result.Summary.TotalOrders = orders.TotalOrders
		result.Summary.GrossSales = orders.GrossSales
		result.Summary.AvgOrderAmount = orders.AvgOrderAmount
		result.Summary.TotalItemsSold = itemsSold

		items := tx.Exec(`DELETE FROM transaction_items WHERE transaction_id IN ?`, ids)
		if items.Error != nil {
			return items.Error
		}
		result.DeletedItems = items.RowsAffected

		transactions := tx.Exec(`DELETE FROM transactions WHERE id IN ?`, ids)
		if transactions.Error != nil {
			return transactions.Error
		}
		result.DeletedTransactions = transactions.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("business day closed",
		zap.String("day", day),
		zap.Int64("orders", result.Summary.TotalOrders),
		zap.Int64("deleted_items", result.DeletedItems))
	return result, nil
}

// UsageReport derives inventory consumption from sales in the range:
// units sold per menu item times the ingredient quantity each unit
// requires. Inventory quantities are never mutated here.
func (s *reportService) UsageReport(ctx context.Context, from, to time.Time) ([]UsageReportRow, error) {
	var rows []UsageReportRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT inv.id AS inventory_id,
		       inv.name AS inventory_item,
		       COALESCE(SUM(mi.quantity_required * sold.qty), 0) AS total_used,
		       inv.unit_price
		FROM inventory_items inv
		JOIN menu_ingredients mi ON mi.inventory_id = inv.id
		LEFT JOIN (
			SELECT ti.item_id, COUNT(*) AS qty
			FROM transaction_items ti
			JOIN transactions t ON t.id = ti.transaction_id
			WHERE t.created_at >= ? AND t.created_at <= ?
			GROUP BY ti.item_id
		) sold ON sold.item_id = mi.menu_item_id
		GROUP BY inv.id, inv.name, inv.unit_price
		ORDER BY total_used DESC, inv.name`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesReport sums units and revenue per menu item in the range.
// Revenue comes from the line-item price snapshots, so closed-out
// menu price changes do not rewrite history. Items with no sales in
// the range still appear with zeros.
func (s *reportService) SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error) {
	var rows []SalesReportRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT m.id AS menu_item_id,
		       m.name AS menu_item,
		       COALESCE(sold.qty, 0) AS qty_sold,
		       COALESCE(sold.revenue, 0) AS total_sales
		FROM menu_items m
		LEFT JOIN (
			SELECT ti.item_id, COUNT(*) AS qty, SUM(ti.price) AS revenue
			FROM transaction_items ti
			JOIN transactions t ON t.id = ti.transaction_id
			WHERE t.created_at >= ? AND t.created_at <= ?
			GROUP BY ti.item_id
		) sold ON sold.item_id = m.id
		ORDER BY total_sales DESC, m.name`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
