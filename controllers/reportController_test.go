package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boba-pos/services"
)

type fakeReportService struct {
	xRows     []services.XReportRow
	zResult   *services.ZReportResult
	usageRows []services.UsageReportRow
	salesRows []services.SalesReportRow
	gotFrom   time.Time
	gotTo     time.Time
	err       error
}

func (f *fakeReportService) XReport(context.Context) ([]services.XReportRow, error) {
	return f.xRows, f.err
}

func (f *fakeReportService) ZReport(context.Context) (*services.ZReportResult, error) {
	return f.zResult, f.err
}

func (f *fakeReportService) UsageReport(_ context.Context, from, to time.Time) ([]services.UsageReportRow, error) {
	f.gotFrom, f.gotTo = from, to
	return f.usageRows, f.err
}

func (f *fakeReportService) SalesReport(_ context.Context, from, to time.Time) ([]services.SalesReportRow, error) {
	f.gotFrom, f.gotTo = from, to
	return f.salesRows, f.err
}

func newReportRouter(svc services.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewReportController(svc, zap.NewNop())
	r.GET("/reports/x", ctl.XReport)
	r.POST("/reports/z", ctl.ZReport)
	r.GET("/reports/usage", ctl.UsageReport)
	r.GET("/reports/sales", ctl.SalesReport)
	return r
}

func TestXReport(t *testing.T) {
	svc := &fakeReportService{xRows: []services.XReportRow{
		{Hour: 9, OrdersCount: 2, GrossSales: 15.75, ItemsSold: 4},
		{Hour: 14, OrdersCount: 1, GrossSales: 6.00, ItemsSold: 2},
	}}
	r := newReportRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/x", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var rows []services.XReportRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 9, rows[0].Hour)
	assert.Equal(t, 2, rows[0].OrdersCount)
}

func TestZReport(t *testing.T) {
	svc := &fakeReportService{zResult: &services.ZReportResult{
		Summary: services.ZReportSummary{
			Day:            "2025-03-10",
			TotalOrders:    12,
			GrossSales:     68.50,
			AvgOrderAmount: 5.71,
			TotalItemsSold: 31,
		},
		DeletedTransactions: 12,
		DeletedItems:        31,
	}}
	r := newReportRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports/z", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp services.ZReportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Summary.TotalOrders)
	assert.Equal(t, int64(31), resp.DeletedItems)
}

func TestUsageReport_MissingRange(t *testing.T) {
	r := newReportRouter(&fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/usage", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsageReport_InvalidRange(t *testing.T) {
	r := newReportRouter(&fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/usage?from=nope&to=2025-03-11T00:00:00Z", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesReport_PassesParsedRange(t *testing.T) {
	svc := &fakeReportService{salesRows: []services.SalesReportRow{
		{MenuItemID: 1, MenuItem: "Classic Milk Tea", QtySold: 3, TotalSales: 15.00},
	}}
	r := newReportRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/reports/sales?from=2025-03-10T06:00:00Z&to=2025-03-11T06:00:00Z", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC), svc.gotFrom)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), svc.gotTo)

	var rows []services.SalesReportRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].QtySold)
	assert.InDelta(t, 15.00, rows[0].TotalSales, 1e-9)
}
