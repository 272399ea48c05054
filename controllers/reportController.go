package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

type ReportController struct {
	reports services.ReportService
	logger  *zap.Logger
}

func NewReportController(reports services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reports: reports, logger: logger}
}

// XReport handles GET /reports/x: the current business day bucketed by
// local hour, non-destructive.
func (ctl *ReportController) XReport(c *gin.Context) {
	rows, err := ctl.reports.XReport(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ZReport handles POST /reports/z: summarizes and then deletes the
// current business day.
func (ctl *ReportController) ZReport(c *gin.Context) {
	result, err := ctl.reports.ZReport(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UsageReport handles GET /reports/usage?from=&to=.
func (ctl *ReportController) UsageReport(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	rows, err := ctl.reports.UsageReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// SalesReport handles GET /reports/sales?from=&to=.
func (ctl *ReportController) SalesReport(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	rows, err := ctl.reports.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params required (ISO timestamps)"})
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from/to timestamps"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from/to timestamps"})
		return time.Time{}, time.Time{}, false
	}
	return from.UTC(), to.UTC(), true
}
