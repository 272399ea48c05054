package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

type MenuController struct {
	catalog services.CatalogService
	logger  *zap.Logger
}

func NewMenuController(catalog services.CatalogService, logger *zap.Logger) *MenuController {
	return &MenuController{catalog: catalog, logger: logger}
}

// GetMenu handles GET /menu, the kiosk and cashier item list.
func (ctl *MenuController) GetMenu(c *gin.Context) {
	items, err := ctl.catalog.ListMenu(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// GetInventory handles GET /inventory for the manager back office.
func (ctl *MenuController) GetInventory(c *gin.Context) {
	items, err := ctl.catalog.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
