package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

type OrderController struct {
	orders services.OrderService
	logger *zap.Logger
}

func NewOrderController(orders services.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, logger: logger}
}

type submitOrderRequest struct {
	Items         []services.CartItem `json:"items" binding:"required"`
	Total         *float64            `json:"total" binding:"required"`
	PaymentMethod *string             `json:"paymentMethod,omitempty"`
	CustomerID    *uint               `json:"customerId,omitempty"`
	EmployeeID    *uint               `json:"employeeId,omitempty"`
}

// SubmitOrder handles POST /orders and POST /checkout.
func (ctl *OrderController) SubmitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order data: items and total required"})
		return
	}

	result, err := ctl.orders.SubmitOrder(c.Request.Context(), services.SubmitOrderInput{
		Items:         req.Items,
		Total:         *req.Total,
		PaymentMethod: req.PaymentMethod,
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		status, message, known := statusForError(err)
		if !known {
			ctl.logger.Error("checkout failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"success": false, "error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"orderId":        result.OrderID,
		"itemsProcessed": result.ItemsProcessed,
		"message":        "Order submitted successfully",
	})
}
