package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

type RewardController struct {
	rewards services.RewardService
	logger  *zap.Logger
}

func NewRewardController(rewards services.RewardService, logger *zap.Logger) *RewardController {
	return &RewardController{rewards: rewards, logger: logger}
}

type redeemRequest struct {
	CustomerID     uint `json:"customerId" binding:"required"`
	PointsToRedeem int  `json:"pointsToRedeem" binding:"required"`
}

// Redeem handles POST /rewards and POST /rewards/cashier.
func (ctl *RewardController) Redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId and pointsToRedeem required"})
		return
	}

	result, err := ctl.rewards.Redeem(c.Request.Context(), req.CustomerID, req.PointsToRedeem)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"pointsRedeemed":  result.PointsRedeemed,
		"discountAmount":  result.DiscountAmount,
		"remainingPoints": result.RemainingPoints,
	})
}

type accrueRequest struct {
	CustomerID  uint `json:"customerId" binding:"required"`
	PointsToAdd int  `json:"pointsToAdd" binding:"required"`
}

// Accrue handles PUT /rewards, the cashier manual-adjust path.
// Checkout-driven accrual flows through the outbox worker instead.
func (ctl *RewardController) Accrue(c *gin.Context) {
	var req accrueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId and pointsToAdd required"})
		return
	}

	result, err := ctl.rewards.Accrue(c.Request.Context(), req.CustomerID, req.PointsToAdd)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"pointsAdded":    result.PointsAdded,
		"newTotalPoints": result.NewTotalPoints,
	})
}

// Lookup handles GET /rewards/cashier?phoneNumber=..., the cashier's
// customer search.
func (ctl *RewardController) Lookup(c *gin.Context) {
	phone := c.Query("phoneNumber")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	customer, err := ctl.rewards.LookupByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}
