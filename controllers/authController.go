package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

type AuthController struct {
	auth   services.AuthService
	logger *zap.Logger
}

func NewAuthController(auth services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

type employeeLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmployeeLogin handles POST /auth/employee/login.
func (ctl *AuthController) EmployeeLogin(c *gin.Context) {
	var req employeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := ctl.auth.EmployeeLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"employee": gin.H{
			"id":       result.Employee.ID,
			"name":     result.Employee.Name,
			"email":    result.Employee.Email,
			"position": result.Employee.Position,
		},
	})
}

type customerSignupRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// CustomerSignup handles POST /auth/customer/signup.
func (ctl *AuthController) CustomerSignup(c *gin.Context) {
	var req customerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, phone number and email are required"})
		return
	}

	customer, err := ctl.auth.CustomerSignup(c.Request.Context(), services.CustomerSignupInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": customer})
}

type customerLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// CustomerLogin handles POST /auth/customer/lookup: the kiosk sign-in
// by phone number. Unknown numbers come back 401, not 404, matching
// the kiosk's "not registered" flow.
func (ctl *AuthController) CustomerLogin(c *gin.Context) {
	var req customerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	customer, err := ctl.auth.CustomerLogin(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Phone number not found"})
			return
		}
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}
