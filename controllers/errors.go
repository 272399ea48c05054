package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boba-pos/services"
)

// statusForError maps service errors onto HTTP statuses. The second
// return is the client-facing message; unrecognized errors get a
// generic 500 body so raw database errors never reach the client.
func statusForError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidTotal),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrInvalidPoints),
		errors.Is(err, services.ErrPhoneRequired):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, services.ErrInsufficientPoints):
		return http.StatusBadRequest, "Insufficient points", true
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, services.ErrCustomerNotFound):
		return http.StatusNotFound, "Customer not found", true
	case errors.Is(err, services.ErrDuplicatePhone),
		errors.Is(err, services.ErrDuplicateEmail):
		return http.StatusConflict, err.Error(), true
	default:
		return http.StatusInternalServerError, "Internal server error", false
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status, message, known := statusForError(err)
	if !known {
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
