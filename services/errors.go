package services

import "errors"

var (
	ErrEmptyCart          = errors.New("no items provided")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidTotal       = errors.New("total must not be negative")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidPoints      = errors.New("points must be greater than zero")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneRequired      = errors.New("phone number is required")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
)
