package services

import "errors"

// errors that controllers map onto HTTP status codes
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrAddressIndex       = errors.New("address index out of range")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrAddressRequired    = errors.New("delivery address required")
)
