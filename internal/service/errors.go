package service

import "errors"

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrEmptyCart         = errors.New("cart is empty, nothing to order")
	ErrInvalidCartItem   = errors.New("cart item has invalid price or quantity")
	ErrInvalidAmount     = errors.New("order total must be positive")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrOrderNotFound     = errors.New("order not found")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
