package models

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidPasscode   = errors.New("passcode must be exactly 8 digits")
	ErrUnknownOrder      = errors.New("order not found in snapshot")
	ErrNoTable           = errors.New("table number is required")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrBadQuantity       = errors.New("item quantity must be positive")
	ErrBadUnitPrice      = errors.New("item unit price must not be negative")
)
