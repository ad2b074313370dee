package inventory

import "errors"

// Domain errors for pantry operations

var (
	ErrMissingUser      = errors.New("food item must belong to a user")
	ErrEmptyName        = errors.New("food item name is required")
	ErrNegativeQuantity = errors.New("food item quantity cannot be negative")
	ErrItemNotFound     = errors.New("food item not found")
	ErrNotItemOwner     = errors.New("food item belongs to another user")
)
