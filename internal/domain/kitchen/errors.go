package kitchen

import "errors"

// Domain errors for the matching and deduction core.
//
// An unresolved ingredient is not an error: the matcher reports it as a
// Missing entry. Only contract violations by the caller fail fast here.

var (
	ErrNegativeAmount   = errors.New("required amount cannot be negative")
	ErrNegativeQuantity = errors.New("available quantity cannot be negative")
	ErrInvalidServings  = errors.New("serving counts must be greater than 0")
)
