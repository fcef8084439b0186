package order

import "errors"

var (
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 500")
	ErrPastOrderDate      = errors.New("order date must not be in the past")
	ErrInvalidOrderDate   = errors.New("order date must be formatted YYYY-MM-DD")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrMissingDefaultCook = errors.New("dish has no default cook, one must be assigned explicitly")
	ErrLineNotFound       = errors.New("order line not found")
	ErrEmptyUpdate        = errors.New("no fields supplied to update")
	ErrNothingToFinalize  = errors.New("no order lines exist for this date")
)
