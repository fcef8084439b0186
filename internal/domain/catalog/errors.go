package catalog

import "errors"

var (
	ErrCookNotFound = errors.New("cook not found")
	ErrDishNotFound = errors.New("dish not found")
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidFloor = errors.New("floor must be between 1 and 10")
)
