package percentage

import "errors"

var (
	// ErrInvalidInput is returned when a required argument is not a valid number.
	ErrInvalidInput = errors.New("invalid number")
	// ErrDivisionByZero is returned when the base value is zero.
	ErrDivisionByZero = errors.New("base value cannot be zero")
)
