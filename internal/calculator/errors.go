package calculator

import "errors"

var (
	// ErrDivisionByZero is returned when a div operation has a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDigit is returned when a digit press is not a single 0-9 character.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrUnknownOperator is returned for operator names outside add/sub/mul/div.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownKey is returned when a key press cannot be dispatched.
	ErrUnknownKey = errors.New("unknown key")
)
