// Package domain defines the core error kinds of the calculator.
package domain

import "errors"

// Error kinds reported by arithmetic operations.
var (
	// ErrDivisionByZero is returned when a divisor operand is exactly zero.
	// Divide and Modulo report it.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument is returned when an operand falls outside an
	// operation's domain, such as a negative radicand or a negative factorial input.
	ErrInvalidArgument = errors.New("invalid argument")
)
