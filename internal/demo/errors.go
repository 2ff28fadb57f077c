package demo

import "errors"

// Errors describing examples that cannot be evaluated at all. Failures of
// the arithmetic itself are reported as arith.OperationError instead.
var (
	// ErrUnknownOperation is returned when an example names no known operation.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrOperandCount is returned when an example has the wrong number of operands.
	ErrOperandCount = errors.New("wrong number of operands")

	// ErrInvalidOperand is returned when an operand cannot be converted to the
	// operation's input type, such as a fractional factorial input.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrUnknownFormat is returned when results are rendered in an unsupported format.
	ErrUnknownFormat = errors.New("unknown output format")
)
