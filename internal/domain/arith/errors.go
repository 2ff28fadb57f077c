package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/calculator/internal/domain"
)

// Failure messages reported by the guarded operations.
const (
	msgDivideByZero   = "cannot divide by zero"
	msgModuloByZero   = "cannot perform modulo with zero divisor"
	msgSqrtNegative   = "cannot calculate square root of negative number"
	msgFactorialRange = "factorial is not defined for negative numbers"
)

// OperationError is returned by operations whose operands fall outside the
// operation's domain. Err is one of the domain error kinds.
type OperationError struct {
	Operation string    // The operation that failed (e.g., "divide", "sqrt")
	Operands  []float64 // The operands as passed by the caller
	Message   string    // Error message
	Err       error     // domain.ErrDivisionByZero or domain.ErrInvalidArgument
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	args := make([]string, len(e.Operands))
	for i, v := range e.Operands {
		args[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s(%s): %s", e.Operation, strings.Join(args, ", "), e.Message)
}

// Unwrap returns the wrapped error kind to support errors.Is/errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// newOperationError creates an OperationError for the given operation.
func newOperationError(operation, message string, kind error, operands ...float64) *OperationError {
	return &OperationError{
		Operation: operation,
		Operands:  operands,
		Message:   message,
		Err:       kind,
	}
}

// IsDivisionByZero reports whether err was caused by a zero divisor.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, domain.ErrDivisionByZero)
}

// IsInvalidArgument reports whether err was caused by an operand outside
// the operation's domain.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, domain.ErrInvalidArgument)
}
