// Package arith implements the calculator's arithmetic operations.
//
// Every operation is a pure function over float64 operands, except Factorial
// which works on integers. Operations that are undefined for some inputs
// (division and modulo by zero, square root of a negative number, factorial
// of a negative number) return an *OperationError wrapping one of the domain
// error kinds. Nothing in this package logs, retries, or keeps state, so all
// functions and the default Calculator are safe for concurrent use.
package arith
