package arith

import (
	"math"

	"github.com/phrazzld/calculator/internal/domain"
)

// Bounds of the float64 values that Round can convert without saturating.
const (
	roundUpperBound = float64(1 << 63)
	roundLowerBound = -float64(1 << 63)
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b.
// It fails with domain.ErrDivisionByZero when b is zero, including negative zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newOperationError(OpDivide, msgDivideByZero, domain.ErrDivisionByZero, a, b)
	}
	return a / b, nil
}

// Power returns base raised to exp. Fractional and negative exponents, as well
// as the special cases for zero, infinities and NaN, follow math.Pow.
func Power(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// Sqrt returns the non-negative square root of a.
// It fails with domain.ErrInvalidArgument when a is negative. NaN is not
// negative and yields NaN.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, newOperationError(OpSqrt, msgSqrtNegative, domain.ErrInvalidArgument, a)
	}
	return math.Sqrt(a), nil
}

// Modulo returns the floating-point remainder of a divided by b.
//
// The remainder is that of truncated division: its sign follows the dividend,
// so Modulo(-17, 5) is -2 rather than the Euclidean 3.
// It fails with domain.ErrDivisionByZero when b is zero.
func Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newOperationError(OpModulo, msgModuloByZero, domain.ErrDivisionByZero, a, b)
	}
	return math.Mod(a, b), nil
}

// Factorial returns the product 1*2*...*n, with Factorial(0) and Factorial(1)
// both equal to 1. It fails with domain.ErrInvalidArgument when n is negative.
//
// The product is accumulated in an int64 without overflow checks. From n = 21
// onwards the result wraps around per two's-complement arithmetic, and from
// n = 66 onwards it is 0. Callers that need exact large factorials must not
// rely on this function.
func Factorial(n int32) (int64, error) {
	if n < 0 {
		return 0, newOperationError(OpFactorial, msgFactorialRange, domain.ErrInvalidArgument, float64(n))
	}

	result := int64(1)
	for i := int32(2); i <= n; i++ {
		result *= int64(i)
		// a wrapped product of zero stays zero
		if result == 0 {
			break
		}
	}
	return result, nil
}

// Abs returns the magnitude of a.
func Abs(a float64) float64 {
	return math.Abs(a)
}

// Max returns the larger of a and b. If either is NaN the result is NaN,
// and +0 is considered larger than -0.
func Max(a, b float64) float64 {
	return math.Max(a, b)
}

// Min returns the smaller of a and b. If either is NaN the result is NaN,
// and -0 is considered smaller than +0.
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// Round returns the integer nearest to a. Ties are rounded toward positive
// infinity (half-up), so Round(7.5) is 8 and Round(-7.5) is -7.
//
// NaN rounds to 0. Values outside the int64 range saturate to math.MinInt64
// or math.MaxInt64.
func Round(a float64) int64 {
	if math.IsNaN(a) {
		return 0
	}

	// 0.49999999999999994 must round to 0; Floor(a+0.5) would yield 1.
	r := math.Floor(a)
	if a-r >= 0.5 {
		r++
	}

	switch {
	case r >= roundUpperBound:
		return math.MaxInt64
	case r <= roundLowerBound:
		return math.MinInt64
	default:
		return int64(r)
	}
}
