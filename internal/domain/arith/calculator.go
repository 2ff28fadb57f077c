package arith

// Operation names, in the order they are documented and demonstrated.
const (
	OpAdd       = "add"
	OpSubtract  = "subtract"
	OpMultiply  = "multiply"
	OpDivide    = "divide"
	OpPower     = "power"
	OpSqrt      = "sqrt"
	OpModulo    = "modulo"
	OpFactorial = "factorial"
	OpAbs       = "abs"
	OpMax       = "max"
	OpMin       = "min"
	OpRound     = "round"
)

// OperationNames returns the names of all supported operations in canonical order.
func OperationNames() []string {
	return []string{
		OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpSqrt,
		OpModulo, OpFactorial, OpAbs, OpMax, OpMin, OpRound,
	}
}

// Calculator defines the arithmetic operations offered to callers.
type Calculator interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64

	// Divide fails with domain.ErrDivisionByZero when b is zero
	Divide(a, b float64) (float64, error)

	Power(base, exp float64) float64

	// Sqrt fails with domain.ErrInvalidArgument when a is negative
	Sqrt(a float64) (float64, error)

	// Modulo fails with domain.ErrDivisionByZero when b is zero
	Modulo(a, b float64) (float64, error)

	// Factorial fails with domain.ErrInvalidArgument when n is negative
	Factorial(n int32) (int64, error)

	Abs(a float64) float64
	Max(a, b float64) float64
	Min(a, b float64) float64
	Round(a float64) int64
}

// defaultCalculator is the standard implementation of the Calculator interface.
// It delegates to the package-level functions and holds no state.
type defaultCalculator struct{}

// NewCalculator creates a new Calculator backed by the package-level functions.
func NewCalculator() Calculator {
	return defaultCalculator{}
}

func (defaultCalculator) Add(a, b float64) float64      { return Add(a, b) }
func (defaultCalculator) Subtract(a, b float64) float64 { return Subtract(a, b) }
func (defaultCalculator) Multiply(a, b float64) float64 { return Multiply(a, b) }

func (defaultCalculator) Divide(a, b float64) (float64, error) { return Divide(a, b) }

func (defaultCalculator) Power(base, exp float64) float64 { return Power(base, exp) }

func (defaultCalculator) Sqrt(a float64) (float64, error) { return Sqrt(a) }

func (defaultCalculator) Modulo(a, b float64) (float64, error) { return Modulo(a, b) }

func (defaultCalculator) Factorial(n int32) (int64, error) { return Factorial(n) }

func (defaultCalculator) Abs(a float64) float64    { return Abs(a) }
func (defaultCalculator) Max(a, b float64) float64 { return Max(a, b) }
func (defaultCalculator) Min(a, b float64) float64 { return Min(a, b) }
func (defaultCalculator) Round(a float64) int64    { return Round(a) }
