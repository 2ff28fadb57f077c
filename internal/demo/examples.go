package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/calculator/internal/domain/arith"
)

// Example is a single demonstrated computation.
type Example struct {
	Label string    // How the computation is shown, e.g. "5 + 3"
	Op    string    // One of the arith.Op* names
	Args  []float64 // Operands, in call order
}

// DefaultExamples returns the fixed demonstration sequence.
func DefaultExamples() []Example {
	return []Example{
		{Label: "5 + 3", Op: arith.OpAdd, Args: []float64{5, 3}},
		{Label: "10 - 4", Op: arith.OpSubtract, Args: []float64{10, 4}},
		{Label: "6 * 7", Op: arith.OpMultiply, Args: []float64{6, 7}},
		{Label: "20 / 4", Op: arith.OpDivide, Args: []float64{20, 4}},
		{Label: "2^8", Op: arith.OpPower, Args: []float64{2, 8}},
		{Label: "√16", Op: arith.OpSqrt, Args: []float64{16}},
		{Label: "17 % 5", Op: arith.OpModulo, Args: []float64{17, 5}},
		{Label: "5!", Op: arith.OpFactorial, Args: []float64{5}},
		{Label: "|−15|", Op: arith.OpAbs, Args: []float64{-15}},
		{Label: "max(10, 20)", Op: arith.OpMax, Args: []float64{10, 20}},
		{Label: "min(10, 20)", Op: arith.OpMin, Args: []float64{10, 20}},
		{Label: "round(7.6)", Op: arith.OpRound, Args: []float64{7.6}},
	}
}

// arity returns the number of operands op takes, or 0 for unknown operations.
func arity(op string) int {
	switch op {
	case arith.OpAdd, arith.OpSubtract, arith.OpMultiply, arith.OpDivide,
		arith.OpPower, arith.OpModulo, arith.OpMax, arith.OpMin:
		return 2
	case arith.OpSqrt, arith.OpFactorial, arith.OpAbs, arith.OpRound:
		return 1
	default:
		return 0
	}
}

// evaluate performs ex on calc and returns the formatted result.
func evaluate(calc arith.Calculator, ex Example) (string, error) {
	n := arity(ex.Op)
	if n == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, ex.Op)
	}
	if len(ex.Args) != n {
		return "", fmt.Errorf("%w: %s takes %d operands, got %d", ErrOperandCount, ex.Op, n, len(ex.Args))
	}

	a := ex.Args[0]
	var b float64
	if n == 2 {
		b = ex.Args[1]
	}

	switch ex.Op {
	case arith.OpAdd:
		return formatFloat(calc.Add(a, b)), nil
	case arith.OpSubtract:
		return formatFloat(calc.Subtract(a, b)), nil
	case arith.OpMultiply:
		return formatFloat(calc.Multiply(a, b)), nil
	case arith.OpDivide:
		return floatResult(calc.Divide(a, b))
	case arith.OpPower:
		return formatFloat(calc.Power(a, b)), nil
	case arith.OpSqrt:
		return floatResult(calc.Sqrt(a))
	case arith.OpModulo:
		return floatResult(calc.Modulo(a, b))
	case arith.OpFactorial:
		if a != math.Trunc(a) || a > math.MaxInt32 || a < math.MinInt32 {
			return "", fmt.Errorf("%w: factorial operand %v is not a 32-bit integer", ErrInvalidOperand, a)
		}
		v, err := calc.Factorial(int32(a))
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case arith.OpAbs:
		return formatFloat(calc.Abs(a)), nil
	case arith.OpMax:
		return formatFloat(calc.Max(a, b)), nil
	case arith.OpMin:
		return formatFloat(calc.Min(a, b)), nil
	default: // arith.OpRound; arity already rejected anything else
		return strconv.FormatInt(calc.Round(a), 10), nil
	}
}

func floatResult(v float64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return formatFloat(v), nil
}

// formatFloat prints v in plain decimal notation with at least one fractional
// digit, e.g. 8.0 or 2.5. Very large or very small magnitudes use exponent form.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
