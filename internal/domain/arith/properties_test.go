package arith

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/floats/scalar"
)

// samples covers signs, magnitudes and fractions for the algebraic properties.
var samples = []float64{
	0, 1, -1, 2.5, -2.5, 0.1, 0.2, 7, -17, 1e-9, 123456.789, -1e12, math.MaxFloat64, -math.SmallestNonzeroFloat64,
}

var _ = Describe("Calculator", func() {
	var calc Calculator

	BeforeEach(func() {
		calc = NewCalculator()
	})

	Context("commutativity and identity", func() {
		It("adds and multiplies commutatively", func() {
			for _, a := range samples {
				for _, b := range samples {
					Expect(calc.Add(a, b)).To(Equal(calc.Add(b, a)), "add(%v, %v)", a, b)
					Expect(calc.Multiply(a, b)).To(Equal(calc.Multiply(b, a)), "multiply(%v, %v)", a, b)
				}
			}
		})

		It("leaves values unchanged when adding or subtracting zero", func() {
			for _, a := range samples {
				Expect(calc.Add(a, 0)).To(Equal(a))
				Expect(calc.Subtract(a, 0)).To(Equal(a))
			}
		})
	})

	Context("division", func() {
		It("fails exactly when the divisor is zero", func() {
			for _, a := range samples {
				for _, b := range samples {
					_, err := calc.Divide(a, b)
					if b == 0 {
						Expect(IsDivisionByZero(err)).To(BeTrue(), "divide(%v, %v)", a, b)
					} else {
						Expect(err).NotTo(HaveOccurred(), "divide(%v, %v)", a, b)
					}
				}
			}
		})

		It("divides twenty by four", func() {
			Expect(calc.Divide(20, 4)).To(Equal(5.0))
		})
	})

	Context("modulo", func() {
		It("fails exactly when the divisor is zero", func() {
			for _, a := range samples {
				for _, b := range samples {
					_, err := calc.Modulo(a, b)
					if b == 0 {
						Expect(IsDivisionByZero(err)).To(BeTrue(), "modulo(%v, %v)", a, b)
					} else {
						Expect(err).NotTo(HaveOccurred(), "modulo(%v, %v)", a, b)
					}
				}
			}
		})

		It("keeps the sign of the dividend", func() {
			Expect(calc.Modulo(-17, 5)).To(Equal(-2.0))
			Expect(calc.Modulo(17, 5)).To(Equal(2.0))
		})
	})

	Context("square root", func() {
		It("fails exactly when the operand is negative", func() {
			for _, a := range samples {
				_, err := calc.Sqrt(a)
				if a < 0 {
					Expect(IsInvalidArgument(err)).To(BeTrue(), "sqrt(%v)", a)
				} else {
					Expect(err).NotTo(HaveOccurred(), "sqrt(%v)", a)
				}
			}
		})

		It("computes the root of sixteen", func() {
			Expect(calc.Sqrt(16)).To(Equal(4.0))
		})
	})

	Context("factorial", func() {
		It("fails exactly when n is negative", func() {
			for n := int32(-10); n <= 20; n++ {
				_, err := calc.Factorial(n)
				if n < 0 {
					Expect(IsInvalidArgument(err)).To(BeTrue(), "factorial(%d)", n)
				} else {
					Expect(err).NotTo(HaveOccurred(), "factorial(%d)", n)
				}
			}
		})

		It("matches known values", func() {
			Expect(calc.Factorial(0)).To(Equal(int64(1)))
			Expect(calc.Factorial(1)).To(Equal(int64(1)))
			Expect(calc.Factorial(5)).To(Equal(int64(120)))
			Expect(calc.Factorial(10)).To(Equal(int64(3628800)))
		})
	})

	Context("rounding", func() {
		It("rounds half up including negative values", func() {
			Expect(calc.Round(7.5)).To(Equal(int64(8)))
			Expect(calc.Round(7.4)).To(Equal(int64(7)))
			Expect(calc.Round(-7.6)).To(Equal(int64(-8)))
		})
	})

	Context("max and min", func() {
		It("picks the larger and smaller operand", func() {
			for _, a := range samples {
				for _, b := range samples {
					if a >= b {
						Expect(calc.Max(a, b)).To(Equal(a))
						Expect(calc.Min(a, b)).To(Equal(b))
					} else {
						Expect(calc.Max(a, b)).To(Equal(b))
						Expect(calc.Min(a, b)).To(Equal(a))
					}
				}
			}
		})

		It("returns the shared value for equal operands", func() {
			Expect(calc.Max(5, 5)).To(Equal(5.0))
			Expect(calc.Min(5, 5)).To(Equal(5.0))
		})
	})

	Context("power", func() {
		It("follows IEEE pow for negative and fractional exponents", func() {
			Expect(calc.Power(2, -3)).To(Equal(0.125))
			Expect(calc.Power(2, 8)).To(Equal(256.0))

			root, err := calc.Sqrt(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(scalar.EqualWithinAbs(calc.Power(2, 0.5), root, 1e-9)).To(BeTrue())
		})
	})

	Context("absolute value", func() {
		It("returns a for non-negative a and -a otherwise", func() {
			for _, a := range samples {
				if a >= 0 {
					Expect(calc.Abs(a)).To(Equal(a))
				} else {
					Expect(calc.Abs(a)).To(Equal(-a))
				}
			}
			Expect(calc.Abs(0)).To(Equal(0.0))
		})
	})
})
