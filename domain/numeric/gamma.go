package numeric

import (
	"fmt"
	"math"
)

// integerTolerance bounds how far a float may sit from the nearest integer
// and still take the exact factorial path in Gamma.
const integerTolerance = 1e-9

// Factorial computes n! as a float64. The product of integers stays exact
// while it fits in the 53-bit mantissa (n <= 18); beyond that it is the
// closest representable value. n < 0 is a domain error.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrDomain)
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// Gamma approximates the gamma function at z, expected greater than one.
//
// Integer arguments take an exact path: Gamma(n) = (n-1)!. A non-positive
// integer is a domain error. Non-integer arguments use the closed-form
// approximation of Yang and Tian (J Inequal Appl 2018:56), whose shifted
// argument must stay positive: non-integer z < 1 is a domain error even
// where the true gamma function is defined, matching the exact path's
// refusal rather than returning NaN. The approximation degrades as z
// approaches 1 from above, where its shifted argument nears zero and the
// correction terms can overflow.
func Gamma(z float64) (float64, error) {
	if nearest := math.Round(z); math.Abs(z-nearest) < integerTolerance {
		return Factorial(int(nearest) - 1)
	}

	z -= 1
	if z <= 0 {
		return 0, fmt.Errorf("gamma approximation at %g: %w", z+1, ErrDomain)
	}

	return math.Sqrt(2*math.Pi*z) *
		math.Pow(z/math.E, z) *
		math.Pow(z*math.Sinh(1/z), z/2) *
		math.Exp(7/(324*z*z*z*(35*z*z+33))), nil
}
