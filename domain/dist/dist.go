// Package dist builds probability mass and density functions as closures
// over validated parameters. Every factory returns a numeric.Func, so the
// result plugs directly into the integrator and the moment estimators.
package dist

import (
	"errors"
	"fmt"
	"math"

	"statlib/domain/numeric"
)

// ErrInvalidParam reports a distribution parameter rejected at construction
// time, such as a probability outside [0, 1].
var ErrInvalidParam = errors.New("invalid distribution parameter")

// choose returns the binomial coefficient C(n, k) computed through
// math.Lgamma. k > n gives zero; a negative n or k is a domain error, which
// keeps out-of-support PMF evaluations recoverable inside the integrator.
// The rounded exponential is exact only while C(n, k) fits in float64's
// 53-bit mantissa (central coefficients up to n = 57 or so); beyond that the
// result, and the PMFs built on it, carry float64 rounding error.
func choose(n, k int) (float64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("choose(%d, %d): %w", n, k, numeric.ErrDomain)
	}
	if k > n {
		return 0, nil
	}

	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return math.Round(math.Exp(a - b - c)), nil
}
