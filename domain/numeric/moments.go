package numeric

import (
	"math"
)

// Defaults for the truncated integration domain used by the moment
// estimators. The real line is stood in for by [-DefaultBound, DefaultBound];
// results are only as accurate as the density's decay justifies for that
// bound.
const (
	DefaultBound = 20.0
	DefaultStep  = 0.01
)

// ExpectedValue approximates the expected value of a continuous random
// variable with density pdf by integrating over [-bound, bound] with step
// size step. When transform is non-nil the estimate is E[transform(X)],
// otherwise E[X].
//
// The density is not checked for integrating to one; that is the caller's
// responsibility, as is choosing a bound large enough for the density's
// tails. bound and step are not validated.
func ExpectedValue(pdf, transform Func, bound, step float64) (float64, error) {
	res := int(math.Round(2 * bound / step))

	integrand := func(x float64) (float64, error) {
		p, err := pdf(x)
		if err != nil {
			return 0, err
		}
		if transform == nil {
			return x * p, nil
		}
		g, err := transform(x)
		if err != nil {
			return 0, err
		}
		return g * p, nil
	}

	return IntegrateRes(integrand, -bound, bound, res)
}

// Variance approximates Var(X) = E[X^2] - E[X]^2 for a continuous random
// variable with density pdf, using the same truncated domain as
// ExpectedValue. Floating-point and truncation error can push the result
// slightly negative even though true variance never is; the raw value is
// returned unclamped.
func Variance(pdf Func, bound, step float64) (float64, error) {
	mu, err := ExpectedValue(pdf, nil, bound, step)
	if err != nil {
		return 0, err
	}

	square := Fn(func(x float64) float64 { return x * x })
	m2, err := ExpectedValue(pdf, square, bound, step)
	if err != nil {
		return 0, err
	}

	return m2 - mu*mu, nil
}

// Mean is ExpectedValue of the identity with default bound and step.
func Mean(pdf Func) (float64, error) {
	return ExpectedValue(pdf, nil, DefaultBound, DefaultStep)
}

// Var is Variance with default bound and step.
func Var(pdf Func) (float64, error) {
	return Variance(pdf, DefaultBound, DefaultStep)
}
