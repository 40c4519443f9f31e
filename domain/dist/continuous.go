package dist

import (
	"fmt"
	"math"

	"statlib/domain/numeric"
)

// Exponential returns the probability density function of X ~ Exp(lambda),
// lambda*e^(-lambda*x) on x >= 0 and zero below the support.
func Exponential(lambda float64) (numeric.Func, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("%w: exponential rate = %v, want > 0", ErrInvalidParam, lambda)
	}

	return func(x float64) (float64, error) {
		if x < 0 {
			return 0, nil
		}
		return lambda * math.Exp(-lambda*x), nil
	}, nil
}

// GammaDist returns the probability density function of a gamma-distributed
// variable with shape alpha and scale beta. The normalizing constant
// Gamma(alpha)*beta^alpha is computed once at construction, so a bad shape
// surfaces here rather than on every evaluation.
func GammaDist(alpha, beta float64) (numeric.Func, error) {
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("%w: gamma shape = %v scale = %v, want > 0", ErrInvalidParam, alpha, beta)
	}

	g, err := numeric.Gamma(alpha)
	if err != nil {
		return nil, err
	}
	denom := g * math.Pow(beta, alpha)

	return func(x float64) (float64, error) {
		if x <= 0 {
			return 0, nil
		}
		return math.Pow(x, alpha-1) * math.Exp(-x/beta) / denom, nil
	}, nil
}
