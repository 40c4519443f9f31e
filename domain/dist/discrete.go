package dist

import (
	"fmt"
	"math"

	"statlib/domain/numeric"
)

// Poisson returns the probability mass function of X ~ Pois(lambda),
// P(X=k) = lambda^k e^-lambda / k!. Evaluating at a negative k is a domain
// error.
func Poisson(lambda float64) numeric.Func {
	return func(x float64) (float64, error) {
		k := int(math.Round(x))
		fact, err := numeric.Factorial(k)
		if err != nil {
			return 0, err
		}
		return math.Pow(lambda, float64(k)) * math.Exp(-lambda) / fact, nil
	}
}

// Binomial returns the probability mass function of X ~ Binom(n, p),
// P(X=k) = C(n,k) p^k (1-p)^(n-k).
func Binomial(n int, p float64) (numeric.Func, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: binomial p = %v, want [0, 1]", ErrInvalidParam, p)
	}

	return func(x float64) (float64, error) {
		k := int(math.Round(x))
		c, err := choose(n, k)
		if err != nil {
			return 0, err
		}
		return c * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k)), nil
	}, nil
}

// Geometric returns the probability mass function of X ~ Geom(p),
// P(X=k) = (1-p)^(k-1) p, counting the trial on which the first success
// lands.
func Geometric(p float64) (numeric.Func, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: geometric p = %v, want [0, 1]", ErrInvalidParam, p)
	}

	return func(x float64) (float64, error) {
		k := math.Round(x)
		return math.Pow(1-p, k-1) * p, nil
	}, nil
}

// NegBinomial returns the probability mass function of X ~ NB(r, p),
// P(X=k) = C(k-1, r-1) p^r (1-p)^(k-r), where k counts trials up to and
// including the r-th success.
func NegBinomial(r int, p float64) (numeric.Func, error) {
	if r < 1 {
		return nil, fmt.Errorf("%w: negative binomial r = %d, want >= 1", ErrInvalidParam, r)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: negative binomial p = %v, want [0, 1]", ErrInvalidParam, p)
	}

	return func(x float64) (float64, error) {
		k := int(math.Round(x))
		c, err := choose(k-1, r-1)
		if err != nil {
			return 0, err
		}
		return c * math.Pow(p, float64(r)) * math.Pow(1-p, float64(k-r)), nil
	}, nil
}

// Hypergeometric returns the probability mass function of a hypergeometric
// variable with population size N holding r successes, sampled n at a time:
// P(X=k) = C(r,k) C(N-r,n-k) / C(N,n).
func Hypergeometric(r, N, n int) (numeric.Func, error) {
	if r < 0 || r > N {
		return nil, fmt.Errorf("%w: hypergeometric r = %d, want [0, %d]", ErrInvalidParam, r, N)
	}
	if n < 0 || n > N {
		return nil, fmt.Errorf("%w: hypergeometric n = %d, want [0, %d]", ErrInvalidParam, n, N)
	}

	return func(x float64) (float64, error) {
		k := int(math.Round(x))
		num1, err := choose(r, k)
		if err != nil {
			return 0, err
		}
		num2, err := choose(N-r, n-k)
		if err != nil {
			return 0, err
		}
		denom, err := choose(N, n)
		if err != nil {
			return 0, err
		}
		return num1 * num2 / denom, nil
	}, nil
}
