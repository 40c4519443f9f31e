package numeric

import (
	"errors"
)

// ErrDomain marks a point where a scalar function is undefined, such as a
// density evaluated below its support. The integrator treats these points as
// contributing zero; every other error aborts the computation.
var ErrDomain = errors.New("argument outside function domain")

// Func is a scalar real function y = f(x). An implementation reports a point
// outside its domain by returning an error wrapping ErrDomain.
type Func func(x float64) (float64, error)

// Fn lifts a plain function into a Func that never fails.
func Fn(f func(x float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// DefaultResolution is the trapezoid count used by Integrate.
const DefaultResolution = 1000

// Integrate approximates the integral of f from a to b with the default
// resolution.
func Integrate(f Func, a, b float64) (float64, error) {
	return IntegrateRes(f, a, b, DefaultResolution)
}

// IntegrateRes approximates the integral of f from a to b using composite
// trapezoidal quadrature with res slabs, so dx = (b-a)/res.
//
// The bounds may be given in either order: a reversed interval is integrated
// as [min(a,b), max(a,b)] with no sign flip, so the caller owns any sign
// convention for reversed bounds. Evaluation points where f reports ErrDomain
// contribute zero area; any other error from f aborts the integration.
//
// res is not validated. A zero or negative res yields a degenerate result
// rather than an error.
func IntegrateRes(f Func, a, b float64, res int) (float64, error) {
	if b < a {
		return IntegrateRes(f, b, a, res)
	}

	total := 0.0
	dx := (b - a) / float64(res)

	last, err := evalPoint(f, a)
	if err != nil {
		return 0, err
	}

	for x := a; x < b; x += dx {
		cur, err := evalPoint(f, x+dx)
		if err != nil {
			return 0, err
		}
		total += 0.5 * dx * (last + cur)
		last = cur
	}

	return total, nil
}

// evalPoint evaluates f at x, converting a domain error into a zero
// contribution. Other errors propagate.
func evalPoint(f Func, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		if errors.Is(err, ErrDomain) {
			return 0, nil
		}
		return 0, err
	}
	return y, nil
}
