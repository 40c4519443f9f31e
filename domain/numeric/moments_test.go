package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat/distuv"
)

func stdNormal() Func {
	n := distuv.Normal{Mu: 0, Sigma: 1}
	return Fn(n.Prob)
}

func TestExpectedValueStandardNormal(t *testing.T) {
	mu, err := ExpectedValue(stdNormal(), nil, 10, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mu, 1e-6)
}

func TestExpectedValueTransform(t *testing.T) {
	// E[X^2] of a standard normal is its variance.
	square := Fn(func(x float64) float64 { return x * x })

	m2, err := ExpectedValue(stdNormal(), square, DefaultBound, DefaultStep)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m2, 1e-4)
}

func TestVarianceStandardNormal(t *testing.T) {
	v, err := Variance(stdNormal(), DefaultBound, DefaultStep)
	require.NoError(t, err)

	// The raw estimate is not clamped; allow it to land a hair on either
	// side of the true value.
	assert.InDelta(t, 1.0, v, 1e-4)
}

func TestVarianceExponential(t *testing.T) {
	e := distuv.Exponential{Rate: 1}
	pdf := Fn(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return e.Prob(x)
	})

	mu, err := ExpectedValue(pdf, nil, DefaultBound, DefaultStep)
	require.NoError(t, err)
	v, err := Variance(pdf, DefaultBound, DefaultStep)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, mu, 1e-3)
	assert.InDelta(t, 1.0, v, 1e-3)
}

func TestMeanVarDefaults(t *testing.T) {
	pdf := stdNormal()

	mu, err := Mean(pdf)
	require.NoError(t, err)
	explicit, err := ExpectedValue(pdf, nil, DefaultBound, DefaultStep)
	require.NoError(t, err)
	assert.Equal(t, explicit, mu)

	v, err := Var(pdf)
	require.NoError(t, err)
	explicitVar, err := Variance(pdf, DefaultBound, DefaultStep)
	require.NoError(t, err)
	assert.Equal(t, explicitVar, v)
}

func TestMomentsDeterministic(t *testing.T) {
	pdf := stdNormal()

	first, err := Var(pdf)
	require.NoError(t, err)
	second, err := Var(pdf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
