package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat/distuv"

	"statlib/domain/numeric"
)

func TestExponentialPDF(t *testing.T) {
	pdf, err := Exponential(2)
	require.NoError(t, err)

	ref := distuv.Exponential{Rate: 2}
	for _, x := range []float64{0, 0.5, 1, 3} {
		got, err := pdf(x)
		require.NoError(t, err)
		assert.InDelta(t, ref.Prob(x), got, 1e-12, "density at %v", x)
	}

	below, err := pdf(-1)
	require.NoError(t, err)
	assert.Zero(t, below)
}

func TestExponentialMoments(t *testing.T) {
	pdf, err := Exponential(2)
	require.NoError(t, err)

	mu, err := numeric.Mean(pdf)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mu, 1e-3)

	v, err := numeric.Var(pdf)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-3)
}

func TestExponentialRejectsBadRate(t *testing.T) {
	_, err := Exponential(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestGammaDistPDF(t *testing.T) {
	// Non-integer shape runs the gamma approximation in the normalizing
	// constant; gonum's density is the oracle.
	pdf, err := GammaDist(2.5, 1)
	require.NoError(t, err)

	ref := distuv.Gamma{Alpha: 2.5, Beta: 1}
	for _, x := range []float64{0.5, 1, 2, 5} {
		got, err := pdf(x)
		require.NoError(t, err)
		assert.InEpsilon(t, ref.Prob(x), got, 1e-5, "density at %v", x)
	}

	below, err := pdf(0)
	require.NoError(t, err)
	assert.Zero(t, below)
}

func TestGammaDistMean(t *testing.T) {
	// Shape 2, scale 2: mean is alpha*beta = 4. The default truncation
	// bound clips too much gamma tail, so widen it.
	pdf, err := GammaDist(2, 2)
	require.NoError(t, err)

	mu, err := numeric.ExpectedValue(pdf, nil, 60, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, mu, 1e-3)
}

func TestGammaDistRejectsFractionalShapeBelowOne(t *testing.T) {
	// Shapes in (0, 1) pass the positivity check but the gamma
	// approximation cannot normalize them; the constructor must surface
	// that instead of building an all-NaN density.
	_, err := GammaDist(0.5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestGammaDistRejectsBadParams(t *testing.T) {
	for _, tt := range []struct{ alpha, beta float64 }{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := GammaDist(tt.alpha, tt.beta)
		require.Error(t, err, "shape %v scale %v", tt.alpha, tt.beta)
		assert.ErrorIs(t, err, ErrInvalidParam)
	}
}
