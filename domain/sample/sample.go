// Package sample computes descriptive statistics over observed data and
// compares them against the theoretical moments of a candidate density.
package sample

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"statlib/domain/numeric"
	"statlib/internal/errors"
)

// Summary holds descriptive statistics for one column of observations.
type Summary struct {
	N          int     `json:"n"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Variance   float64 `json:"variance"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	Skewness   float64 `json:"skewness"`
	ExKurtosis float64 `json:"ex_kurtosis"`
}

// Describe computes a Summary for xs. An empty sample is an error.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, errors.InvalidInput("empty sample")
	}

	data := stats.Float64Data(xs)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing mean")
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing median")
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing standard deviation")
	}
	variance, err := data.Variance()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing variance")
	}
	minimum, err := data.Min()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing min")
	}
	maximum, err := data.Max()
	if err != nil {
		return Summary{}, errors.Wrap(err, "computing max")
	}
	q25, err := data.Percentile(25)
	if err != nil {
		q25 = median
	}
	q75, err := data.Percentile(75)
	if err != nil {
		q75 = median
	}

	return Summary{
		N:          len(xs),
		Mean:       mean,
		Median:     median,
		StdDev:     sd,
		Variance:   variance,
		Min:        minimum,
		Max:        maximum,
		Q25:        q25,
		Q75:        q75,
		Skewness:   stat.Skew(xs, nil),
		ExKurtosis: stat.ExKurtosis(xs, nil),
	}, nil
}

// Comparison pairs the empirical moments of a sample with the moments the
// candidate density implies.
type Comparison struct {
	EmpiricalMean   float64 `json:"empirical_mean"`
	TheoreticalMean float64 `json:"theoretical_mean"`
	MeanDelta       float64 `json:"mean_delta"`
	EmpiricalVar    float64 `json:"empirical_var"`
	TheoreticalVar  float64 `json:"theoretical_var"`
	VarDelta        float64 `json:"var_delta"`
}

// CompareMoments sets the sample's mean and variance against the values
// obtained by integrating the candidate density over [-bound, bound] with
// the given step.
func CompareMoments(xs []float64, pdf numeric.Func, bound, step float64) (Comparison, error) {
	summary, err := Describe(xs)
	if err != nil {
		return Comparison{}, err
	}

	mu, err := numeric.ExpectedValue(pdf, nil, bound, step)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "integrating theoretical mean")
	}
	v, err := numeric.Variance(pdf, bound, step)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "integrating theoretical variance")
	}

	return Comparison{
		EmpiricalMean:   summary.Mean,
		TheoreticalMean: mu,
		MeanDelta:       summary.Mean - mu,
		EmpiricalVar:    summary.Variance,
		TheoreticalVar:  v,
		VarDelta:        summary.Variance - v,
	}, nil
}

// String renders the summary in the fixed-width style of the describe
// command.
func (s Summary) String() string {
	return fmt.Sprintf(
		"n=%d mean=%.6g median=%.6g sd=%.6g var=%.6g min=%.6g max=%.6g q25=%.6g q75=%.6g skew=%.6g exkurt=%.6g",
		s.N, s.Mean, s.Median, s.StdDev, s.Variance, s.Min, s.Max, s.Q25, s.Q75, s.Skewness, s.ExKurtosis)
}
