package describe

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/meteobn/table"
)

// Sentinel errors.
var (
	ErrTooFew        = errors.New("describe: need at least two observed values")
	ErrNonPositive   = errors.New("describe: values must be positive")
	ErrNegative      = errors.New("describe: values must be non-negative")
	ErrNoConvergence = errors.New("describe: iteration did not converge")
)

const (
	// trimFraction is cut from each end for the trimmed mean.
	trimFraction = 0.1

	// madSigma is the lognormal shape whose upper quartile scales the MAD.
	madSigma = 1.2

	// confidence is the level of every interval.
	confidence = 0.95
)

// Interval is a closed confidence interval.
type Interval struct {
	Lo, Hi float64
}

// Summary holds the statistics of one column. MeanHalfWidth is the
// one-sided normal half-width z(0.95)·s/√n; the variance and standard
// deviation intervals are two-sided chi-square 95% intervals.
type Summary struct {
	Name        string
	N           int
	Min, Max    float64
	Mean        float64
	Variance    float64 // unbiased
	Std         float64
	Median      float64
	TrimmedMean float64
	MAD         float64 // scaled median absolute deviation

	MeanHalfWidth float64
	VarianceCI    Interval
	StdCI         Interval
}

// Summarize computes the Summary of xs.
func Summarize(name string, xs []float64) (*Summary, error) {
	x := Clean(xs)
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: %q has %d", ErrTooFew, name, n)
	}
	sort.Float64s(x)

	s := &Summary{Name: name, N: n, Min: floats.Min(x), Max: floats.Max(x)}
	s.Mean, s.Variance = stat.MeanVariance(x, nil)
	s.Std = math.Sqrt(s.Variance)
	s.Median = median(x)
	s.TrimmedMean = trimmedMean(x, trimFraction)

	dev := make([]float64, n)
	for i, v := range x {
		dev[i] = math.Abs(v - s.Median)
	}
	sort.Float64s(dev)
	k := distuv.LogNormal{Mu: 0, Sigma: madSigma}.Quantile(0.75)
	s.MAD = k * median(dev)

	s.MeanHalfWidth = distuv.UnitNormal.Quantile(confidence) * s.Std / math.Sqrt(float64(n))

	df := float64(n - 1)
	chi := distuv.ChiSquared{K: df}
	alpha := 1 - confidence
	s.VarianceCI = Interval{
		Lo: s.Variance * df / chi.Quantile(1-alpha/2),
		Hi: s.Variance * df / chi.Quantile(alpha/2),
	}
	s.StdCI = Interval{Lo: math.Sqrt(s.VarianceCI.Lo), Hi: math.Sqrt(s.VarianceCI.Hi)}

	return s, nil
}

// Columns summarizes every column of t in order.
func Columns(t *table.Table) ([]*Summary, error) {
	out := make([]*Summary, 0, len(t.Columns))
	for _, c := range t.Columns {
		xs, err := t.Column(c)
		if err != nil {
			return nil, err
		}
		s, err := Summarize(c, xs)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Clean returns the non-missing values of xs in a new slice.
func Clean(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !table.IsMissing(v) {
			out = append(out, v)
		}
	}

	return out
}

// median of sorted x; the mean of the two middle values for even n.
func median(x []float64) float64 {
	n := len(x)
	if n%2 == 1 {
		return x[n/2]
	}

	return (x[n/2-1] + x[n/2]) / 2
}

// trimmedMean drops floor(frac·n) values from each end of sorted x.
func trimmedMean(x []float64, frac float64) float64 {
	cut := int(frac * float64(len(x)))

	return stat.Mean(x[cut:len(x)-cut], nil)
}
