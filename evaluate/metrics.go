package evaluate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric reduces paired truth and prediction vectors to one number.
type Metric interface {
	Name() string
	Score(truth, predicted []float64) float64
}

type metricFunc struct {
	name string
	fn   func(truth, predicted []float64) float64
}

func (m metricFunc) Name() string { return m.name }

// Score returns NaN for empty input.
func (m metricFunc) Score(truth, predicted []float64) float64 {
	if len(truth) == 0 || len(truth) != len(predicted) {
		return math.NaN()
	}

	return m.fn(truth, predicted)
}

// Built-in metrics.
var (
	// ExactMatch is the fraction of rows where the prediction equals the truth.
	ExactMatch Metric = metricFunc{name: "accuracy", fn: func(t, p []float64) float64 {
		hit := 0
		for i := range t {
			if t[i] == p[i] {
				hit++
			}
		}
		return float64(hit) / float64(len(t))
	}}

	// SignedError is mean(predicted - truth); positive means overestimation.
	SignedError Metric = metricFunc{name: "mean_error", fn: func(t, p []float64) float64 {
		return (floats.Sum(p) - floats.Sum(t)) / float64(len(t))
	}}

	// AbsoluteError is the mean absolute error.
	AbsoluteError Metric = metricFunc{name: "mae", fn: func(t, p []float64) float64 {
		return floats.Distance(p, t, 1) / float64(len(t))
	}}

	// SquaredError is the mean squared error.
	SquaredError Metric = metricFunc{name: "mse", fn: func(t, p []float64) float64 {
		d := floats.Distance(p, t, 2)
		return d * d / float64(len(t))
	}}
)

// DefaultMetrics lists the metrics Evaluate uses when none are given.
func DefaultMetrics() []Metric {
	return []Metric{ExactMatch, SignedError, AbsoluteError, SquaredError}
}
